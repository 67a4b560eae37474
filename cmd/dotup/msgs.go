package main

// Message constants
const (
	MsgRootShort = "Bootstrap tool for the Hyprland dotfiles"
	MsgRootLong  = `dotup prepares a machine for the dotfiles: it installs the declared
package set (official repos and AUR) and wires the user override block
into the Hyprland config, idempotently and with backups.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	MsgInstallShort = "Install declared dependencies"
	MsgInstallLong  = `Install brings the system's installed-package set up to the declared
dependency list. Installed state is queried fresh on every run, so the
command is safe to re-run after a failure: already-installed packages
are skipped and only the remainder is attempted.

Missing packages are installed in one batch per source (official repo,
AUR) to keep prompts down and let the package manager resolve
dependencies across the whole batch.`
	MsgInstallExample = `  # Interactive: required packages, prompt per optional one
  dotup install

  # Required packages only
  dotup install --minimal

  # Everything, no prompts
  dotup install --all --yes

  # Report only; exit non-zero if anything required is missing
  dotup install --check`

	MsgSeedShort = "Seed the override block into the Hyprland config"
	MsgSeedLong  = `Seed guarantees that the user override source lines are present in the
main Hyprland config, in order, exactly once, immediately after the
upstream defaults. The config file is backed up before any change and
rewritten atomically.

Re-running seed is a no-op while the block is intact. If an upstream
update regenerated the config, seed re-inserts the block; if the block
was partially destroyed, seed repairs it.`
	MsgSeedExample = `  # Seed (no-op if already seeded)
  dotup seed

  # Report the current state without touching the file
  dotup seed --check`

	MsgStatusShort = "Show package and seeding state"
	MsgStatusLong  = `Status reports the installed state of every declared package and the
current state of the override block, without changing anything.`

	MsgInitShort = "Write a starter configuration file"
	MsgInitLong  = `Init writes the built-in defaults to the user configuration file so
they can be edited. Refuses to overwrite an existing file unless
--force is given.`
)
