// Package config loads dotup's layered configuration: embedded defaults,
// the user config file, DOTUP_* environment variables, and CLI flag
// overrides, in that order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/paths"
	"github.com/dotup-sh/dotup/pkg/types"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "DOTUP_"

// envKeys maps recognized environment variable suffixes to config keys.
// Only these keys can be overridden from the environment.
var envKeys = map[string]string{
	"SHELL_TARGET":       "shell.target",
	"SEEDER_CONFIG_FILE": "seeder.config_file",
	"SEEDER_BACKUP_DIR":  "seeder.backup_dir",
}

// ShellConfig describes the desired login shell.
type ShellConfig struct {
	Target string `koanf:"target" toml:"target"`
}

// AURConfig describes AUR helper detection and bootstrap.
type AURConfig struct {
	Helpers          []string `koanf:"helpers" toml:"helpers"`
	BootstrapPackage string   `koanf:"bootstrap_package" toml:"bootstrap_package"`
	BootstrapRepo    string   `koanf:"bootstrap_repo" toml:"bootstrap_repo"`
}

// SeederConfig describes the override seeding target.
type SeederConfig struct {
	ConfigFile string   `koanf:"config_file" toml:"config_file"`
	BackupDir  string   `koanf:"backup_dir" toml:"backup_dir"`
	Anchor     string   `koanf:"anchor" toml:"anchor"`
	Marker     string   `koanf:"marker" toml:"marker"`
	Directives []string `koanf:"directives" toml:"directives"`
}

// Config is the fully resolved dotup configuration.
type Config struct {
	Shell    ShellConfig         `koanf:"shell" toml:"shell"`
	AUR      AURConfig           `koanf:"aur" toml:"aur"`
	Seeder   SeederConfig        `koanf:"seeder" toml:"seeder"`
	Packages []types.PackageSpec `koanf:"packages" toml:"packages"`
}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ConfigFile is an explicit user config path. Empty means the
	// default location, which is skipped silently when absent.
	ConfigFile string

	// Overrides are flag-level overrides applied last (koanf keys).
	Overrides map[string]interface{}
}

// Load builds the resolved configuration.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User config file
	userPath := opts.ConfigFile
	explicit := userPath != ""
	if !explicit {
		userPath = paths.ConfigFilePath()
	}
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), parserFor(userPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", userPath)
		}
	} else if explicit {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s", userPath)
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Seeder.BackupDir == "" {
		cfg.Seeder.BackupDir = paths.BackupDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration with no user layers applied.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal embedded defaults")
	}
	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Shell.Target == "" {
		return errors.New(errors.ErrConfigValid, "shell.target must not be empty")
	}
	if c.Seeder.ConfigFile == "" {
		return errors.New(errors.ErrConfigValid, "seeder.config_file must not be empty")
	}
	if c.Seeder.Anchor == "" {
		return errors.New(errors.ErrConfigValid, "seeder.anchor must not be empty")
	}
	if c.Seeder.Marker == "" {
		return errors.New(errors.ErrConfigValid, "seeder.marker must not be empty")
	}
	if len(c.Seeder.Directives) == 0 {
		return errors.New(errors.ErrConfigValid, "seeder.directives must not be empty")
	}
	for _, d := range c.Seeder.Directives {
		if d == c.Seeder.Marker {
			return errors.Newf(errors.ErrConfigValid, "directive duplicates the marker line: %q", d)
		}
	}
	seen := make(map[string]bool, len(c.Packages))
	for _, spec := range c.Packages {
		if spec.Name == "" {
			return errors.New(errors.ErrConfigValid, "package with empty name")
		}
		if !spec.Source.Valid() {
			return errors.Newf(errors.ErrConfigValid, "package %s has invalid source %q", spec.Name, spec.Source)
		}
		if seen[spec.Name] {
			return errors.Newf(errors.ErrConfigValid, "duplicate package %s", spec.Name)
		}
		seen[spec.Name] = true
	}
	return nil
}

// RequiredPackages returns the required subset of the declared package set.
func (c *Config) RequiredPackages() []types.PackageSpec {
	var out []types.PackageSpec
	for _, spec := range c.Packages {
		if spec.Required {
			out = append(out, spec)
		}
	}
	return out
}

// parserFor picks a koanf parser based on the file extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
