// Package types holds the shared data model for dotup: package
// specifications, install plans, and seeding state.
package types

import "io/fs"

// Source identifies where a package is installed from.
type Source string

const (
	// SourceRepo is the official distribution repository.
	SourceRepo Source = "repo"

	// SourceAUR is the Arch User Repository, installed via an AUR helper.
	SourceAUR Source = "aur"
)

// Valid reports whether the source is a known value.
func (s Source) Valid() bool {
	return s == SourceRepo || s == SourceAUR
}

// PackageSpec is the declarative description of one installable dependency.
// Specs are defined in configuration and immutable for the duration of a run.
type PackageSpec struct {
	Name        string `koanf:"name" toml:"name"`
	Source      Source `koanf:"source" toml:"source"`
	Required    bool   `koanf:"required" toml:"required"`
	Description string `koanf:"description" toml:"description,omitempty"`
}

// PackageState is the point-in-time installed state for one spec.
// It is recomputed on every check and never cached.
type PackageState struct {
	Spec      PackageSpec
	Installed bool
}

// Plan partitions a spec list by queried install state.
type Plan struct {
	Satisfied []PackageSpec
	Missing   []PackageSpec
}

// MissingRequired returns the subset of missing packages that are required.
func (p Plan) MissingRequired() []PackageSpec {
	var out []PackageSpec
	for _, spec := range p.Missing {
		if spec.Required {
			out = append(out, spec)
		}
	}
	return out
}

// Summary holds the final counts reported after an install run.
type Summary struct {
	Satisfied int
	Installed int
	Failed    int
	Skipped   int
}

// Total returns the number of specs the summary accounts for.
func (s Summary) Total() int {
	return s.Satisfied + s.Installed + s.Failed + s.Skipped
}

// SeedState describes the marker state of the target config file.
type SeedState string

const (
	// SeedStateUnseeded means the marker is absent.
	SeedStateUnseeded SeedState = "unseeded"

	// SeedStateSeeded means the marker is present and the directive
	// block following it is intact.
	SeedStateSeeded SeedState = "seeded"

	// SeedStateCorrupt means the marker is present but the directive
	// block is incomplete or altered.
	SeedStateCorrupt SeedState = "corrupt"
)

// SeedReport is the result of a seed or check invocation.
type SeedReport struct {
	State      SeedState // state observed before any mutation
	Changed    bool      // whether the file was rewritten
	BackupPath string    // set when a backup was created
	AnchorLine int       // zero-based anchor line index, -1 if absent
	MarkerLine int       // zero-based marker line index after the run, -1 if absent
}

// FS is the filesystem interface required for dotup operations.
// The seeder runs entirely against it so tests can use an in-memory
// implementation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
