// Package seeder guarantees that the override directive block is
// present, in order, exactly once inside the target config file. The
// file is owned by an external program that may regenerate it at any
// time; seeding is safely re-runnable and recovers from partial blocks.
package seeder

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/types"
)

const backupTimeFormat = "20060102-150405"

// Seeder performs idempotent override-block insertion.
type Seeder struct {
	fs     types.FS
	cfg    config.SeederConfig
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a Seeder operating on the given filesystem. Paths in cfg
// must already be resolved (no ~ prefixes).
func New(fs types.FS, cfg config.SeederConfig) *Seeder {
	return &Seeder{
		fs:     fs,
		cfg:    cfg,
		logger: logging.GetLogger("seeder"),
		now:    time.Now,
	}
}

// document is the line-indexed view of the config file. Anchor and
// marker are located by exact (whitespace-trimmed) line match, so
// insert and verify positions are plain integer indices.
type document struct {
	lines           []string
	trailingNewline bool
	anchorIdx       int // -1 when absent
	markerIdx       int // -1 when absent
}

func (s *Seeder) parse(content []byte) *document {
	text := string(content)
	doc := &document{anchorIdx: -1, markerIdx: -1}

	doc.trailingNewline = strings.HasSuffix(text, "\n")
	if doc.trailingNewline {
		text = strings.TrimSuffix(text, "\n")
	}
	if text != "" {
		doc.lines = strings.Split(text, "\n")
	}

	anchor := strings.TrimSpace(s.cfg.Anchor)
	marker := strings.TrimSpace(s.cfg.Marker)
	for idx, line := range doc.lines {
		trimmed := strings.TrimSpace(line)
		if doc.anchorIdx == -1 && trimmed == anchor {
			doc.anchorIdx = idx
		}
		if doc.markerIdx == -1 && trimmed == marker {
			doc.markerIdx = idx
		}
	}
	return doc
}

// classify derives the seed state: the marker being present implies the
// full directive block must follow it contiguously and exactly.
func (s *Seeder) classify(doc *document) types.SeedState {
	if doc.markerIdx == -1 {
		return types.SeedStateUnseeded
	}
	expected := s.cfg.Directives
	start := doc.markerIdx + 1
	if start+len(expected) > len(doc.lines) {
		return types.SeedStateCorrupt
	}
	for i, directive := range expected {
		if strings.TrimSpace(doc.lines[start+i]) != strings.TrimSpace(directive) {
			return types.SeedStateCorrupt
		}
	}
	return types.SeedStateSeeded
}

// Check reports the current seed state without mutating anything.
func (s *Seeder) Check() (types.SeedReport, error) {
	content, err := s.fs.ReadFile(s.cfg.ConfigFile)
	if err != nil {
		return types.SeedReport{}, errors.Wrapf(err, errors.ErrFileNotFound,
			"cannot read config file %s", s.cfg.ConfigFile)
	}
	doc := s.parse(content)
	return types.SeedReport{
		State:      s.classify(doc),
		AnchorLine: doc.anchorIdx,
		MarkerLine: doc.markerIdx,
	}, nil
}

// Seed ensures the override block is present exactly once, immediately
// after the anchor line. Repeated calls after the first are no-ops and
// create no additional backups. The file is re-read on every call, so
// an upstream regeneration of the config is picked up and re-seeded.
func (s *Seeder) Seed() (types.SeedReport, error) {
	// Read-check-write: state is derived from the bytes read here and
	// nothing else.
	content, err := s.fs.ReadFile(s.cfg.ConfigFile)
	if err != nil {
		return types.SeedReport{}, errors.Wrapf(err, errors.ErrFileNotFound,
			"cannot read config file %s", s.cfg.ConfigFile)
	}

	doc := s.parse(content)
	state := s.classify(doc)

	if state == types.SeedStateSeeded {
		s.logger.Info().Str("file", s.cfg.ConfigFile).Msg("Already seeded, nothing to do")
		return types.SeedReport{
			State:      state,
			Changed:    false,
			AnchorLine: doc.anchorIdx,
			MarkerLine: doc.markerIdx,
		}, nil
	}

	if doc.anchorIdx == -1 {
		return types.SeedReport{State: state}, errors.Newf(errors.ErrAnchorNotFound,
			"anchor line %q not found in %s", s.cfg.Anchor, s.cfg.ConfigFile)
	}

	// Never mutate without a prior successful backup.
	backupPath, err := s.writeBackup(content)
	if err != nil {
		return types.SeedReport{State: state}, err
	}

	lines := doc.lines
	if state == types.SeedStateCorrupt {
		s.logger.Warn().Str("file", s.cfg.ConfigFile).Msg("Malformed override block found, repairing")
		lines = s.stripBlock(lines, doc.markerIdx)
	}

	anchorIdx := indexOfLine(lines, s.cfg.Anchor)
	if anchorIdx == -1 {
		// Anchor vanished while stripping would mean it was inside the
		// block, which classify rules out. Guard anyway.
		return types.SeedReport{State: state}, errors.Newf(errors.ErrAnchorNotFound,
			"anchor line %q not found in %s", s.cfg.Anchor, s.cfg.ConfigFile)
	}

	block := append([]string{s.cfg.Marker}, s.cfg.Directives...)
	seeded := make([]string, 0, len(lines)+len(block))
	seeded = append(seeded, lines[:anchorIdx+1]...)
	seeded = append(seeded, block...)
	seeded = append(seeded, lines[anchorIdx+1:]...)

	if err := s.writeAtomic(seeded, doc.trailingNewline); err != nil {
		return types.SeedReport{State: state, BackupPath: backupPath}, err
	}

	s.logger.Info().
		Str("file", s.cfg.ConfigFile).
		Str("backup", backupPath).
		Int("directives", len(s.cfg.Directives)).
		Msg("Override block seeded")

	return types.SeedReport{
		State:      state,
		Changed:    true,
		BackupPath: backupPath,
		AnchorLine: anchorIdx,
		MarkerLine: anchorIdx + 1,
	}, nil
}

// stripBlock removes the marker line and the contiguous run of known
// directive lines following it.
func (s *Seeder) stripBlock(lines []string, markerIdx int) []string {
	known := make(map[string]bool, len(s.cfg.Directives))
	for _, directive := range s.cfg.Directives {
		known[strings.TrimSpace(directive)] = true
	}

	end := markerIdx + 1
	for end < len(lines) && known[strings.TrimSpace(lines[end])] {
		end++
	}

	out := make([]string, 0, len(lines)-(end-markerIdx))
	out = append(out, lines[:markerIdx]...)
	out = append(out, lines[end:]...)
	return out
}

// writeBackup copies the pre-mutation content into the backup
// directory under a timestamped name. Backups are append-only and never
// auto-deleted.
func (s *Seeder) writeBackup(content []byte) (string, error) {
	if err := s.fs.MkdirAll(s.cfg.BackupDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed,
			"cannot create backup directory %s", s.cfg.BackupDir)
	}

	base := filepath.Base(s.cfg.ConfigFile) + "." + s.now().Format(backupTimeFormat)
	path := filepath.Join(s.cfg.BackupDir, base+".bak")
	// Same-second reruns must not overwrite an earlier backup.
	for n := 1; ; n++ {
		if _, err := s.fs.Stat(path); err != nil {
			break
		}
		path = filepath.Join(s.cfg.BackupDir, base+"."+strconv.Itoa(n)+".bak")
	}

	if err := s.fs.WriteFile(path, content, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "cannot write backup %s", path)
	}
	return path, nil
}

// writeAtomic writes the new content to a temporary file next to the
// target and renames it into place, so a failed write leaves the
// original untouched.
func (s *Seeder) writeAtomic(lines []string, trailingNewline bool) error {
	text := strings.Join(lines, "\n")
	if trailingNewline || text == "" {
		text += "\n"
	}

	perm := defaultPerm(s.fs, s.cfg.ConfigFile)
	tmp := s.cfg.ConfigFile + ".dotup-tmp"
	if err := s.fs.WriteFile(tmp, []byte(text), perm); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrWriteFailed, "cannot write %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.cfg.ConfigFile); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrWriteFailed,
			"cannot replace %s", s.cfg.ConfigFile)
	}
	return nil
}
