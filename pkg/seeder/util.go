package seeder

import (
	"io/fs"
	"strings"

	"github.com/dotup-sh/dotup/pkg/types"
)

// indexOfLine returns the index of the first line matching target after
// trimming surrounding whitespace, or -1.
func indexOfLine(lines []string, target string) int {
	want := strings.TrimSpace(target)
	for idx, line := range lines {
		if strings.TrimSpace(line) == want {
			return idx
		}
	}
	return -1
}

// defaultPerm preserves the target file's mode when it can be read,
// falling back to 0644.
func defaultPerm(filesystem types.FS, path string) fs.FileMode {
	if info, err := filesystem.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
