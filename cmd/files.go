package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globFiles returns the files under dir matching pattern, sorted, as paths
// joined onto dir.
func globFiles(dir, pattern string) ([]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}

	seen := make(map[string]struct{}, len(matches))
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		match = filepath.ToSlash(filepath.Clean(match))
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(match)))
	}
	sort.Strings(paths)
	return paths, nil
}
