// Package pathglob expands ignore patterns into concrete file sets.
package pathglob

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolve expands a glob pattern relative to the working directory into a
// set of absolute file paths. Patterns support recursive "**" components.
//
// A pattern matching nothing yields an empty set, not an error; the rules
// configured under it are then never suppressed anywhere. Expansion happens
// exactly once, at configuration-load time — files created afterwards are
// not picked up.
func Resolve(pattern string) (map[string]bool, error) {
	// The flattened-form split can leave a line break glued to the pattern.
	pattern = strings.TrimPrefix(pattern, "\n")

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
	}

	files := make(map[string]bool, len(matches))

	for _, match := range matches {
		abs, err := filepath.Abs(match)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", match, err)
		}
		files[abs] = true
	}

	return files, nil
}
