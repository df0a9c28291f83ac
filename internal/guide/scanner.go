package guide

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// skipDirs contains directory names that should be excluded from scanning.
var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"build":        true,
	"dist":         true,
	"__pycache__":  true,
}

// errScanLimit stops the current walk once the global file cap is reached.
var errScanLimit = errors.New("scan limit reached")

// Scan walks root once per extension, in the order given, collecting up to
// maxFiles relative paths whose name matches that extension. Extensions are
// not interleaved: all matches for one extension are gathered before the
// next is considered. The cap is global; it is checked after every path
// added, short-circuits the current extension's walk, and skips remaining
// extensions. An empty result is not an error. Filesystem errors during
// traversal are surfaced, not swallowed.
func Scan(root string, maxFiles int, extensions []string, out io.Writer) ([]CandidatePath, error) {
	var found []CandidatePath

	for _, ext := range extensions {
		if len(found) >= maxFiles {
			break
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), ext) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			found = append(found, CandidatePath{Path: rel, Ext: ext})
			if len(found) >= maxFiles {
				return errScanLimit
			}
			return nil
		})
		if err != nil && !errors.Is(err, errScanLimit) {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	fmt.Fprintf(out, "Found %d code files in the repository.\n", len(found))
	return found, nil
}
