// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FindFilesBySuffix searches every root for files whose name ends with one
// of suffixes. A root may be a directory, searched recursively, or a single
// file. A missing root, or a file root without a matching suffix, is an
// error. The result is sorted and free of duplicates.
func FindFilesBySuffix(roots []string, suffixes ...string) ([]string, error) {
	if len(suffixes) == 0 {
		panic("fsutil: at least one suffix is required")
	}

	matches := func(name string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}

	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}

		if !info.IsDir() {
			if !matches(info.Name()) {
				return nil, fmt.Errorf("%s is not a descriptor file: name must end with one of %s",
					root, strings.Join(suffixes, ", "))
			}
			files = append(files, filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// Hidden directories such as .git never hold descriptors.
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if matches(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}
