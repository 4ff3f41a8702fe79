// Package criterion extracts benchmark measurements from the directory
// trees the criterion harness writes. Each tree holds directories named
// "<n>th fibonacci number" containing CBOR estimate documents; this package
// locates those documents, correlates them with the index n, and pulls out
// the median point estimate.
package criterion

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/teranos/benchsift/errors"
)

// measurementPrefix marks estimate documents by file name. Classification is
// a case-sensitive prefix match on the final path segment only; the
// extension does not matter.
const measurementPrefix = "measurement"

// IndexedMeasurement pairs a measurement file's path with the input-size
// index parsed from its parent directory name.
type IndexedMeasurement struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// Locate walks root and returns every measurement file paired with its
// index, sorted ascending by index. Duplicate indices keep their discovery
// order. Unreadable entries are skipped: partial trees are expected during
// incremental benchmarking. A parent directory name that does not follow
// the "<integer>th..." harness convention aborts the whole dataset with
// ErrBadIndexName, since downstream indices would be silently wrong.
func Locate(root string) ([]IndexedMeasurement, error) {
	var found []IndexedMeasurement

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip it, and skip its subtree if it is a
			// directory we cannot descend into.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasPrefix(d.Name(), measurementPrefix) {
			return nil
		}

		index, err := ParseIndex(filepath.Base(filepath.Dir(path)))
		if err != nil {
			return errors.Wrapf(err, "measurement %s", path)
		}

		found = append(found, IndexedMeasurement{Index: index, Path: path})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Traversal order is filesystem-dependent; the plotting tool needs the
	// series ordered by input size. Stable sort keeps duplicate indices
	// deterministic per run.
	sort.SliceStable(found, func(i, j int) bool { return found[i].Index < found[j].Index })

	return found, nil
}

// ParseIndex extracts the integer preceding the first "th" in a directory
// name like "12th fibonacci number". The "<integer>th..." naming is an
// external contract with the benchmarking harness; all knowledge of it
// lives here so the convention can change without touching traversal or
// extraction.
func ParseIndex(dirName string) (int, error) {
	prefix, _, ok := strings.Cut(dirName, "th")
	if !ok {
		return 0, errors.Wrapf(errors.ErrBadIndexName, "%q has no \"th\" marker", dirName)
	}

	index, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrBadIndexName, "%q: %v", dirName, err)
	}

	return index, nil
}
