package bundle

import (
	"path/filepath"
	"sort"
)

// Order returns files arranged according to mode. Sorting is stable and
// compares strings byte-wise, so equal keys keep their discovery order.
func Order(files []string, mode SortMode) []string {
	out := make([]string, len(files))
	copy(out, files)

	var key func(string) string
	switch mode {
	case SortByName:
		key = filepath.Base
	case SortByExtension:
		key = filepath.Ext
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}

// Dedupe drops repeated paths, keeping each path at its first position.
func Dedupe(files []string) []string {
	seen := make(map[string]struct{}, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
