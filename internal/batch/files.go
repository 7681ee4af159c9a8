package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/connstats/internal/connector"
)

// Subfolders some producers sort their exports into; ExpandDir walks them too.
var knownSubfolders = []string{"Create Exchange Data", "Read Exchange Data"}

// FilterFiles keeps the paths that are readable regular files with an
// extension the profile accepts. Everything else is silently dropped: a
// non-matching file is simply not part of the input set.
func FilterFiles(paths []string, p *connector.Profile) []string {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if !p.Accepts(strings.ToLower(filepath.Ext(path))) {
			continue
		}
		out = append(out, path)
	}
	return out
}

// ExpandDir lists candidate metric files in a folder, including the
// producers' conventional phase subfolders, in name order.
func ExpandDir(dir string, p *connector.Profile) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	for _, sub := range knownSubfolders {
		subdir := filepath.Join(dir, sub)
		subEntries, err := os.ReadDir(subdir)
		if err != nil {
			continue
		}
		for _, e := range subEntries {
			if !e.IsDir() {
				paths = append(paths, filepath.Join(subdir, e.Name()))
			}
		}
	}
	return FilterFiles(paths, p), nil
}
