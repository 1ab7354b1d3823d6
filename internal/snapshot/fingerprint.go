package snapshot

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes the shape of dir: every path relative to dir.Path and
// every file's flag. Trees with the same entries hash equal regardless of
// enumeration order.
func Fingerprint(dir Directory) string {
	var lines []string
	dir.Walk(func(d *Directory) error {
		rel, _ := filepath.Rel(dir.Path, d.Path)
		lines = append(lines, "d "+filepath.ToSlash(rel))
		for _, f := range d.Files {
			rel, _ := filepath.Rel(dir.Path, f.Path)
			lines = append(lines, fmt.Sprintf("f %s %t", filepath.ToSlash(rel), f.Translatable))
		}
		return nil
	})
	sort.Strings(lines)

	data := []byte{}
	for _, l := range lines {
		data = append(data, []byte(l+"\n")...)
	}
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
}
