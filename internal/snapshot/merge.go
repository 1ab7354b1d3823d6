package snapshot

import (
	"path/filepath"
)

// Merge returns a copy of next in which every file that also exists in prev,
// matched by path, keeps prev's translatable flag. Files new in next stay
// untranslatable; files gone from next are dropped.
func Merge(prev, next Directory) Directory {
	prevIdx := NewIndex(&prev)
	out := next.Clone()
	out.Walk(func(d *Directory) error {
		for i := range d.Files {
			if old, ok := prevIdx.Lookup(d.Files[i].Path); ok {
				d.Files[i].Translatable = old.Translatable
			}
		}
		return nil
	})
	return out
}

// Rebase rewrites every path of dir from oldRoot to newRoot, for projects
// that were moved on disk. Paths not under oldRoot are left as they are and
// returned as skipped.
func Rebase(dir Directory, oldRoot, newRoot string) (Directory, []string) {
	var skipped []string
	move := func(p string) string {
		rel, err := Rel(oldRoot, p)
		if err != nil {
			skipped = append(skipped, p)
			return p
		}
		return filepath.Join(newRoot, rel)
	}

	out := dir.Clone()
	out.Walk(func(d *Directory) error {
		d.Path = move(d.Path)
		for i := range d.Files {
			d.Files[i].Path = move(d.Files[i].Path)
		}
		return nil
	})
	return out, skipped
}
