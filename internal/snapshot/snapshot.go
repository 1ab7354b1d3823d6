// Package snapshot models a directory tree captured at a point in time and
// the per-file translatable flag carried by each file record.
package snapshot

// File is a regular file inside a snapshot. Path is absolute and unique
// within the tree it belongs to.
type File struct {
	Name         string `json:"name" yaml:"name"`
	Path         string `json:"path" yaml:"path"`
	Translatable bool   `json:"translatable" yaml:"translatable"`
}

// Directory is a recursive snapshot node. Every entry of Dirs and Files is
// a direct child of Path.
type Directory struct {
	Name  string      `json:"name" yaml:"name"`
	Path  string      `json:"path" yaml:"path"`
	Dirs  []Directory `json:"dirs" yaml:"dirs"`
	Files []File      `json:"files" yaml:"files"`
}

// Clone returns a deep copy that shares no slices with d.
func (d Directory) Clone() Directory {
	out := Directory{
		Name:  d.Name,
		Path:  d.Path,
		Dirs:  make([]Directory, len(d.Dirs)),
		Files: make([]File, len(d.Files)),
	}
	copy(out.Files, d.Files)
	for i := range d.Dirs {
		out.Dirs[i] = d.Dirs[i].Clone()
	}
	return out
}

// Walk visits d and every directory below it in pre-order. Returning a
// non-nil error from fn stops the walk.
func (d *Directory) Walk(fn func(*Directory) error) error {
	if err := fn(d); err != nil {
		return err
	}
	for i := range d.Dirs {
		if err := d.Dirs[i].Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// BreadthFirst returns every file of the tree, level by level, with the
// files of a directory ahead of the files of its subdirectories.
func (d Directory) BreadthFirst() []File {
	var out []File
	queue := []*Directory{&d}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur.Files...)
		for i := range cur.Dirs {
			queue = append(queue, &cur.Dirs[i])
		}
	}
	return out
}

// Count returns the number of directories below d and the number of files
// in the whole tree.
func (d Directory) Count() (dirs, files int) {
	files = len(d.Files)
	for _, sub := range d.Dirs {
		sd, sf := sub.Count()
		dirs += sd + 1
		files += sf
	}
	return dirs, files
}
