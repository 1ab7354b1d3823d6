package snapshot

// FindAndApply searches dir depth-first for the file whose path equals path
// exactly and applies fn to it in place. Files of a directory are checked
// before its subdirectories. It reports whether a file was found; the tree
// is untouched when it was not.
func FindAndApply(dir *Directory, path string, fn func(*File)) bool {
	for i := range dir.Files {
		if dir.Files[i].Path == path {
			fn(&dir.Files[i])
			return true
		}
	}
	for i := range dir.Dirs {
		if FindAndApply(&dir.Dirs[i], path, fn) {
			return true
		}
	}
	return false
}

// Index maps file paths to their records inside one tree. It stays valid
// until the tree's slices are reshaped.
type Index struct {
	files map[string]*File
}

func NewIndex(dir *Directory) Index {
	idx := Index{files: make(map[string]*File)}
	dir.Walk(func(d *Directory) error {
		for i := range d.Files {
			idx.files[d.Files[i].Path] = &d.Files[i]
		}
		return nil
	})
	return idx
}

func (i Index) Lookup(path string) (*File, bool) {
	f, ok := i.files[path]
	return f, ok
}
