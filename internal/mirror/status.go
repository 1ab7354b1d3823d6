package mirror

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// State classifies one source file against its target counterpart.
type State string

const (
	StateOK           State = "ok"
	StateDiffers      State = "differs"
	StateMissing      State = "missing"
	StateTranslated   State = "translated"
	StateUntranslated State = "untranslated"
)

type FileStatus struct {
	Rel          string `json:"rel" yaml:"rel"`
	Translatable bool   `json:"translatable" yaml:"translatable"`
	State        State  `json:"state" yaml:"state"`
}

// Status compares every file of src with its counterpart under toDir
// without changing anything. Untranslatable files are ok, differs or
// missing; translatable files are translated when a counterpart exists and
// untranslated otherwise.
func (e *Engine) Status(fromDir, toDir string, src snapshot.Directory) ([]FileStatus, error) {
	var out []FileStatus
	err := src.Walk(func(d *snapshot.Directory) error {
		for _, f := range d.Files {
			rel, err := snapshot.Rel(fromDir, f.Path)
			if err != nil {
				return err
			}
			st, err := e.fileState(f, filepath.Join(toDir, rel))
			if err != nil {
				return err
			}
			out = append(out, FileStatus{Rel: filepath.ToSlash(rel), Translatable: f.Translatable, State: st})
		}
		return nil
	})
	return out, err
}

func (e *Engine) fileState(f snapshot.File, dest string) (State, error) {
	info, err := e.fs.Stat(dest)
	exists := err == nil && info.Mode().IsRegular()
	if err != nil && !e.fs.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", dest, err)
	}

	if f.Translatable {
		if exists {
			return StateTranslated, nil
		}
		return StateUntranslated, nil
	}
	if !exists {
		return StateMissing, nil
	}

	srcInfo, err := e.fs.Stat(f.Path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", f.Path, err)
	}
	if srcInfo.Size() != info.Size() {
		return StateDiffers, nil
	}
	a, err := e.hashFile(f.Path)
	if err != nil {
		return "", err
	}
	b, err := e.hashFile(dest)
	if err != nil {
		return "", err
	}
	if !bytes.Equal(a, b) {
		return StateDiffers, nil
	}
	return StateOK, nil
}

// hashFile memory-maps the file when the filesystem supports it and reads
// it through the FS otherwise.
func (e *Engine) hashFile(path string) ([]byte, error) {
	read := e.fs.ReadFile
	if m, ok := e.fs.(fs.Mapper); ok {
		read = m.ReadMapped
	}
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	sum := xxh3.Hash128(data).Bytes()
	return sum[:], nil
}
