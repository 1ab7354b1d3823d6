package mirror_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

func TestPrune(t *testing.T) {
	root, src := scenarioProject(t)
	fr := filepath.Join(root, "fr")
	writeFile(t, filepath.Join(fr, "a.txt"), "alpha")
	writeFile(t, filepath.Join(fr, "b.txt"), "traduit")
	writeFile(t, filepath.Join(fr, "old.txt"), "old")
	writeFile(t, filepath.Join(fr, "img", "logo.png"), "png")
	writeFile(t, filepath.Join(fr, "img", "old.png"), "old")
	writeFile(t, filepath.Join(fr, "gone", "x.txt"), "x")

	rep, err := newEngine(t, fs.NewOSFS()).Prune(filepath.Join(root, "src"), fr, src)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Removed)
	assert.NoError(t, rep.Err())

	assert.FileExists(t, filepath.Join(fr, "a.txt"))
	assert.FileExists(t, filepath.Join(fr, "b.txt"))
	assert.FileExists(t, filepath.Join(fr, "img", "logo.png"))
	assert.NoFileExists(t, filepath.Join(fr, "old.txt"))
	assert.NoFileExists(t, filepath.Join(fr, "img", "old.png"))
	assert.NoDirExists(t, filepath.Join(fr, "gone"))
}

func TestPrune_TypeMismatchIsRemoved(t *testing.T) {
	root, src := scenarioProject(t)
	fr := filepath.Join(root, "fr")
	writeFile(t, filepath.Join(fr, "img"), "a file where a dir belongs")
	writeFile(t, filepath.Join(fr, "a.txt", "inner"), "a dir where a file belongs")

	rep, err := newEngine(t, fs.NewOSFS()).Prune(filepath.Join(root, "src"), fr, src)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Removed)
	assert.NoFileExists(t, filepath.Join(fr, "img"))
	assert.NoDirExists(t, filepath.Join(fr, "a.txt"))
}

func TestPrune_MissingTargetIsNoop(t *testing.T) {
	root, src := scenarioProject(t)
	rep, err := newEngine(t, fs.NewOSFS()).Prune(filepath.Join(root, "src"), filepath.Join(root, "none"), src)
	require.NoError(t, err)
	assert.Zero(t, rep.Removed)
}

func TestPrune_RemoveFailuresAreCollected(t *testing.T) {
	root, src := scenarioProject(t)
	fr := filepath.Join(root, "fr")
	writeFile(t, filepath.Join(fr, "x.txt"), "x")
	writeFile(t, filepath.Join(fr, "y.txt"), "y")

	orig := fs.GetRemove()
	defer fs.SetRemove(orig)
	fs.SetRemove(func(string) error { return os.ErrPermission })

	rep, err := newEngine(t, fs.NewOSFS()).Prune(filepath.Join(root, "src"), fr, src)
	require.NoError(t, err)
	require.ErrorIs(t, rep.Err(), os.ErrPermission)
	assert.Len(t, rep.Failures, 2)
	assert.Zero(t, rep.Removed)
	assert.FileExists(t, filepath.Join(fr, "x.txt"))
}

func TestPrune_StaleSnapshot(t *testing.T) {
	root, _ := scenarioProject(t)
	_, err := newEngine(t, fs.NewOSFS()).Prune(filepath.Join(root, "src"), filepath.Join(root, "fr"), snapshot.Directory{Path: "/somewhere/else"})
	require.ErrorIs(t, err, snapshot.ErrNotUnderRoot)
}
