package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

func tempRoot(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuild(t *testing.T) {
	root := tempRoot(t)
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "b.txt"), "b")
	writeFile(t, filepath.Join(src, "img", "logo.png"), "png")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o755))

	got, err := snapshot.Build(fs.NewOSFS(), src)
	require.NoError(t, err)

	want := snapshot.Directory{
		Name: "src",
		Path: src,
		Dirs: []snapshot.Directory{
			{Name: "empty", Path: filepath.Join(src, "empty"), Dirs: []snapshot.Directory{}, Files: []snapshot.File{}},
			{
				Name:  "img",
				Path:  filepath.Join(src, "img"),
				Dirs:  []snapshot.Directory{},
				Files: []snapshot.File{{Name: "logo.png", Path: filepath.Join(src, "img", "logo.png")}},
			},
		},
		Files: []snapshot.File{
			{Name: "a.txt", Path: filepath.Join(src, "a.txt")},
			{Name: "b.txt", Path: filepath.Join(src, "b.txt")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	root := tempRoot(t)
	writeFile(t, filepath.Join(root, "x", "y", "z.txt"), "z")
	writeFile(t, filepath.Join(root, "top.md"), "t")

	first, err := snapshot.Build(fs.NewOSFS(), root)
	require.NoError(t, err)
	second, err := snapshot.Build(fs.NewOSFS(), root)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rebuild differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, snapshot.Fingerprint(first), snapshot.Fingerprint(second))
}

func TestBuild_SkipsSymlinks(t *testing.T) {
	root := tempRoot(t)
	writeFile(t, filepath.Join(root, "real.txt"), "r")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "file-link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	got, err := snapshot.Build(fs.NewOSFS(), root)
	require.NoError(t, err)

	require.Len(t, got.Files, 1)
	assert.Equal(t, "real.txt", got.Files[0].Name)
	require.Len(t, got.Dirs, 1)
	assert.Empty(t, got.Dirs[0].Dirs)
	assert.Empty(t, got.Dirs[0].Files)
}

func TestBuild_Memory(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/p/src/sub", 0o755))
	require.NoError(t, m.WriteFile("/p/src/sub/f.txt", []byte("x"), 0o644))
	require.NoError(t, m.Symlink("/p/src/sub", "/p/src/link"))

	got, err := snapshot.Build(m, "/p/src")
	require.NoError(t, err)
	require.Len(t, got.Dirs, 1)
	assert.Equal(t, "/p/src/sub/f.txt", got.Dirs[0].Files[0].Path)
	assert.False(t, got.Dirs[0].Files[0].Translatable)
}

func TestBuild_RootHasNoName(t *testing.T) {
	m := fs.NewMemoryFS()
	got, err := snapshot.Build(m, "/")
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "/", got.Path)
}

func TestBuild_InvalidRoot(t *testing.T) {
	root := tempRoot(t)

	_, err := snapshot.Build(fs.NewOSFS(), filepath.Join(root, "missing"))
	require.ErrorIs(t, err, snapshot.ErrInvalidRoot)
	require.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "p")
	_, err = snapshot.Build(fs.NewOSFS(), file)
	require.ErrorIs(t, err, snapshot.ErrInvalidRoot)
}

func TestBuild_ReadDirFailureFailsWholeBuild(t *testing.T) {
	root := tempRoot(t)
	writeFile(t, filepath.Join(root, "ok", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "bad", "b.txt"), "b")

	bad := filepath.Join(root, "bad")
	orig := fs.GetReadDir()
	defer fs.SetReadDir(orig)
	fs.SetReadDir(func(path string) ([]os.DirEntry, error) {
		if path == bad {
			return nil, os.ErrPermission
		}
		return orig(path)
	})

	got, err := snapshot.Build(fs.NewOSFS(), root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Contains(t, err.Error(), bad)
	assert.Empty(t, got.Path)
}
