package snapshot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

func TestRel(t *testing.T) {
	for _, tc := range []struct {
		root, path, want string
	}{
		{"/p/src", "/p/src/a.txt", "a.txt"},
		{"/p/src", "/p/src/x/y/z", "x/y/z"},
		{"/p/src/", "/p/src", "."},
		{"/p/src", "/p/src/../src/b", "b"},
	} {
		got, err := snapshot.Rel(tc.root, tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got)
	}
}

func TestRel_NotUnderRoot(t *testing.T) {
	for _, tc := range []struct{ root, path string }{
		{"/p/src", "/p/other/a.txt"},
		{"/p/src", "/p/src-copy/a.txt"},
		{"/p/src", "/p"},
		{"/p/src", "relative/a.txt"},
	} {
		_, err := snapshot.Rel(tc.root, tc.path)
		require.ErrorIs(t, err, snapshot.ErrNotUnderRoot, tc.path)

		var nur *snapshot.NotUnderRootError
		require.True(t, errors.As(err, &nur))
		assert.Equal(t, tc.root, nur.Root)
	}
	assert.True(t, snapshot.IsUnder("/p", "/p/src"))
	assert.False(t, snapshot.IsUnder("/p/src", "/p"))
}
