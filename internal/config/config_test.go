package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DobbiKov/translate-dir-lib/internal/config"
	"github.com/DobbiKov/translate-dir-lib/internal/fs"
	"github.com/DobbiKov/translate-dir-lib/internal/util"
)

func TestLoad(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvWorkers, "3")

	s := config.Load()
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, 3, s.Workers)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvWorkers, "zero")

	s := config.Load()
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, util.WorkerCount(), s.Workers)
}

func TestCheckVersion(t *testing.T) {
	for _, v := range []string{"", "1.0.0", "1.4.2", "v1.1"} {
		assert.NoError(t, config.CheckVersion(v), v)
	}
	for _, v := range []string{"2.0.0", "0.9.0", "banana"} {
		assert.ErrorIs(t, config.CheckVersion(v), config.ErrUnsupportedVersion, v)
	}
}

func TestResolveProjectRoot(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/home/u/book/book_fr/ch1", 0o755))
	require.NoError(t, m.WriteFile("/home/u/book/"+config.ConfigFile, []byte("{}"), 0o644))

	root, err := config.ResolveProjectRoot(m, "/home/u/book/book_fr/ch1")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/book", root)

	root, err = config.ResolveProjectRoot(m, "/home/u/book")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/book", root)

	_, err = config.ResolveProjectRoot(m, "/home/u")
	require.ErrorIs(t, err, config.ErrNotInProject)
}

func TestResolveProjectRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/a/"+config.ConfigFile, 0o755))

	_, err := config.ResolveProjectRoot(m, "/a")
	require.ErrorIs(t, err, config.ErrNotInProject)
}
