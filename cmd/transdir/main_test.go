package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func transdir(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-C", dir}, args...), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	res := transdir(t, dir, args...)
	require.Equal(t, 0, res.code, "transdir %s\nstdout: %s\nstderr: %s", strings.Join(args, " "), res.stdout, res.stderr)
	return res.stdout
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// setup returns a project root holding src/{a.txt,b.txt,img/logo.png}
// with src as the French source and an English target.
func setup(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeFile(t, filepath.Join(root, "src", "a.txt"), "alpha")
	writeFile(t, filepath.Join(root, "src", "b.txt"), "bravo")
	writeFile(t, filepath.Join(root, "src", "img", "logo.png"), "png")

	assert.Contains(t, mustRun(t, root, "init", "book"), `Initialized project "book"`)
	assert.Contains(t, mustRun(t, root, "set-source", "src", "fr"), "Source set to src (French, 3 files)")
	assert.Equal(t, "Target English: book_en\n", mustRun(t, root, "set-target", "EN"))
	return root
}

func TestWorkflow(t *testing.T) {
	root := setup(t)
	src := filepath.Join(root, "src")

	assert.Equal(t, "translatable: src/b.txt\n", mustRun(t, src, "add", "b.txt"))
	assert.Equal(t, "src/b.txt\n", mustRun(t, root, "list"))

	out := mustRun(t, root, "sync", "-q")
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "2 copied, 1 skipped")

	en := filepath.Join(root, "book_en")
	data, err := os.ReadFile(filepath.Join(en, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))
	assert.FileExists(t, filepath.Join(en, "img", "logo.png"))
	assert.NoFileExists(t, filepath.Join(en, "b.txt"))

	status := mustRun(t, root, "status")
	assert.Contains(t, status, "English (book_en)")
	assert.Contains(t, status, "2 ok, 0 differs, 0 missing, 0 translated, 1 untranslated")

	info := mustRun(t, root, "info")
	assert.Contains(t, info, "Project: book")
	assert.Contains(t, info, "Source:  French src (3 files, 1 translatable)")
	assert.Contains(t, info, "English    book_en")

	assert.Equal(t, "untranslatable: src/b.txt\n", mustRun(t, root, "remove", "src/b.txt"))
	assert.Empty(t, mustRun(t, root, "list"))

	assert.Equal(t, "Removed target English\n", mustRun(t, root, "remove-target", "english"))
	assert.NoDirExists(t, en)
}

func TestTreeOutput(t *testing.T) {
	root := setup(t)
	mustRun(t, root, "add", "src/img/logo.png")

	text := mustRun(t, root, "tree")
	assert.Equal(t, "src/\n  img/\n    logo.png *\n  a.txt\n  b.txt\n", text)

	var dir snapshot.Directory
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, root, "tree", "-o", "json")), &dir))
	assert.Equal(t, filepath.Join(root, "src"), dir.Path)
	require.Len(t, dir.Dirs, 1)
	assert.True(t, dir.Dirs[0].Files[0].Translatable)

	mustRun(t, root, "sync", "--quiet")
	var target snapshot.Directory
	require.NoError(t, yaml.Unmarshal([]byte(mustRun(t, root, "tree", "en", "-o", "yaml")), &target))
	assert.Equal(t, filepath.Join(root, "book_en"), target.Path)
	_, files := target.Count()
	assert.Equal(t, 2, files)
}

func TestSyncPruneAndMetrics(t *testing.T) {
	root := setup(t)
	writeFile(t, filepath.Join(root, "book_en", "stale.txt"), "old")

	out := mustRun(t, root, "sync", "-q", "--prune", "--metrics-file", "sync.prom")
	assert.Contains(t, out, "1 pruned")
	assert.NoFileExists(t, filepath.Join(root, "book_en", "stale.txt"))

	prom, err := os.ReadFile(filepath.Join(root, "sync.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `transdir_files_copied_total{language="English"} 3`)
}

func TestRefreshCommand(t *testing.T) {
	root := setup(t)
	writeFile(t, filepath.Join(root, "src", "docs", "c.txt"), "charlie")

	assert.Equal(t, "Rescanned src: 2 directories, 4 files, 0 translatable\n", mustRun(t, root, "refresh"))
	mustRun(t, root, "add", "src/docs/c.txt")
	assert.Equal(t, "src is unchanged: 2 directories, 4 files, 1 translatable\n", mustRun(t, root, "refresh"))
}

func TestUsageErrors(t *testing.T) {
	root := setup(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"frobnicate"}, `unknown command "frobnicate"`},
		{"unknown language", []string{"set-target", "klingon"}, "unknown language"},
		{"unknown flag", []string{"sync", "--bogus"}, "unknown flag: --bogus"},
		{"missing argument", []string{"set-source", "src"}, "usage: set-source <dir> <language>"},
		{"bad output", []string{"tree", "-o", "xml"}, `unknown output format "xml"`},
		{"bad log format", []string{"--log-format", "xml", "info"}, "invalid log-format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := transdir(t, root, tc.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, tc.want)
		})
	}
}

func TestFailuresExitOne(t *testing.T) {
	root := setup(t)

	res := transdir(t, root, "set-target", "en")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "already a target language")

	res = transdir(t, root, "add", "src/nope.txt", "src/a.txt")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "file not found")
	assert.Equal(t, "translatable: src/a.txt\n", res.stdout)

	res = transdir(t, t.TempDir(), "info")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not inside a translation project")
}

func TestHelp(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir)
	assert.Contains(t, out, "Usage:\n  transdir [options] <command> [arguments]")
	assert.Contains(t, out, "set-target")

	out = mustRun(t, dir, "help")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "sync")

	out = mustRun(t, dir, "help", "sync")
	assert.Contains(t, out, "Usage: sync [options]")
	assert.Contains(t, out, "--prune")

	out = mustRun(t, dir, "sync", "--help")
	assert.Contains(t, out, "Usage: sync [options]")

	res := transdir(t, dir, "help", "nope")
	assert.Equal(t, 2, res.code)
}
