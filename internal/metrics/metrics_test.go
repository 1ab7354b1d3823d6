package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DobbiKov/translate-dir-lib/internal/metrics"
)

func TestObserveSync(t *testing.T) {
	m := metrics.New()
	m.ObserveSync("French", metrics.SyncStats{Copied: 3, Skipped: 1, Failed: 1, DirsCreated: 2, Duration: time.Second})
	m.ObserveSync("French", metrics.SyncStats{Copied: 2})
	m.ObserveSync("German", metrics.SyncStats{Pruned: 4})

	expected := `
# HELP transdir_files_copied_total Untranslatable files copied into target directories
# TYPE transdir_files_copied_total counter
transdir_files_copied_total{language="French"} 5
transdir_files_copied_total{language="German"} 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "transdir_files_copied_total"))

	n, err := testutil.GatherAndCount(m.Registry, "transdir_entries_pruned_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.ObserveSync("Spanish", metrics.SyncStats{Copied: 1})

	path := filepath.Join(t.TempDir(), "transdir.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `transdir_files_copied_total{language="Spanish"} 1`)
	assert.Contains(t, string(data), "transdir_last_sync_timestamp_seconds")
}
