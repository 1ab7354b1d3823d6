// Package metrics provides Prometheus counters for sync runs. The CLI has
// no long-running process to scrape, so results are exported in the
// node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Registry *prometheus.Registry

	filesCopied  *prometheus.CounterVec
	filesSkipped *prometheus.CounterVec
	copyFailures *prometheus.CounterVec
	dirsCreated  *prometheus.CounterVec
	filesPruned  *prometheus.CounterVec
	syncDuration *prometheus.HistogramVec
	lastSync     *prometheus.GaugeVec
}

// SyncStats is what one target sync contributes.
type SyncStats struct {
	Copied      int
	Skipped     int
	Failed      int
	DirsCreated int
	Pruned      int
	Duration    time.Duration
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		filesCopied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transdir_files_copied_total",
				Help: "Untranslatable files copied into target directories",
			},
			[]string{"language"},
		),
		filesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transdir_files_skipped_total",
				Help: "Translatable files left untouched by the mirror",
			},
			[]string{"language"},
		),
		copyFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transdir_copy_failures_total",
				Help: "Files that could not be copied into target directories",
			},
			[]string{"language"},
		),
		dirsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transdir_dirs_created_total",
				Help: "Directories created in target directories",
			},
			[]string{"language"},
		),
		filesPruned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transdir_entries_pruned_total",
				Help: "Target entries removed because they are gone from the source",
			},
			[]string{"language"},
		),
		syncDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transdir_sync_duration_seconds",
				Help:    "Time to sync one target directory",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"language"},
		),
		lastSync: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "transdir_last_sync_timestamp_seconds",
				Help: "Unix time of the last finished sync per target",
			},
			[]string{"language"},
		),
	}
	m.Registry.MustRegister(
		m.filesCopied,
		m.filesSkipped,
		m.copyFailures,
		m.dirsCreated,
		m.filesPruned,
		m.syncDuration,
		m.lastSync,
	)
	return m
}

// ObserveSync records one finished target sync.
func (m *Metrics) ObserveSync(language string, s SyncStats) {
	m.filesCopied.WithLabelValues(language).Add(float64(s.Copied))
	m.filesSkipped.WithLabelValues(language).Add(float64(s.Skipped))
	m.copyFailures.WithLabelValues(language).Add(float64(s.Failed))
	m.dirsCreated.WithLabelValues(language).Add(float64(s.DirsCreated))
	m.filesPruned.WithLabelValues(language).Add(float64(s.Pruned))
	m.syncDuration.WithLabelValues(language).Observe(s.Duration.Seconds())
	m.lastSync.WithLabelValues(language).SetToCurrentTime()
}

// WriteTextfile writes every metric to path, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
