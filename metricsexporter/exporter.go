// Package metricsexporter exposes an index.Index's distribution
// statistics as Prometheus gauges, the metrics stack hashicorp/nomad
// depends on (github.com/prometheus/client_golang).
package metricsexporter

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skolem/fpindex/index"
)

// StatsSource is satisfied by *index.Index[T] for any T.
type StatsSource interface {
	DistributionStats() index.Stats
	Name() string
}

// Exporter reads a StatsSource's distribution stats into a small set
// of gauges each time Collect is called, and serves them on an
// http.Handler. It does not refresh the gauges on its own.
type Exporter struct {
	registry *prometheus.Registry
	leaves   *prometheus.GaugeVec
	entries  *prometheus.GaugeVec
	mean     *prometheus.GaugeVec
	stddev   *prometheus.GaugeVec
}

// New constructs an Exporter with its own registry, so it can be
// mounted on a handler independent of the process-global default
// registry.
func New() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		leaves: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fpindex_leaves",
			Help: "Number of non-empty fingerprint trie leaves.",
		}, []string{"index"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fpindex_entries",
			Help: "Total number of terms stored across all leaves.",
		}, []string{"index"}),
		mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fpindex_entries_per_leaf_mean",
			Help: "Mean terms-per-leaf across the index.",
		}, []string{"index"}),
		stddev: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fpindex_entries_per_leaf_stddev",
			Help: "Standard deviation of terms-per-leaf across the index.",
		}, []string{"index"}),
	}
	e.registry.MustRegister(e.leaves, e.entries, e.mean, e.stddev)
	return e
}

// Collect reads src's current distribution stats into the gauges.
func (e *Exporter) Collect(src StatsSource) {
	stats := src.DistributionStats()
	name := src.Name()

	e.leaves.WithLabelValues(name).Set(float64(stats.Leaves))
	e.entries.WithLabelValues(name).Set(float64(stats.Entries))
	e.mean.WithLabelValues(name).Set(stats.Mean)
	e.stddev.WithLabelValues(name).Set(stats.StdDev)
}

// Handler returns the http.Handler serving the exporter's registry in
// the Prometheus text exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
