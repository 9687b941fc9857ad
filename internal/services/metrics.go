package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExportMetrics instruments the export pipeline.
type ExportMetrics struct {
	exports  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	size     *prometheus.HistogramVec
}

// NewExportMetrics registers the export metrics with the given registerer.
func NewExportMetrics(reg prometheus.Registerer) *ExportMetrics {
	factory := promauto.With(reg)
	return &ExportMetrics{
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cocopet_exports_total",
			Help: "Export operations by report kind, format and outcome.",
		}, []string{"kind", "format", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cocopet_export_duration_seconds",
			Help:    "Time spent building and writing one export.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind", "format"}),
		size: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cocopet_export_size_bytes",
			Help:    "Serialized artifact sizes.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}, []string{"kind", "format"}),
	}
}

// observe records one finished export attempt.
func (m *ExportMetrics) observe(kind, format string, seconds float64, bytes int64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.exports.WithLabelValues(kind, format, status).Inc()
	if err == nil {
		m.duration.WithLabelValues(kind, format).Observe(seconds)
		m.size.WithLabelValues(kind, format).Observe(float64(bytes))
	}
}
