package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	docsetDuration *prom.HistogramVec
	buildDuration  prom.Histogram
	filesCopied    *prom.CounterVec
	filesSkipped   *prom.CounterVec
	buildOutcome   *prom.CounterVec
}

// NewPrometheusRecorder creates a recorder and registers its collectors with reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		docsetDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "docfanout_docset_duration_seconds",
			Help:    "Duration of individual docset builds.",
			Buckets: prom.DefBuckets,
		}, []string{"docset"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Name:    "docfanout_build_duration_seconds",
			Help:    "Duration of full builds.",
			Buckets: prom.ExponentialBuckets(0.1, 2, 12),
		}),
		filesCopied: prom.NewCounterVec(prom.CounterOpts{
			Name: "docfanout_files_copied_total",
			Help: "Files copied into the build tree, per docset.",
		}, []string{"docset"}),
		filesSkipped: prom.NewCounterVec(prom.CounterOpts{
			Name: "docfanout_files_skipped_total",
			Help: "Files skipped for unsupported extensions, per docset.",
		}, []string{"docset"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Name: "docfanout_build_outcome_total",
			Help: "Full build outcomes.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.docsetDuration, r.buildDuration, r.filesCopied, r.filesSkipped, r.buildOutcome)
	return r
}

func (r *PrometheusRecorder) ObserveDocsetDuration(docset string, d time.Duration) {
	r.docsetDuration.WithLabelValues(docset).Observe(d.Seconds())
}

func (r *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	r.buildDuration.Observe(d.Seconds())
}

func (r *PrometheusRecorder) AddFilesCopied(docset string, n int) {
	r.filesCopied.WithLabelValues(docset).Add(float64(n))
}

func (r *PrometheusRecorder) AddFilesSkipped(docset string, n int) {
	r.filesSkipped.WithLabelValues(docset).Add(float64(n))
}

func (r *PrometheusRecorder) IncBuildOutcome(outcome string) {
	r.buildOutcome.WithLabelValues(outcome).Inc()
}
