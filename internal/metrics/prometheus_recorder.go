package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	scanDuration       prom.Histogram
	resolveDuration    prom.Histogram
	runResults         *prom.CounterVec
	validationFailures *prom.CounterVec
	documentsIndexed   prom.Gauge
	sidebars           prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		scanDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "navbuilder",
			Name:      "scan_duration_seconds",
			Help:      "Duration of content index scans",
			Buckets:   prom.DefBuckets,
		}),
		resolveDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "navbuilder",
			Name:      "resolve_duration_seconds",
			Help:      "Duration of validate+resolve runs",
			Buckets:   prom.DefBuckets,
		}),
		runResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navbuilder",
			Name:      "run_results_total",
			Help:      "Resolve run outcomes",
		}, []string{"result"}),
		validationFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navbuilder",
			Name:      "validation_failures_total",
			Help:      "Validation failures by kind",
		}, []string{"kind"}),
		documentsIndexed: prom.NewGauge(prom.GaugeOpts{
			Namespace: "navbuilder",
			Name:      "documents_indexed",
			Help:      "Documents in the last index snapshot",
		}),
		sidebars: prom.NewGauge(prom.GaugeOpts{
			Namespace: "navbuilder",
			Name:      "sidebars",
			Help:      "Sidebars in the last resolved set",
		}),
	}

	reg.MustRegister(pr.scanDuration, pr.resolveDuration, pr.runResults,
		pr.validationFailures, pr.documentsIndexed, pr.sidebars)
	return pr
}

func (pr *PrometheusRecorder) ObserveScanDuration(d time.Duration) {
	pr.scanDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveResolveDuration(d time.Duration) {
	pr.resolveDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncRunResult(result ResultLabel) {
	pr.runResults.WithLabelValues(string(result)).Inc()
}

func (pr *PrometheusRecorder) IncValidationFailure(kind string) {
	pr.validationFailures.WithLabelValues(kind).Inc()
}

func (pr *PrometheusRecorder) SetDocumentsIndexed(n int) {
	pr.documentsIndexed.Set(float64(n))
}

func (pr *PrometheusRecorder) SetSidebars(n int) {
	pr.sidebars.Set(float64(n))
}
