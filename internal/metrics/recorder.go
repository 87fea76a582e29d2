package metrics

import "time"

// ResultLabel enumerates run result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for scan and resolve runs.
// Implementations may forward to Prometheus; the NoopRecorder allows
// optional injection.
type Recorder interface {
	ObserveScanDuration(d time.Duration)
	ObserveResolveDuration(d time.Duration)
	IncRunResult(result ResultLabel)
	IncValidationFailure(kind string) // kind: unknown_document|unknown_directory|duplicate_sidebar|conflicting_collapse
	SetDocumentsIndexed(n int)
	SetSidebars(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveScanDuration(time.Duration)    {}
func (NoopRecorder) ObserveResolveDuration(time.Duration) {}
func (NoopRecorder) IncRunResult(ResultLabel)             {}
func (NoopRecorder) IncValidationFailure(string)          {}
func (NoopRecorder) SetDocumentsIndexed(int)              {}
func (NoopRecorder) SetSidebars(int)                      {}
