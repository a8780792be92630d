// Package metrics provides observability hooks for build metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection needs no nil checks and costs nothing
// when disabled. The Prometheus implementation is swapped in when a registry
// is configured.
package metrics

import "time"

// Recorder defines observability hooks for build and docset metrics.
type Recorder interface {
	ObserveDocsetDuration(docset string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	AddFilesCopied(docset string, n int)
	AddFilesSkipped(docset string, n int)
	IncBuildOutcome(outcome string) // outcome: success|failed
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveDocsetDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)          {}
func (NoopRecorder) AddFilesCopied(string, int)                  {}
func (NoopRecorder) AddFilesSkipped(string, int)                 {}
func (NoopRecorder) IncBuildOutcome(string)                      {}
