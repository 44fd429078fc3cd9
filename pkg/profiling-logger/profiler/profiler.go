// Package profiler measures named steps of an application.
package profiler

import (
	"context"

	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/tracing"
)

// Profiler starts named timing steps.
//
//go:generate mockgen -destination=./mocks/mock_Profiler.go -package=mocks github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/profiler Profiler,Step
type Profiler interface {
	// Step starts a step. It is a child of the trace found in ctx, if any.
	Step(ctx context.Context, name string) Step
}

// Step is a running profiler step.
type Step interface {
	// Finish ends the step. Calls after the first one do nothing.
	Finish()
}

// New returns a profiler recording steps as traces and as duration metrics.
func New(tracingSvc tracing.Service, metricsCl metrics.Client) Profiler {
	return &tracingProfiler{
		tracingSvc: tracingSvc,
		metricsCl:  metricsCl,
	}
}

// NewNoop returns a profiler whose steps do nothing.
func NewNoop() Profiler {
	return noopProfiler{}
}
