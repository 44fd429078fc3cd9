package profiler

import (
	"context"
	"sync"
	"time"

	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/tracing"
)

type tracingProfiler struct {
	tracingSvc tracing.Service
	metricsCl  metrics.Client
}

func (p *tracingProfiler) Step(ctx context.Context, name string) Step {
	tr, _ := p.tracingSvc.StartTrace(ctx, name)

	return &tracingStep{
		name:      name,
		trace:     tr,
		metricsCl: p.metricsCl,
		start:     time.Now(),
	}
}

type tracingStep struct {
	name      string
	trace     tracing.Trace
	metricsCl metrics.Client
	start     time.Time
	once      sync.Once
}

func (s *tracingStep) Finish() {
	s.once.Do(func() {
		s.trace.Finish()
		s.metricsCl.ObserveStep(s.name, time.Since(s.start))
	})
}

type noopProfiler struct{}

func (noopProfiler) Step(_ context.Context, _ string) Step {
	return noopStep{}
}

type noopStep struct{}

func (noopStep) Finish() {}
