package tracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
)

// Service interface
type Service interface {
	// Reload service (useful for configuration change)
	Reload() error
	// Get global tracer object
	GetTracer() opentracing.Tracer
	// Start a trace, child of the trace found in context if any.
	// The returned context contains the new trace.
	StartTrace(ctx context.Context, operationName string) (Trace, context.Context)
	// Flush and close the tracer
	Close() error
}

// Trace is a running span.
type Trace interface {
	// Set tag on trace
	SetTag(key string, value interface{})
	// Mark the trace as failed and attach the error
	SetError(err error)
	// Start a child trace. The returned context contains the child.
	GetChildTrace(ctx context.Context, operationName string) (Trace, context.Context)
	// Will finish the trace
	Finish()
	// Get trace id as a string (useful for logs), empty when unknown
	GetTraceID() string
}

func New(cfgManager config.Manager, logger log.TracingLogger, metricsCl metrics.Client) (Service, error) {
	return newService(cfgManager, logger, metricsCl)
}
