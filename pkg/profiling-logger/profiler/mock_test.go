//go:build unit

package profiler

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/tracing"
)

type traceTest struct {
	span opentracing.Span
}

func (t *traceTest) SetTag(key string, value interface{}) { t.span.SetTag(key, value) }
func (t *traceTest) SetError(_ error)                     {}
func (t *traceTest) Finish()                              { t.span.Finish() }
func (*traceTest) GetTraceID() string                     { return "" }
func (t *traceTest) GetChildTrace(ctx context.Context, operationName string) (tracing.Trace, context.Context) {
	child := t.span.Tracer().StartSpan(operationName, opentracing.ChildOf(t.span.Context()))

	return &traceTest{span: child}, opentracing.ContextWithSpan(ctx, child)
}

type tracingServiceTest struct {
	tracer *mocktracer.MockTracer
}

func (*tracingServiceTest) Reload() error                   { return nil }
func (*tracingServiceTest) Close() error                    { return nil }
func (s *tracingServiceTest) GetTracer() opentracing.Tracer { return s.tracer }
func (s *tracingServiceTest) StartTrace(ctx context.Context, operationName string) (tracing.Trace, context.Context) {
	opts := []opentracing.StartSpanOption{}
	if parent := opentracing.SpanFromContext(ctx); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}

	span := s.tracer.StartSpan(operationName, opts...)

	return &traceTest{span: span}, opentracing.ContextWithSpan(ctx, span)
}
