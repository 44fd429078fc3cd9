package tracing

import (
	"context"
	"net/http"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
	"github.com/uber/jaeger-client-go"
)

type trace struct {
	span opentracing.Span
}

func (t *trace) SetTag(key string, value interface{}) {
	t.span.SetTag(key, value)
}

func (t *trace) SetError(err error) {
	if err == nil {
		return
	}

	ext.Error.Set(t.span, true)
	t.span.LogFields(otlog.Error(err))
}

func (t *trace) GetChildTrace(ctx context.Context, operationName string) (Trace, context.Context) {
	// The child is created by the tracer of its parent, even after a reload
	child := t.span.Tracer().StartSpan(operationName, opentracing.ChildOf(t.span.Context()))

	return &trace{span: child}, opentracing.ContextWithSpan(ctx, child)
}

func (t *trace) Finish() {
	t.span.Finish()
}

func (t *trace) GetTraceID() string {
	sc, ok := t.span.Context().(jaeger.SpanContext)
	if !ok || !sc.IsValid() {
		return ""
	}

	return sc.TraceID().String()
}

// GetTraceFromContext returns the trace stored in ctx or nil.
func GetTraceFromContext(ctx context.Context) Trace {
	sp := opentracing.SpanFromContext(ctx)
	if sp == nil {
		return nil
	}

	return &trace{span: sp}
}

// GetTraceIDFromRequest returns the trace id of the request span, if any.
func GetTraceIDFromRequest(r *http.Request) string {
	if t := GetTraceFromContext(r.Context()); t != nil {
		return t.GetTraceID()
	}

	return ""
}

// reloadableTracer forwards to the current tracer of a service.
type reloadableTracer struct {
	svc Service
}

// NewReloadableTracer returns a tracer resolving svc.GetTracer on each call,
// for long lived users like http middlewares that must follow reloads.
func NewReloadableTracer(svc Service) opentracing.Tracer {
	return &reloadableTracer{svc: svc}
}

func (rt *reloadableTracer) StartSpan(operationName string, opts ...opentracing.StartSpanOption) opentracing.Span {
	return rt.svc.GetTracer().StartSpan(operationName, opts...)
}

func (rt *reloadableTracer) Inject(sm opentracing.SpanContext, format interface{}, carrier interface{}) error {
	return rt.svc.GetTracer().Inject(sm, format, carrier)
}

func (rt *reloadableTracer) Extract(format interface{}, carrier interface{}) (opentracing.SpanContext, error) {
	return rt.svc.GetTracer().Extract(format, carrier)
}
