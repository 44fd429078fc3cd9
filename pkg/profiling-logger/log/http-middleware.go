package log

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const httpReporting = "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/server"

// HTTPAddLoggerToContextMiddleware HTTP Middleware that will add request logger to request context.
func HTTPAddLoggerToContextMiddleware() func(next http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			// Get logger from request
			logger := getLogEntry(r)
			// Add logger to request context in order to keep it
			r = r.WithContext(SetLoggerInContext(r.Context(), logger))

			// Next
			h.ServeHTTP(rw, r)
		})
	}
}

// NewStructuredLogger Generate a new structured logger.
func NewStructuredLogger(
	logger ConfigurableLogger,
	getTraceID func(r *http.Request) string,
	getClientIP func(r *http.Request) string,
) func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&StructuredLogger{
		Logger:      logger,
		GetTraceID:  getTraceID,
		GetClientIP: getClientIP,
	})
}

// StructuredLogger structured logger.
type StructuredLogger struct {
	Logger      ConfigurableLogger
	GetTraceID  func(r *http.Request) string
	GetClientIP func(r *http.Request) string
}

// NewLogEntry new log entry.
func (l *StructuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	logFields := map[string]interface{}{}

	// Get trace id
	traceIDStr := l.GetTraceID(r)
	if traceIDStr != "" {
		logFields["trace_id"] = traceIDStr
	}

	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		logFields["req_id"] = reqID
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	logFields["http_scheme"] = scheme
	logFields["http_proto"] = r.Proto
	logFields["remote_addr"] = r.RemoteAddr
	logFields["user_agent"] = r.UserAgent()
	logFields["client_ip"] = l.GetClientIP(r)

	entry := &StructuredLoggerEntry{
		Logger: l.Logger.WithFields(logFields),
		Method: r.Method,
		URI:    r.RequestURI,
	}

	entry.Logger.DebugTemplate(httpReporting, "Request {HTTPMethod} {URI} started", entry.Method, entry.URI)

	return entry
}

// StructuredLoggerEntry Structured logger entry.
type StructuredLoggerEntry struct {
	Logger ConfigurableLogger
	Method string
	URI    string
}

// Write Write.
func (l *StructuredLoggerEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	tpl := "Request {HTTPMethod} {URI} completed with {RespStatus} ({RespBytesLength} bytes) in {RespElapsedMs}ms"
	values := []interface{}{
		l.Method,
		l.URI,
		status,
		bytes,
		float64(elapsed.Nanoseconds()) / 1000000.0, // nolint: gomnd // No constant for that
	}

	switch {
	case status >= http.StatusBadRequest:
		l.Logger.ErrorTemplate(httpReporting, tpl, values...)
	case status >= http.StatusMultipleChoices:
		l.Logger.WarnTemplate(httpReporting, tpl, values...)
	default:
		l.Logger.InfoTemplate(httpReporting, tpl, values...)
	}
}

// Panic panic log.
func (l *StructuredLoggerEntry) Panic(v interface{}, stack []byte) {
	l.Logger = l.Logger.WithFields(map[string]interface{}{
		"stack": string(stack),
		"panic": fmt.Sprintf("%+v", v),
	})
}

func getLogEntry(r *http.Request) ConfigurableLogger {
	entry, ok := middleware.GetLogEntry(r).(*StructuredLoggerEntry)
	if !ok {
		return nil
	}

	return entry.Logger
}
