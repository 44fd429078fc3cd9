package log

import "context"

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

var loggerContextKey = &contextKey{name: "LOGGER_CONTEXT_KEY"}

// GetLoggerFromContext returns the logger stored in context or nil.
func GetLoggerFromContext(ctx context.Context) ConfigurableLogger {
	res, _ := ctx.Value(loggerContextKey).(ConfigurableLogger)

	return res
}

// SetLoggerInContext stores logger in a new context.
func SetLoggerInContext(ctx context.Context, logger ConfigurableLogger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}
