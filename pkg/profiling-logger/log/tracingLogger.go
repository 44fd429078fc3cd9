package log

import "fmt"

const tracingReporting = "github.com/uber/jaeger-client-go"

type tracingLogger struct {
	logger Logger
}

func (tl *tracingLogger) Error(msg string) {
	tl.logger.ErrorMessage(tracingReporting, msg)
}

func (tl *tracingLogger) Infof(msg string, args ...interface{}) {
	tl.logger.Info(tracingReporting, fmt.Sprintf(msg, args...))
}

// Debugf logs a message at debug priority.
func (tl *tracingLogger) Debugf(msg string, args ...interface{}) {
	// Avoid formatting for nothing
	if !tl.logger.IsEnabled(tracingReporting, DebugLevel) {
		return
	}

	tl.logger.Debug(tracingReporting, fmt.Sprintf(msg, args...))
}
