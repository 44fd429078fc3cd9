package timer

import (
	"context"
	"time"

	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
)

// Outcome is how a timer was released.
type Outcome string

const (
	// OutcomeCompleted is used when the completion line was logged.
	OutcomeCompleted Outcome = "completed"
	// OutcomeFailed is used when the failure line was logged.
	OutcomeFailed Outcome = "failed"
	// OutcomeSuppressed is used when nothing was logged (below threshold or no complete message).
	OutcomeSuppressed Outcome = "suppressed"
)

// Observer is notified once a timer is released.
type Observer func(level log.Level, outcome Outcome, elapsed time.Duration)

// Option customizes a DurationTimer.
type Option func(o *options)

type options struct {
	ctx             context.Context //nolint: containedctx // Only used at creation
	observer        Observer
	completeMessage string
	failMessage     string
	threshold       time.Duration
}

// WithCompleteMessage sets the message logged on normal release.
// An empty message disables the completion line.
func WithCompleteMessage(msg string) Option {
	return func(o *options) { o.completeMessage = msg }
}

// WithFailMessage sets the message logged on failure when Fail gives none.
func WithFailMessage(msg string) Option {
	return func(o *options) { o.failMessage = msg }
}

// WithThreshold sets the minimum elapsed duration for the completion line.
// With a non zero threshold, the start line isn't logged.
func WithThreshold(d time.Duration) Option {
	return func(o *options) { o.threshold = d }
}

// WithContext sets the context the profiler step is started with.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithObserver sets a release observer.
func WithObserver(observer Observer) Option {
	return func(o *options) { o.observer = observer }
}
