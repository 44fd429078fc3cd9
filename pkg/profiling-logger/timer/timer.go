// Package timer provides DurationTimer, a scoped timer logging the duration of an operation.
//
// A timer is created at the beginning of an operation and released once with Finish:
//
//	t := timer.New(logger, log.InformationLevel, prof, reporting, "Loading cache")
//	defer t.Finish(&err)
package timer

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/profiler"
)

// DefaultFailMessage is logged on failure when no fail message is known.
const DefaultFailMessage = "Failed."

const (
	startTemplate    = "{StartMessage} [Timing {TimingId}]"
	completeTemplate = "{EndMessage} ({Duration}ms) [Timing {TimingId}]"
	failTemplate     = "{FailMessage} ({Duration}ms) [Timing {TimingId}]"
	timingIDLength   = 7
)

// DurationTimer is one timed operation.
type DurationTimer struct {
	logger          log.Logger
	step            profiler.Step
	observer        Observer
	now             func() time.Time
	start           time.Time
	failErr         error
	reporting       string
	startMessage    string
	completeMessage string
	failMessage     string
	failReason      string
	timingID        string
	level           log.Level
	threshold       time.Duration
	elapsed         time.Duration
	mu              sync.Mutex
	failed          bool
	released        bool
}

// New starts a timer: a profiler step is started and, without threshold, the start message is logged at level.
func New(
	logger log.Logger,
	level log.Level,
	prof profiler.Profiler,
	reporting string,
	startMessage string,
	opts ...Option,
) *DurationTimer {
	return newWithClock(time.Now, logger, level, prof, reporting, startMessage, opts...)
}

func newWithClock(
	now func() time.Time,
	logger log.Logger,
	level log.Level,
	prof profiler.Profiler,
	reporting string,
	startMessage string,
	opts ...Option,
) *DurationTimer {
	o := &options{ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}

	t := &DurationTimer{
		logger:          logger,
		observer:        o.observer,
		now:             now,
		reporting:       reporting,
		startMessage:    startMessage,
		completeMessage: o.completeMessage,
		failMessage:     o.failMessage,
		timingID:        newTimingID(),
		level:           level,
		threshold:       o.threshold,
	}

	t.step = prof.Step(o.ctx, "["+shortName(reporting)+"] "+startMessage)

	// Only log start if no threshold
	if t.threshold == 0 {
		t.emit(startTemplate, startMessage, t.timingID)
	}

	t.start = t.now()

	return t
}

// Fail marks the operation as failed. message overrides the configured fail message.
func (t *DurationTimer) Fail(err error, message string) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released {
		return
	}

	t.failed = true

	if err != nil {
		t.failErr = err
	}

	if message != "" {
		t.failReason = message
	}
}

// Finish releases the timer. When errp points to a non nil error, the operation is marked as failed.
// Only the first call has an effect. Finish on a nil timer does nothing.
func (t *DurationTimer) Finish(errp *error) {
	if t == nil {
		return
	}

	if errp != nil && *errp != nil {
		t.Fail(*errp, "")
	}

	t.mu.Lock()

	if t.released {
		t.mu.Unlock()

		return
	}

	t.released = true
	t.elapsed = t.now().Sub(t.start)
	failed, failErr, failMsg := t.failed, t.failErr, t.resolveFailMessage()

	t.mu.Unlock()

	t.step.Finish()

	ms := t.elapsed.Milliseconds()

	var outcome Outcome

	switch {
	case failed:
		t.logger.ErrorWithTemplate(t.reporting, failErr, failTemplate, failMsg, ms, t.timingID)

		outcome = OutcomeFailed
	case t.elapsed >= t.threshold && strings.TrimSpace(t.completeMessage) != "":
		t.emit(completeTemplate, t.completeMessage, ms, t.timingID)

		outcome = OutcomeCompleted
	default:
		outcome = OutcomeSuppressed
	}

	if t.observer != nil {
		t.observer(t.level, outcome, t.elapsed)
	}
}

func (t *DurationTimer) resolveFailMessage() string {
	if t.failReason != "" {
		return t.failReason
	}

	if t.failMessage != "" {
		return t.failMessage
	}

	return DefaultFailMessage
}

func (t *DurationTimer) emit(messageTemplate string, propertyValues ...interface{}) {
	switch t.level {
	case log.VerboseLevel:
		t.logger.VerboseTemplate(t.reporting, messageTemplate, propertyValues...)
	case log.DebugLevel:
		t.logger.DebugTemplate(t.reporting, messageTemplate, propertyValues...)
	case log.InformationLevel:
		t.logger.InfoTemplate(t.reporting, messageTemplate, propertyValues...)
	case log.WarningLevel:
		t.logger.WarnTemplate(t.reporting, messageTemplate, propertyValues...)
	case log.ErrorLevel:
		t.logger.ErrorTemplate(t.reporting, messageTemplate, propertyValues...)
	default:
		t.logger.CriticalTemplate(messageTemplate, propertyValues...)
	}
}

// Level returns the level of start and completion lines.
// Accessors return zero values on a nil timer.
func (t *DurationTimer) Level() log.Level {
	if t == nil {
		return log.VerboseLevel
	}

	return t.level
}

// Reporting returns the reporting category.
func (t *DurationTimer) Reporting() string {
	if t == nil {
		return ""
	}

	return t.reporting
}

// Threshold returns the minimum duration for the completion line.
func (t *DurationTimer) Threshold() time.Duration {
	if t == nil {
		return 0
	}

	return t.threshold
}

// TimingID returns the short identifier correlating start and end lines.
func (t *DurationTimer) TimingID() string {
	if t == nil {
		return ""
	}

	return t.timingID
}

// Elapsed returns the measured duration, or the running one before release.
func (t *DurationTimer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released {
		return t.elapsed
	}

	return t.now().Sub(t.start)
}

func newTimingID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:timingIDLength]
}

// shortName keeps the type name of a package qualified reporting category.
func shortName(reporting string) string {
	s := reporting
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}

	if i := strings.LastIndexByte(s, '.'); i >= 0 && i+1 < len(s) {
		s = s[i+1:]
	}

	return s
}
