// Package proflog provides ProfilingLogger, a logger facade creating duration timers.
package proflog

import (
	"time"

	"emperror.dev/errors"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/profiler"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/timer"
)

// DefaultCompleteMessage is the completion message of duration timers.
const DefaultCompleteMessage = "Completed."

// ErrInvalidArgument is returned when a required constructor argument is missing.
var ErrInvalidArgument = errors.New("invalid argument")

// Option customizes a ProfilingLogger.
type Option func(pl *ProfilingLogger)

// WithMetrics counts released timers by level and outcome.
func WithMetrics(metricsCl metrics.Client) Option {
	return func(pl *ProfilingLogger) {
		if metricsCl == nil {
			return
		}

		pl.observer = func(level log.Level, outcome timer.Outcome, _ time.Duration) {
			metricsCl.IncTimings(level.String(), string(outcome))
		}
	}
}

// ProfilingLogger pairs a Logger with a Profiler.
// It logs like the Logger and creates timers reporting operation durations.
type ProfilingLogger struct {
	logger   log.Logger
	profiler profiler.Profiler
	observer timer.Observer
}

// New creates a ProfilingLogger. Logger and profiler are required.
func New(logger log.Logger, prof profiler.Profiler, opts ...Option) (*ProfilingLogger, error) {
	if logger == nil {
		return nil, errors.WithMessage(ErrInvalidArgument, "logger is required")
	}

	if prof == nil {
		return nil, errors.WithMessage(ErrInvalidArgument, "profiler is required")
	}

	pl := &ProfilingLogger{
		logger:   logger,
		profiler: prof,
	}

	for _, opt := range opts {
		opt(pl)
	}

	return pl, nil
}

// GetLogger returns the wrapped logger.
func (pl *ProfilingLogger) GetLogger() log.Logger {
	return pl.logger
}

// GetProfiler returns the wrapped profiler.
func (pl *ProfilingLogger) GetProfiler() profiler.Profiler {
	return pl.profiler
}

// TraceDuration starts an information level timer.
// The start line is always logged: a threshold given in opts is ignored.
func (pl *ProfilingLogger) TraceDuration(reporting, startMessage string, opts ...timer.Option) *timer.DurationTimer {
	return timer.New(
		pl.logger,
		log.InformationLevel,
		pl.profiler,
		reporting,
		startMessage,
		pl.timerOptions(opts, timer.WithThreshold(0))...,
	)
}

// DebugDuration starts a debug level timer when debug is enabled for reporting.
// Otherwise it returns false and nothing is measured.
func (pl *ProfilingLogger) DebugDuration(
	reporting, startMessage string,
	opts ...timer.Option,
) (*timer.DurationTimer, bool) {
	if !pl.logger.IsEnabled(reporting, log.DebugLevel) {
		return nil, false
	}

	return timer.New(
		pl.logger,
		log.DebugLevel,
		pl.profiler,
		reporting,
		startMessage,
		pl.timerOptions(opts)...,
	), true
}

func (pl *ProfilingLogger) timerOptions(opts []timer.Option, forced ...timer.Option) []timer.Option {
	res := make([]timer.Option, 0, len(opts)+len(forced)+2) //nolint: gomnd // Defaults
	res = append(res, timer.WithCompleteMessage(DefaultCompleteMessage))

	if pl.observer != nil {
		res = append(res, timer.WithObserver(pl.observer))
	}

	res = append(res, opts...)

	return append(res, forced...)
}
