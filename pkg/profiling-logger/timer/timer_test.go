//go:build unit

package timer

import (
	"context"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	lmocks "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log/mocks"
	pmocks "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/profiler/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testReporting = "github.com/acme/app.Service"

// fakeClock returns start on the first call and start+elapsed afterwards.
func fakeClock(elapsed time.Duration) func() time.Time {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0

	return func() time.Time {
		calls++
		if calls == 1 {
			return start
		}

		return start.Add(elapsed)
	}
}

func TestDurationTimer_lifecycle(t *testing.T) {
	fakeErr := errors.New("fake")
	tests := []struct {
		name        string
		level       log.Level
		opts        []Option
		elapsed     time.Duration
		release     func(tm *DurationTimer)
		setup       func(l *lmocks.MockLoggerMockRecorder)
		wantOutcome Outcome
	}{
		{
			name:    "information timer logs start and completion",
			level:   log.InformationLevel,
			opts:    []Option{WithCompleteMessage("Completed.")},
			elapsed: 42 * time.Millisecond,
			release: func(tm *DurationTimer) { tm.Finish(nil) },
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				gomock.InOrder(
					l.InfoTemplate(testReporting, startTemplate, "Loading", gomock.Any()),
					l.InfoTemplate(testReporting, completeTemplate, "Completed.", int64(42), gomock.Any()),
				)
			},
			wantOutcome: OutcomeCompleted,
		},
		{
			name:        "debug timer below threshold logs nothing",
			level:       log.DebugLevel,
			opts:        []Option{WithCompleteMessage("Completed."), WithThreshold(100 * time.Millisecond)},
			elapsed:     99 * time.Millisecond,
			release:     func(tm *DurationTimer) { tm.Finish(nil) },
			setup:       func(_ *lmocks.MockLoggerMockRecorder) {},
			wantOutcome: OutcomeSuppressed,
		},
		{
			name:    "debug timer at threshold logs completion only",
			level:   log.DebugLevel,
			opts:    []Option{WithCompleteMessage("Done."), WithThreshold(100 * time.Millisecond)},
			elapsed: 100 * time.Millisecond,
			release: func(tm *DurationTimer) { tm.Finish(nil) },
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.DebugTemplate(testReporting, completeTemplate, "Done.", int64(100), gomock.Any())
			},
			wantOutcome: OutcomeCompleted,
		},
		{
			name:    "empty complete message suppresses completion",
			level:   log.InformationLevel,
			opts:    []Option{WithCompleteMessage(" ")},
			elapsed: time.Second,
			release: func(tm *DurationTimer) { tm.Finish(nil) },
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.InfoTemplate(testReporting, startTemplate, "Loading", gomock.Any())
			},
			wantOutcome: OutcomeSuppressed,
		},
		{
			name:    "error released through Finish logs failure with default message",
			level:   log.InformationLevel,
			opts:    []Option{WithCompleteMessage("Completed.")},
			elapsed: 5 * time.Millisecond,
			release: func(tm *DurationTimer) {
				err := fakeErr
				tm.Finish(&err)
			},
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.InfoTemplate(testReporting, startTemplate, "Loading", gomock.Any())
				l.ErrorWithTemplate(testReporting, fakeErr, failTemplate, DefaultFailMessage, int64(5), gomock.Any())
			},
			wantOutcome: OutcomeFailed,
		},
		{
			name:    "failure ignores threshold and uses configured fail message",
			level:   log.DebugLevel,
			opts:    []Option{WithFailMessage("Loading failed."), WithThreshold(time.Hour)},
			elapsed: time.Millisecond,
			release: func(tm *DurationTimer) {
				err := fakeErr
				tm.Finish(&err)
			},
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.ErrorWithTemplate(testReporting, fakeErr, failTemplate, "Loading failed.", int64(1), gomock.Any())
			},
			wantOutcome: OutcomeFailed,
		},
		{
			name:    "explicit Fail message wins",
			level:   log.InformationLevel,
			opts:    []Option{WithFailMessage("Loading failed.")},
			elapsed: time.Millisecond,
			release: func(tm *DurationTimer) {
				tm.Fail(nil, "Cache unavailable.")
				tm.Finish(nil)
			},
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.InfoTemplate(testReporting, startTemplate, "Loading", gomock.Any())
				l.ErrorWithTemplate(testReporting, nil, failTemplate, "Cache unavailable.", int64(1), gomock.Any())
			},
			wantOutcome: OutcomeFailed,
		},
		{
			name:    "nil error pointer target is a normal release",
			level:   log.WarningLevel,
			opts:    []Option{WithCompleteMessage("Completed.")},
			elapsed: 3 * time.Millisecond,
			release: func(tm *DurationTimer) {
				var err error
				tm.Finish(&err)
			},
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.WarnTemplate(testReporting, startTemplate, "Loading", gomock.Any())
				l.WarnTemplate(testReporting, completeTemplate, "Completed.", int64(3), gomock.Any())
			},
			wantOutcome: OutcomeCompleted,
		},
		{
			name:    "double release logs once",
			level:   log.VerboseLevel,
			opts:    []Option{WithCompleteMessage("Completed.")},
			elapsed: 3 * time.Millisecond,
			release: func(tm *DurationTimer) {
				tm.Finish(nil)
				tm.Finish(nil)
				// Fail after release is ignored
				tm.Fail(errors.New("late"), "late")
			},
			setup: func(l *lmocks.MockLoggerMockRecorder) {
				l.VerboseTemplate(testReporting, startTemplate, "Loading", gomock.Any())
				l.VerboseTemplate(testReporting, completeTemplate, "Completed.", int64(3), gomock.Any()).Times(1)
			},
			wantOutcome: OutcomeCompleted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loggerMock := lmocks.NewMockLogger(ctrl)
			profMock := pmocks.NewMockProfiler(ctrl)
			stepMock := pmocks.NewMockStep(ctrl)

			profMock.EXPECT().Step(gomock.Any(), "[Service] Loading").Return(stepMock)
			stepMock.EXPECT().Finish().Times(1)

			tt.setup(loggerMock.EXPECT())

			outcomes := []Outcome{}
			opts := append([]Option{WithObserver(func(level log.Level, outcome Outcome, elapsed time.Duration) {
				assert.Equal(t, tt.level, level)
				assert.Equal(t, tt.elapsed, elapsed)
				outcomes = append(outcomes, outcome)
			})}, tt.opts...)

			tm := newWithClock(fakeClock(tt.elapsed), loggerMock, tt.level, profMock, testReporting, "Loading", opts...)
			tt.release(tm)

			assert.Equal(t, []Outcome{tt.wantOutcome}, outcomes)
			assert.Equal(t, tt.elapsed, tm.Elapsed())
		})
	}
}

func TestDurationTimer_timingIDCorrelatesLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	loggerMock := lmocks.NewMockLogger(ctrl)
	profMock := pmocks.NewMockProfiler(ctrl)
	stepMock := pmocks.NewMockStep(ctrl)

	profMock.EXPECT().Step(gomock.Any(), gomock.Any()).Return(stepMock)
	stepMock.EXPECT().Finish()

	ids := []interface{}{}
	record := func(_ string, _ string, values ...interface{}) {
		ids = append(ids, values[len(values)-1])
	}

	loggerMock.EXPECT().InfoTemplate(testReporting, startTemplate, gomock.Any()).Do(record)
	loggerMock.EXPECT().InfoTemplate(testReporting, completeTemplate, gomock.Any()).Do(record)

	tm := New(loggerMock, log.InformationLevel, profMock, testReporting, "Loading", WithCompleteMessage("Completed."))
	tm.Finish(nil)

	assert.Len(t, tm.TimingID(), timingIDLength)
	assert.Equal(t, []interface{}{tm.TimingID(), tm.TimingID()}, ids)
}

func TestDurationTimer_contextGivenToProfiler(t *testing.T) {
	ctrl := gomock.NewController(t)
	loggerMock := lmocks.NewMockLogger(ctrl)
	profMock := pmocks.NewMockProfiler(ctrl)
	stepMock := pmocks.NewMockStep(ctrl)

	type ctxKey struct{}

	ctx := context.WithValue(context.TODO(), ctxKey{}, "value")

	profMock.EXPECT().Step(ctx, "[Service] Loading").Return(stepMock)
	loggerMock.EXPECT().DebugTemplate(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	tm := New(loggerMock, log.DebugLevel, profMock, testReporting, "Loading", WithContext(ctx))

	assert.Equal(t, log.DebugLevel, tm.Level())
	assert.Equal(t, testReporting, tm.Reporting())
	assert.Equal(t, time.Duration(0), tm.Threshold())
}

func TestDurationTimer_nilIsSafe(t *testing.T) {
	var tm *DurationTimer

	err := errors.New("fake")

	assert.NotPanics(t, func() {
		tm.Fail(err, "")
		tm.Finish(&err)
		tm.Finish(nil)

		assert.Equal(t, log.VerboseLevel, tm.Level())
		assert.Equal(t, "", tm.Reporting())
		assert.Equal(t, time.Duration(0), tm.Threshold())
		assert.Equal(t, "", tm.TimingID())
		assert.Equal(t, time.Duration(0), tm.Elapsed())
	})
}

func Test_shortName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "github.com/acme/app.Service", want: "Service"},
		{input: "github.com/acme/app", want: "app"},
		{input: "Service", want: "Service"},
		{input: "pkg.", want: "pkg."},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shortName(tt.input))
		})
	}
}
