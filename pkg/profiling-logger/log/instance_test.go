//go:build unit

package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*loggerIns, *test.Hook) {
	t.Helper()

	ll, ok := NewLogger().(*loggerIns)
	require.True(t, ok)

	ll.core.root.SetOutput(io.Discard)

	return ll, test.NewLocal(ll.core.root)
}

func Test_loggerIns_Configure(t *testing.T) {
	type args struct {
		level     string
		format    string
		filePath  string
		overrides map[string]string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "Cannot parse log level",
			args: args{
				level: "fake",
			},
			wantErr: true,
		},
		{
			name: "Parse log level ok",
			args: args{
				level: "info",
			},
			wantErr: false,
		},
		{
			name: "Format json ok",
			args: args{
				level:  "info",
				format: "json",
			},
			wantErr: false,
		},
		{
			name: "Cannot parse override level",
			args: args{
				level:     "info",
				overrides: map[string]string{"github.com/*": "fake"},
			},
			wantErr: true,
		},
		{
			name: "Cannot compile override pattern",
			args: args{
				level:     "info",
				overrides: map[string]string{"github.com/[": "debug"},
			},
			wantErr: true,
		},
		{
			name: "Overrides ok",
			args: args{
				level:     "warning",
				format:    "text",
				overrides: map[string]string{"github.com/acme/*": "debug"},
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ll, _ := newTestLogger(t)
			if err := ll.Configure(tt.args.level, tt.args.format, tt.args.filePath, tt.args.overrides); (err != nil) != tt.wantErr {
				t.Errorf("loggerIns.Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_loggerIns_Configure_file(t *testing.T) {
	ll, _ := newTestLogger(t)

	fp := filepath.Join(t.TempDir(), "dir", "profiling-logger.log")

	require.NoError(t, ll.Configure("info", "json", fp, nil))

	ll.Info("reporting", "written to file")

	content, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

func Test_loggerIns_Configure_keepsPreviousStateOnError(t *testing.T) {
	ll, _ := newTestLogger(t)

	require.NoError(t, ll.Configure("debug", "json", "", nil))
	require.Error(t, ll.Configure("fake", "json", "", nil))

	assert.True(t, ll.IsEnabled("any", DebugLevel))
}

func Test_loggerIns_IsEnabled(t *testing.T) {
	overrides := map[string]string{
		"github.com/acme/*":          "debug",
		"github.com/acme/noisy/*":    "error",
		"github.com/acme/noisy/ok.*": "verbose",
	}
	tests := []struct {
		name      string
		reporting string
		level     Level
		want      bool
	}{
		{name: "default level enabled", reporting: "other", level: WarningLevel, want: true},
		{name: "default level disabled", reporting: "other", level: InformationLevel, want: false},
		{name: "empty reporting uses default", reporting: "", level: DebugLevel, want: false},
		{name: "override lowers level", reporting: "github.com/acme/app.Service", level: DebugLevel, want: true},
		{name: "override verbose still disabled", reporting: "github.com/acme/app.Service", level: VerboseLevel, want: false},
		{name: "longest pattern wins", reporting: "github.com/acme/noisy/pkg.Type", level: WarningLevel, want: false},
		{name: "longest pattern wins again", reporting: "github.com/acme/noisy/ok.Type", level: VerboseLevel, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ll, _ := newTestLogger(t)
			require.NoError(t, ll.Configure("warning", "json", "", overrides))

			assert.Equal(t, tt.want, ll.IsEnabled(tt.reporting, tt.level))
		})
	}
}

func Test_loggerIns_emit(t *testing.T) {
	fakeErr := errors.New("fake")
	tests := []struct {
		name       string
		call       func(l Logger)
		wantLevel  logrus.Level
		wantMsg    string
		wantFields logrus.Fields
		wantErr    error
	}{
		{
			name:       "Fatal does not exit",
			call:       func(l Logger) { l.Fatal("rep", fakeErr) },
			wantLevel:  logrus.FatalLevel,
			wantMsg:    "fake",
			wantFields: logrus.Fields{ReportingKey: "rep"},
			wantErr:    fakeErr,
		},
		{
			name:       "CriticalTemplate",
			call:       func(l Logger) { l.CriticalTemplate("Down {Count}", 3) },
			wantLevel:  logrus.FatalLevel,
			wantMsg:    "Down 3",
			wantFields: logrus.Fields{"Count": 3},
		},
		{
			name:       "CriticalWithTemplate",
			call:       func(l Logger) { l.CriticalWithTemplate(fakeErr, "Down {Count}", 3) },
			wantLevel:  logrus.FatalLevel,
			wantMsg:    "Down 3",
			wantFields: logrus.Fields{"Count": 3},
			wantErr:    fakeErr,
		},
		{
			name:       "Error",
			call:       func(l Logger) { l.Error("rep", fakeErr) },
			wantLevel:  logrus.ErrorLevel,
			wantMsg:    "fake",
			wantFields: logrus.Fields{ReportingKey: "rep"},
			wantErr:    fakeErr,
		},
		{
			name:       "ErrorMessage",
			call:       func(l Logger) { l.ErrorMessage("rep", "boom") },
			wantLevel:  logrus.ErrorLevel,
			wantMsg:    "boom",
			wantFields: logrus.Fields{ReportingKey: "rep"},
		},
		{
			name:       "ErrorTemplate",
			call:       func(l Logger) { l.ErrorTemplate("rep", "boom {Key}", "k") },
			wantLevel:  logrus.ErrorLevel,
			wantMsg:    "boom k",
			wantFields: logrus.Fields{ReportingKey: "rep", "Key": "k"},
		},
		{
			name:       "ErrorWithMessage",
			call:       func(l Logger) { l.ErrorWithMessage("rep", fakeErr, "boom") },
			wantLevel:  logrus.ErrorLevel,
			wantMsg:    "boom",
			wantFields: logrus.Fields{ReportingKey: "rep"},
			wantErr:    fakeErr,
		},
		{
			name:       "ErrorWithTemplate",
			call:       func(l Logger) { l.ErrorWithTemplate("rep", fakeErr, "boom {Key}", "k") },
			wantLevel:  logrus.ErrorLevel,
			wantMsg:    "boom k",
			wantFields: logrus.Fields{ReportingKey: "rep", "Key": "k"},
			wantErr:    fakeErr,
		},
		{
			name:       "Warn",
			call:       func(l Logger) { l.Warn("rep", "careful") },
			wantLevel:  logrus.WarnLevel,
			wantMsg:    "careful",
			wantFields: logrus.Fields{ReportingKey: "rep"},
		},
		{
			name:       "WarnTemplate",
			call:       func(l Logger) { l.WarnTemplate("rep", "careful {Key}", "k") },
			wantLevel:  logrus.WarnLevel,
			wantMsg:    "careful k",
			wantFields: logrus.Fields{ReportingKey: "rep", "Key": "k"},
		},
		{
			name:       "WarnWithMessage",
			call:       func(l Logger) { l.WarnWithMessage("rep", fakeErr, "careful") },
			wantLevel:  logrus.WarnLevel,
			wantMsg:    "careful",
			wantFields: logrus.Fields{ReportingKey: "rep"},
			wantErr:    fakeErr,
		},
		{
			name:       "WarnWithTemplate",
			call:       func(l Logger) { l.WarnWithTemplate("rep", fakeErr, "careful {Key}", "k") },
			wantLevel:  logrus.WarnLevel,
			wantMsg:    "careful k",
			wantFields: logrus.Fields{ReportingKey: "rep", "Key": "k"},
			wantErr:    fakeErr,
		},
		{
			name:       "Info",
			call:       func(l Logger) { l.Info("rep", "hello") },
			wantLevel:  logrus.InfoLevel,
			wantMsg:    "hello",
			wantFields: logrus.Fields{ReportingKey: "rep"},
		},
		{
			name:       "InfoTemplate",
			call:       func(l Logger) { l.InfoTemplate("rep", "hello {Name}", "bob") },
			wantLevel:  logrus.InfoLevel,
			wantMsg:    "hello bob",
			wantFields: logrus.Fields{ReportingKey: "rep", "Name": "bob"},
		},
		{
			name:       "Debug",
			call:       func(l Logger) { l.Debug("rep", "details") },
			wantLevel:  logrus.DebugLevel,
			wantMsg:    "details",
			wantFields: logrus.Fields{ReportingKey: "rep"},
		},
		{
			name:       "DebugTemplate",
			call:       func(l Logger) { l.DebugTemplate("rep", "details {N}", 1) },
			wantLevel:  logrus.DebugLevel,
			wantMsg:    "details 1",
			wantFields: logrus.Fields{ReportingKey: "rep", "N": 1},
		},
		{
			name:       "Verbose",
			call:       func(l Logger) { l.Verbose("rep", "noise") },
			wantLevel:  logrus.TraceLevel,
			wantMsg:    "noise",
			wantFields: logrus.Fields{ReportingKey: "rep"},
		},
		{
			name:       "VerboseTemplate",
			call:       func(l Logger) { l.VerboseTemplate("rep", "noise {N}", 2) },
			wantLevel:  logrus.TraceLevel,
			wantMsg:    "noise 2",
			wantFields: logrus.Fields{ReportingKey: "rep", "N": 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ll, hook := newTestLogger(t)
			require.NoError(t, ll.Configure("verbose", "json", "", nil))

			tt.call(ll)

			require.Len(t, hook.AllEntries(), 1)

			entry := hook.LastEntry()
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)

			for k, v := range tt.wantFields {
				assert.Equal(t, v, entry.Data[k], "field %s", k)
			}

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, entry.Data[logrus.ErrorKey])
			} else {
				assert.NotContains(t, entry.Data, logrus.ErrorKey)
			}
		})
	}
}

func Test_loggerIns_emit_disabled(t *testing.T) {
	ll, hook := newTestLogger(t)
	require.NoError(t, ll.Configure("error", "json", "", map[string]string{"loud": "verbose"}))

	ll.Info("quiet", "dropped")
	ll.DebugTemplate("quiet", "dropped {N}", 1)
	ll.Warn("quiet", "dropped")
	ll.Verbose("loud", "kept")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "kept", hook.LastEntry().Message)
}

func Test_loggerIns_WithError_stack(t *testing.T) {
	ll, hook := newTestLogger(t)

	ll.WithError(errors.WithStack(errors.NewPlain("fake"))).Info("rep", "with stack")

	require.Len(t, hook.AllEntries(), 1)
	assert.NotEmpty(t, hook.LastEntry().Data["stack"])
}

func Test_loggerIns_WithFields_sharesConfiguration(t *testing.T) {
	ll, hook := newTestLogger(t)
	child := ll.WithFields(map[string]interface{}{"component": "child"})

	// Reconfiguring the parent is seen by the child
	require.NoError(t, ll.Configure("debug", "json", "", nil))
	child.Debug("rep", "from child")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "child", hook.LastEntry().Data["component"])
}

func TestContextLogger(t *testing.T) {
	ll, _ := newTestLogger(t)

	assert.Nil(t, GetLoggerFromContext(context.TODO()))

	ctx := SetLoggerInContext(context.TODO(), ll)
	assert.Equal(t, ll, GetLoggerFromContext(ctx))
}

type reportingFixture struct{}

func TestReportingOf(t *testing.T) {
	want := "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log.reportingFixture"

	assert.Equal(t, want, ReportingOf(reportingFixture{}))
	assert.Equal(t, want, ReportingOf(&reportingFixture{}))
	assert.Equal(t, "int", ReportingOf(1))
	assert.Equal(t, "", ReportingOf(nil))
}
