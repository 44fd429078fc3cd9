//go:build unit

package log

import (
	"testing"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "verbose", input: "verbose", want: VerboseLevel},
		{name: "trace alias", input: "trace", want: VerboseLevel},
		{name: "debug upper case", input: "DEBUG", want: DebugLevel},
		{name: "info", input: "info", want: InformationLevel},
		{name: "information with spaces", input: " Information ", want: InformationLevel},
		{name: "warn", input: "warn", want: WarningLevel},
		{name: "warning", input: "warning", want: WarningLevel},
		{name: "error", input: "error", want: ErrorLevel},
		{name: "critical", input: "critical", want: FatalLevel},
		{name: "fatal", input: "fatal", want: FatalLevel},
		{name: "unknown", input: "fake", want: InformationLevel, wantErr: true},
		{name: "empty", input: "", want: InformationLevel, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownLevel))
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_ordering(t *testing.T) {
	assert.Less(t, int(VerboseLevel), int(DebugLevel))
	assert.Less(t, int(DebugLevel), int(InformationLevel))
	assert.Less(t, int(InformationLevel), int(WarningLevel))
	assert.Less(t, int(WarningLevel), int(ErrorLevel))
	assert.Less(t, int(ErrorLevel), int(FatalLevel))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "information", InformationLevel.String())
	assert.Equal(t, "verbose", VerboseLevel.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestLevel_logrusLevel(t *testing.T) {
	assert.Equal(t, logrus.TraceLevel, VerboseLevel.logrusLevel())
	assert.Equal(t, logrus.DebugLevel, DebugLevel.logrusLevel())
	assert.Equal(t, logrus.InfoLevel, InformationLevel.logrusLevel())
	assert.Equal(t, logrus.WarnLevel, WarningLevel.logrusLevel())
	assert.Equal(t, logrus.ErrorLevel, ErrorLevel.logrusLevel())
	assert.Equal(t, logrus.FatalLevel, FatalLevel.logrusLevel())
}
