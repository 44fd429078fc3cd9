package log

import (
	"strings"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// Level is the ordered severity of a log entry.
type Level int

const (
	// VerboseLevel is the noisiest level, used for tracing internal state.
	VerboseLevel Level = iota
	// DebugLevel is used for internal events useful when debugging.
	DebugLevel
	// InformationLevel is used for the normal progress of the application.
	InformationLevel
	// WarningLevel is used when something unexpected happened but the application continues.
	WarningLevel
	// ErrorLevel is used when an operation failed.
	ErrorLevel
	// FatalLevel is used for critical errors requiring immediate attention.
	FatalLevel
)

// ErrUnknownLevel is returned when a level cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = map[Level]string{
	VerboseLevel:     "verbose",
	DebugLevel:       "debug",
	InformationLevel: "information",
	WarningLevel:     "warning",
	ErrorLevel:       "error",
	FatalLevel:       "fatal",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}

	return "unknown"
}

// ParseLevel will parse a level name (case insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "trace":
		return VerboseLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info", "information":
		return InformationLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal", "critical":
		return FatalLevel, nil
	}

	return InformationLevel, errors.WithMessagef(ErrUnknownLevel, "%q", s)
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case VerboseLevel:
		return logrus.TraceLevel
	case DebugLevel:
		return logrus.DebugLevel
	case InformationLevel:
		return logrus.InfoLevel
	case WarningLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}
