package log

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled logging capability.
// Every entry is attached to a reporting category (conventionally the logical
// unit of code emitting it) used for filtering.
//
//go:generate mockgen -destination=./mocks/mock_Logger.go -package=mocks github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log Logger
type Logger interface {
	// IsEnabled reports whether entries for reporting are emitted at level.
	IsEnabled(reporting string, level Level) bool

	Fatal(reporting string, err error)
	CriticalTemplate(messageTemplate string, propertyValues ...interface{})
	CriticalWithTemplate(err error, messageTemplate string, propertyValues ...interface{})

	Error(reporting string, err error)
	ErrorMessage(reporting string, message string)
	ErrorTemplate(reporting string, messageTemplate string, propertyValues ...interface{})
	ErrorWithMessage(reporting string, err error, message string)
	ErrorWithTemplate(reporting string, err error, messageTemplate string, propertyValues ...interface{})

	Warn(reporting string, message string)
	WarnTemplate(reporting string, messageTemplate string, propertyValues ...interface{})
	WarnWithMessage(reporting string, err error, message string)
	WarnWithTemplate(reporting string, err error, messageTemplate string, propertyValues ...interface{})

	Info(reporting string, message string)
	InfoTemplate(reporting string, messageTemplate string, propertyValues ...interface{})

	Debug(reporting string, message string)
	DebugTemplate(reporting string, messageTemplate string, propertyValues ...interface{})

	Verbose(reporting string, message string)
	VerboseTemplate(reporting string, messageTemplate string, propertyValues ...interface{})
}

// ConfigurableLogger is the Logger owned by the application.
type ConfigurableLogger interface {
	Logger

	// Configure sets the default minimum level, the output format, an optional
	// output file and per reporting glob level overrides.
	Configure(level string, format string, filePath string, overrides map[string]string) error

	WithField(key string, value interface{}) ConfigurableLogger
	WithFields(fields map[string]interface{}) ConfigurableLogger
	WithError(err error) ConfigurableLogger

	GetTracingLogger() TracingLogger
}

// TracingLogger is the logger given to the jaeger client.
type TracingLogger interface {
	Error(msg string)
	Infof(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
}

// ReportingKey is the field holding the reporting category.
const ReportingKey = "reporting"

// NewLogger creates a logger with the information level as default.
func NewLogger() ConfigurableLogger {
	lll := logrus.New()
	// Filtering is done by the level filter.
	lll.SetLevel(logrus.TraceLevel)
	lll.SetFormatter(&logrus.JSONFormatter{})

	c := &core{root: lll}
	c.filter.Store(newLevelFilter(InformationLevel))

	return &loggerIns{
		FieldLogger: lll,
		core:        c,
	}
}

// ReportingOf returns the package qualified type name of v.
// Pointers are dereferenced so that a method receiver and its value report the same category.
func ReportingOf(v interface{}) string {
	if v == nil {
		return ""
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
