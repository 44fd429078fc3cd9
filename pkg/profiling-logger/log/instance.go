package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	logrus "github.com/sirupsen/logrus"
)

// core is the state shared by a logger and the field loggers derived from it.
type core struct {
	root   *logrus.Logger
	filter filterHolder
	mu     sync.Mutex
	file   *os.File
}

type loggerIns struct {
	logrus.FieldLogger
	core *core
}

// This is dirty pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

func (ll *loggerIns) GetTracingLogger() TracingLogger {
	return &tracingLogger{
		logger: ll,
	}
}

func (ll *loggerIns) Configure(level string, format string, filePath string, overrides map[string]string) error {
	// Build the level filter first so that a bad configuration changes nothing
	f, err := buildLevelFilter(level, overrides)
	if err != nil {
		return err
	}

	ll.core.mu.Lock()
	defer ll.core.mu.Unlock()

	lll := ll.core.root

	// Set format
	if format == "json" {
		lll.SetFormatter(&logrus.JSONFormatter{})
	} else {
		lll.SetFormatter(&logrus.TextFormatter{})
	}

	if filePath != "" {
		// Create directory if necessary
		err2 := os.MkdirAll(filepath.Dir(filePath), os.ModePerm)
		if err2 != nil {
			return errors.WithStack(err2)
		}

		// Open file
		fl, err2 := os.OpenFile(filePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o666) //nolint: gosec // Log file
		if err2 != nil {
			return errors.WithStack(err2)
		}

		// Set output file
		lll.SetOutput(fl)

		// Close the previous one
		if ll.core.file != nil {
			_ = ll.core.file.Close()
		}

		ll.core.file = fl
	}

	ll.core.filter.Store(f)

	return nil
}

func (ll *loggerIns) WithField(key string, value interface{}) ConfigurableLogger {
	return &loggerIns{
		FieldLogger: ll.FieldLogger.WithField(key, value),
		core:        ll.core,
	}
}

func (ll *loggerIns) WithFields(fields map[string]interface{}) ConfigurableLogger {
	// Transform fields
	var ff logrus.Fields = fields

	return &loggerIns{
		FieldLogger: ll.FieldLogger.WithFields(ff),
		core:        ll.core,
	}
}

func (ll *loggerIns) WithError(err error) ConfigurableLogger {
	return &loggerIns{
		FieldLogger: withError(ll.FieldLogger, err),
		core:        ll.core,
	}
}

func withError(fieldL logrus.FieldLogger, err error) *logrus.Entry {
	entry := fieldL.WithError(err)

	addStackTrace := func(pError stackTracer) {
		// Get stack trace from error
		st := pError.StackTrace()
		// Stringify stack trace
		valued := fmt.Sprintf("%+v", st)
		// Remove all tabs
		valued = strings.ReplaceAll(valued, "\t", "")
		// Split on new line
		stack := strings.Split(valued, "\n")
		// Remove first empty string
		stack = stack[1:]
		// Add stack trace to field logger
		entry = entry.WithField("stack", strings.Join(stack, ","))
	}

	// Check if error is matching stack trace interface
	// nolint: errorlint // Ignore this because the aim is to catch stack trace error at first level
	if err2, ok := err.(stackTracer); ok {
		addStackTrace(err2)
	} else if err2, ok := errors.Cause(err).(stackTracer); ok { // nolint: errorlint // Same
		addStackTrace(err2)
	}

	return entry
}

func (ll *loggerIns) IsEnabled(reporting string, level Level) bool {
	return ll.core.filter.Load().isEnabled(reporting, level)
}

// write is the single emission point of the logger.
func (ll *loggerIns) write(reporting string, level Level, err error, message string, fields map[string]interface{}) {
	if !ll.IsEnabled(reporting, level) {
		return
	}

	entry := ll.FieldLogger.WithFields(fields)

	if reporting != "" {
		entry = entry.WithField(ReportingKey, reporting)
	}

	if err != nil {
		entry = withError(entry, err)
	}

	// Entry.Log never exits, even at fatal level
	entry.Log(level.logrusLevel(), message)
}

func (ll *loggerIns) writeTemplate(reporting string, level Level, err error, messageTemplate string, propertyValues []interface{}) {
	if !ll.IsEnabled(reporting, level) {
		return
	}

	msg, fields := renderTemplate(messageTemplate, propertyValues)

	ll.write(reporting, level, err, msg, fields)
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

func (ll *loggerIns) Fatal(reporting string, err error) {
	ll.write(reporting, FatalLevel, err, errorMessage(err), nil)
}

func (ll *loggerIns) CriticalTemplate(messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate("", FatalLevel, nil, messageTemplate, propertyValues)
}

func (ll *loggerIns) CriticalWithTemplate(err error, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate("", FatalLevel, err, messageTemplate, propertyValues)
}

func (ll *loggerIns) Error(reporting string, err error) {
	ll.write(reporting, ErrorLevel, err, errorMessage(err), nil)
}

func (ll *loggerIns) ErrorMessage(reporting string, message string) {
	ll.write(reporting, ErrorLevel, nil, message, nil)
}

func (ll *loggerIns) ErrorTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, ErrorLevel, nil, messageTemplate, propertyValues)
}

func (ll *loggerIns) ErrorWithMessage(reporting string, err error, message string) {
	ll.write(reporting, ErrorLevel, err, message, nil)
}

func (ll *loggerIns) ErrorWithTemplate(reporting string, err error, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, ErrorLevel, err, messageTemplate, propertyValues)
}

func (ll *loggerIns) Warn(reporting string, message string) {
	ll.write(reporting, WarningLevel, nil, message, nil)
}

func (ll *loggerIns) WarnTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, WarningLevel, nil, messageTemplate, propertyValues)
}

func (ll *loggerIns) WarnWithMessage(reporting string, err error, message string) {
	ll.write(reporting, WarningLevel, err, message, nil)
}

func (ll *loggerIns) WarnWithTemplate(reporting string, err error, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, WarningLevel, err, messageTemplate, propertyValues)
}

func (ll *loggerIns) Info(reporting string, message string) {
	ll.write(reporting, InformationLevel, nil, message, nil)
}

func (ll *loggerIns) InfoTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, InformationLevel, nil, messageTemplate, propertyValues)
}

func (ll *loggerIns) Debug(reporting string, message string) {
	ll.write(reporting, DebugLevel, nil, message, nil)
}

func (ll *loggerIns) DebugTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, DebugLevel, nil, messageTemplate, propertyValues)
}

func (ll *loggerIns) Verbose(reporting string, message string) {
	ll.write(reporting, VerboseLevel, nil, message, nil)
}

func (ll *loggerIns) VerboseTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	ll.writeTemplate(reporting, VerboseLevel, nil, messageTemplate, propertyValues)
}
