package proflog

import "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"

// Logger methods are forwarded unchanged to the wrapped logger.

func (pl *ProfilingLogger) IsEnabled(reporting string, level log.Level) bool {
	return pl.logger.IsEnabled(reporting, level)
}

func (pl *ProfilingLogger) Fatal(reporting string, err error) {
	pl.logger.Fatal(reporting, err)
}

func (pl *ProfilingLogger) CriticalTemplate(messageTemplate string, propertyValues ...interface{}) {
	pl.logger.CriticalTemplate(messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) CriticalWithTemplate(err error, messageTemplate string, propertyValues ...interface{}) {
	pl.logger.CriticalWithTemplate(err, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) Error(reporting string, err error) {
	pl.logger.Error(reporting, err)
}

func (pl *ProfilingLogger) ErrorMessage(reporting string, message string) {
	pl.logger.ErrorMessage(reporting, message)
}

func (pl *ProfilingLogger) ErrorTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	pl.logger.ErrorTemplate(reporting, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) ErrorWithMessage(reporting string, err error, message string) {
	pl.logger.ErrorWithMessage(reporting, err, message)
}

func (pl *ProfilingLogger) ErrorWithTemplate(
	reporting string,
	err error,
	messageTemplate string,
	propertyValues ...interface{},
) {
	pl.logger.ErrorWithTemplate(reporting, err, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) Warn(reporting string, message string) {
	pl.logger.Warn(reporting, message)
}

func (pl *ProfilingLogger) WarnTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	pl.logger.WarnTemplate(reporting, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) WarnWithMessage(reporting string, err error, message string) {
	pl.logger.WarnWithMessage(reporting, err, message)
}

func (pl *ProfilingLogger) WarnWithTemplate(
	reporting string,
	err error,
	messageTemplate string,
	propertyValues ...interface{},
) {
	pl.logger.WarnWithTemplate(reporting, err, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) Info(reporting string, message string) {
	pl.logger.Info(reporting, message)
}

func (pl *ProfilingLogger) InfoTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	pl.logger.InfoTemplate(reporting, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) Debug(reporting string, message string) {
	pl.logger.Debug(reporting, message)
}

func (pl *ProfilingLogger) DebugTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	pl.logger.DebugTemplate(reporting, messageTemplate, propertyValues...)
}

func (pl *ProfilingLogger) Verbose(reporting string, message string) {
	pl.logger.Verbose(reporting, message)
}

func (pl *ProfilingLogger) VerboseTemplate(reporting string, messageTemplate string, propertyValues ...interface{}) {
	pl.logger.VerboseTemplate(reporting, messageTemplate, propertyValues...)
}

// Compile time check.
var _ log.Logger = (*ProfilingLogger)(nil)
