package config

import (
	"time"

	"emperror.dev/errors"
	"github.com/gobwas/glob"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
)

func validateBusinessConfig(out *Config) error {
	// Validate log levels
	if _, err := log.ParseLevel(out.Log.Level); err != nil {
		return errors.WithMessage(err, "log level")
	}

	for i, ov := range out.Log.Overrides {
		if _, err := log.ParseLevel(ov.Level); err != nil {
			return errors.WithMessagef(err, "log override %d", i)
		}

		if _, err := glob.Compile(ov.Pattern); err != nil {
			return errors.Wrapf(err, "log override %d pattern %s is invalid", i, ov.Pattern)
		}
	}

	// Validate tracing flush interval
	if out.Tracing.FlushInterval != "" {
		if _, err := time.ParseDuration(out.Tracing.FlushInterval); err != nil {
			return errors.Wrap(err, "tracing flush interval")
		}
	}

	// Validate debug threshold
	dur, err := out.Profiling.GetDebugThreshold()
	if err != nil {
		return err
	}

	if dur < 0 {
		return errors.New("profiling debug threshold must be positive")
	}

	return nil
}

// GetDebugThreshold parses the debug threshold, an empty value is a zero threshold.
func (pcfg *ProfilingConfig) GetDebugThreshold() (time.Duration, error) {
	if pcfg == nil || pcfg.DebugThreshold == "" {
		return 0, nil
	}

	dur, err := time.ParseDuration(pcfg.DebugThreshold)
	if err != nil {
		return 0, errors.Wrap(err, "profiling debug threshold")
	}

	return dur, nil
}
