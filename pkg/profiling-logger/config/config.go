package config

// DefaultLogLevel Default log level.
const DefaultLogLevel = "info"

// DefaultLogFormat Default Log format.
const DefaultLogFormat = "json"

// DefaultInternalPort Default internal port.
const DefaultInternalPort = 9090

// DefaultCompleteMessage Default duration timer complete message.
const DefaultCompleteMessage = "Completed."

// DefaultDebugThreshold Default debug duration threshold.
const DefaultDebugThreshold = "0s"

// DefaultMainConfigFolderPath Default configuration folder.
const DefaultMainConfigFolderPath = "conf/"

// Config Application Configuration.
type Config struct {
	Log            *LogConfig       `mapstructure:"log"            yaml:"log"`
	Tracing        *TracingConfig   `mapstructure:"tracing"        yaml:"tracing"`
	InternalServer *ServerConfig    `mapstructure:"internalServer" yaml:"internalServer"`
	Profiling      *ProfilingConfig `mapstructure:"profiling"      yaml:"profiling"`
}

// LogConfig Log configuration.
type LogConfig struct {
	Level    string `mapstructure:"level"    validate:"required" yaml:"level"`
	Format   string `mapstructure:"format"   validate:"required,oneof=json text" yaml:"format"`
	FilePath string `mapstructure:"filePath" yaml:"filePath,omitempty"`
	// Overrides are reporting glob patterns associated to a minimum level.
	// A list is used because viper splits map keys on dots.
	Overrides []*LogOverrideConfig `mapstructure:"overrides" validate:"dive" yaml:"overrides,omitempty"`
}

// LogOverrideConfig Minimum level for reporting categories matching a glob pattern.
type LogOverrideConfig struct {
	Pattern string `mapstructure:"pattern" validate:"required" yaml:"pattern"`
	Level   string `mapstructure:"level"   validate:"required" yaml:"level"`
}

// GetOverrides returns overrides as a pattern to level map.
// On duplicated patterns, the last one wins.
func (lcfg *LogConfig) GetOverrides() map[string]string {
	res := make(map[string]string, len(lcfg.Overrides))

	for _, ov := range lcfg.Overrides {
		res[ov.Pattern] = ov.Level
	}

	return res
}

// TracingConfig represents the Tracing configuration structure.
type TracingConfig struct {
	FixedTags     map[string]interface{} `mapstructure:"fixedTags"     yaml:"fixedTags,omitempty"`
	FlushInterval string                 `mapstructure:"flushInterval" yaml:"flushInterval,omitempty"`
	UDPHost       string                 `mapstructure:"udpHost"       yaml:"udpHost,omitempty"`
	QueueSize     int                    `mapstructure:"queueSize"     validate:"gte=0" yaml:"queueSize,omitempty"`
	Enabled       bool                   `mapstructure:"enabled"       yaml:"enabled"`
	LogSpan       bool                   `mapstructure:"logSpan"       yaml:"logSpan"`
}

// ServerConfig Server configuration.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listenAddr" yaml:"listenAddr,omitempty"`
	Port       int    `mapstructure:"port"       validate:"required,gte=0,lte=65535" yaml:"port"`
	Enabled    bool   `mapstructure:"enabled"    yaml:"enabled"`
}

// ProfilingConfig Duration timers configuration.
type ProfilingConfig struct {
	// DebugThreshold is the minimum duration for a debug duration completion to be logged.
	DebugThreshold  string `mapstructure:"debugThreshold"  yaml:"debugThreshold"`
	CompleteMessage string `mapstructure:"completeMessage" validate:"required" yaml:"completeMessage"`
	FailMessage     string `mapstructure:"failMessage"     yaml:"failMessage,omitempty"`
}
