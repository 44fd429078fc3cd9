package config

import (
	"os"
	"path"
	"strings"
	"sync"

	"emperror.dev/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/spf13/viper"
	"github.com/thoas/go-funk"
)

const reporting = "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config"

var validate = validator.New()

type managercontext struct {
	cfg              *Config
	configs          []*viper.Viper
	onChangeHooks    []func()
	logger           log.Logger
	mainConfigFolder string
	mu               sync.RWMutex
}

func (ctx *managercontext) AddOnChangeHook(hook func()) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	ctx.onChangeHooks = append(ctx.onChangeHooks, hook)
}

func (ctx *managercontext) Load(mainConfFolder string) error {
	if mainConfFolder == "" {
		mainConfFolder = DefaultMainConfigFolderPath
	}

	ctx.mainConfigFolder = mainConfFolder

	// List files
	files, err := os.ReadDir(mainConfFolder)
	if err != nil {
		return errors.WithStack(err)
	}

	// Generate viper instances for static configs
	ctx.configs = generateViperInstances(mainConfFolder, files)

	// Load configuration
	err = ctx.loadConfiguration()
	if err != nil {
		return err
	}

	// Loop over config files
	funk.ForEach(ctx.configs, func(vip *viper.Viper) {
		// Add hooks for on change events
		vip.OnConfigChange(func(_ fsnotify.Event) {
			ctx.logger.InfoTemplate(reporting, "Reload configuration detected for file {ConfigFile}", vip.ConfigFileUsed())

			// Reload config
			err2 := ctx.loadConfiguration()
			if err2 != nil {
				ctx.logger.Error(reporting, err2)
				// Stop here and do not call hooks => configuration is unstable
				return
			}

			ctx.mu.RLock()
			hooks := ctx.onChangeHooks
			ctx.mu.RUnlock()

			// Call all hooks
			funk.ForEach(hooks, func(hook func()) { hook() })
		})
		// Watch for configuration changes
		vip.WatchConfig()
	})

	return nil
}

func (*managercontext) loadDefaultConfigurationValues(vip *viper.Viper) {
	// Load default configuration
	vip.SetDefault("log.level", DefaultLogLevel)
	vip.SetDefault("log.format", DefaultLogFormat)
	vip.SetDefault("internalServer.port", DefaultInternalPort)
	vip.SetDefault("internalServer.enabled", true)
	vip.SetDefault("tracing.enabled", false)
	vip.SetDefault("profiling.debugThreshold", DefaultDebugThreshold)
	vip.SetDefault("profiling.completeMessage", DefaultCompleteMessage)
}

func generateViperInstances(mainConfFolder string, files []os.DirEntry) []*viper.Viper {
	list := make([]*viper.Viper, 0)
	// Loop over static files to create viper instance for them
	funk.ForEach(files, func(file os.DirEntry) {
		filename := file.Name()
		// Create config file name
		cfgFileName := strings.TrimSuffix(filename, path.Ext(filename))
		// Test if config file name is compliant (ignore hidden files like .keep or directory)
		if !strings.HasPrefix(filename, ".") && cfgFileName != "" && !file.IsDir() {
			// Create new viper instance
			vip := viper.New()
			// Set config name
			vip.SetConfigName(cfgFileName)
			// Add configuration path
			vip.AddConfigPath(mainConfFolder)
			// Append it
			list = append(list, vip)
		}
	})

	return list
}

func (ctx *managercontext) loadConfiguration() error {
	// Create a viper instance for default value and merging
	globalViper := viper.New()

	// Put default values
	ctx.loadDefaultConfigurationValues(globalViper)

	// Loop over configs
	for _, vip := range ctx.configs {
		err := vip.ReadInConfig()
		if err != nil {
			return errors.WithStack(err)
		}

		err = globalViper.MergeConfigMap(vip.AllSettings())
		if err != nil {
			return errors.WithStack(err)
		}
	}

	// Prepare configuration object
	var out Config
	// Quick unmarshal.
	err := globalViper.Unmarshal(&out)
	if err != nil {
		return errors.WithStack(err)
	}

	// Load default values
	loadBusinessDefaultValues(&out)

	// Configuration validation
	err = validate.Struct(out)
	if err != nil {
		return errors.WithStack(err)
	}

	err = validateBusinessConfig(&out)
	if err != nil {
		return err
	}

	ctx.mu.Lock()
	ctx.cfg = &out
	ctx.mu.Unlock()

	return nil
}

// GetConfig allow to get configuration object.
func (ctx *managercontext) GetConfig() *Config {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	return ctx.cfg
}

func loadBusinessDefaultValues(out *Config) {
	// Log section is always filled by viper defaults, others may be missing
	if out.Log == nil {
		out.Log = &LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat}
	}

	if out.Tracing == nil {
		out.Tracing = &TracingConfig{Enabled: false}
	}

	if out.InternalServer == nil {
		out.InternalServer = &ServerConfig{Port: DefaultInternalPort, Enabled: true}
	}

	if out.Profiling == nil {
		out.Profiling = &ProfilingConfig{
			DebugThreshold:  DefaultDebugThreshold,
			CompleteMessage: DefaultCompleteMessage,
		}
	}
}
