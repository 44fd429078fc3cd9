package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emperror.dev/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/profiler"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/proflog"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/runner"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/server"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/tracing"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/version"
)

// Main package

const (
	reporting       = "main"
	shutdownTimeout = 5 * time.Second
)

func configureLogger(logger log.ConfigurableLogger, cfg *config.Config) error {
	return logger.Configure(cfg.Log.Level, cfg.Log.Format, cfg.Log.FilePath, cfg.Log.GetOverrides())
}

func loadConfiguration(logger log.ConfigurableLogger, mainConfDir string) (config.Manager, error) {
	// Create configuration manager
	cfgManager := config.NewManager(logger)

	// Load configuration
	err := cfgManager.Load(mainConfDir)
	if err != nil {
		return nil, err
	}

	// Configure logger
	err = configureLogger(logger, cfgManager.GetConfig())
	if err != nil {
		return nil, err
	}

	// Watch change for logger (special case)
	cfgManager.AddOnChangeHook(func() {
		err2 := configureLogger(logger, cfgManager.GetConfig())
		if err2 != nil {
			logger.Error(reporting, err2)
		}
	})

	logger.Debug(reporting, "Configuration successfully loaded and logger configured")

	return cfgManager, nil
}

func runCommand(mainConfDir string, debug bool, args []string) error {
	// Create new logger
	logger := log.NewLogger()

	cfgManager, err := loadConfiguration(logger, mainConfDir)
	if err != nil {
		return err
	}

	logger.Info(reporting, "Starting "+version.GetVersion().String())

	// Generate metrics instance
	metricsCl := metrics.NewClient()

	// Generate tracing service instance
	tracingSvc, err := tracing.New(cfgManager, logger.GetTracingLogger(), metricsCl)
	if err != nil {
		return err
	}

	defer func() {
		err2 := tracingSvc.Close()
		if err2 != nil {
			logger.Error(reporting, err2)
		}
	}()

	// Prepare on reload hook
	cfgManager.AddOnChangeHook(func() {
		err2 := tracingSvc.Reload()
		if err2 != nil {
			logger.Error(reporting, err2)
		}
	})

	// Create profiling logger
	pl, err := proflog.New(logger, profiler.New(tracingSvc, metricsCl), proflog.WithMetrics(metricsCl))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var intSvr *server.InternalServer

	if cfg := cfgManager.GetConfig(); cfg.InternalServer != nil && cfg.InternalServer.Enabled {
		// Create internal server
		intSvr = server.NewInternalServer(logger, cfgManager, metricsCl, tracingSvc)
		intSvr.GenerateServer()

		g.Go(intSvr.Listen)
	}

	g.Go(func() error {
		// Internal server lives as long as the command
		if intSvr != nil {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				err2 := intSvr.Shutdown(sctx)
				if err2 != nil {
					logger.Error(reporting, err2)
				}
			}()
		}

		return runner.New(pl, tracingSvc, cfgManager).Run(gctx, &runner.Command{
			Name:   args[0],
			Args:   args[1:],
			Debug:  debug,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})
	})

	return g.Wait()
}

func printConfiguration(mainConfDir string) error {
	logger := log.NewLogger()

	cfgManager, err := loadConfiguration(logger, mainConfDir)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()

	return errors.WithStack(enc.Encode(cfgManager.GetConfig()))
}

func main() {
	var (
		configFolder string
		debug        bool
	)

	rootCmd := &cobra.Command{
		Use:          "profiling-logger",
		Short:        "Run commands and log their duration",
		Long:         "Run commands inside duration timers, with logs, traces and metrics",
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command and log its duration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCommand(configFolder, debug, args)
		},
	}
	runCmd.Flags().BoolVar(&debug, "debug", false, "Use a debug duration timer (logged only when debug is enabled)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfiguration(configFolder)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of profiling-logger",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.GetVersion().String())
		},
	}

	rootCmd.AddCommand(runCmd, configCmd, versionCmd)
	rootCmd.PersistentFlags().StringVar(
		&configFolder,
		"config",
		config.DefaultMainConfigFolderPath,
		"Config folder (default is <Current Working Directory>/conf/)",
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
