// Package runner runs external commands and reports how long they took.
package runner

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"emperror.dev/errors"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/proflog"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/timer"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/tracing"
)

// ErrEmptyCommand is returned when no command name is given.
var ErrEmptyCommand = errors.New("empty command")

var reporting = log.ReportingOf(Runner{})

// Command is an external command to run.
type Command struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Name   string
	Args   []string
	// Debug runs the command in a debug duration timer instead of a trace one.
	Debug bool
}

// Runner runs commands inside duration timers and traces.
type Runner struct {
	pl         *proflog.ProfilingLogger
	tracingSvc tracing.Service
	cfgManager config.Manager
}

func New(pl *proflog.ProfilingLogger, tracingSvc tracing.Service, cfgManager config.Manager) *Runner {
	return &Runner{
		pl:         pl,
		tracingSvc: tracingSvc,
		cfgManager: cfgManager,
	}
}

// Run runs the command until it ends or ctx is done.
// The command error is logged with the configured fail message and returned.
func (r *Runner) Run(ctx context.Context, cmd *Command) (err error) {
	if cmd == nil || cmd.Name == "" {
		return errors.WithStack(ErrEmptyCommand)
	}

	cfg := r.cfgManager.GetConfig()

	// Start trace
	trace, ctx := r.tracingSvc.StartTrace(ctx, "command.run")
	defer trace.Finish()

	trace.SetTag("command.name", cmd.Name)
	trace.SetTag("command.debug", cmd.Debug)

	opts := []timer.Option{timer.WithContext(ctx)}

	if pcfg := cfg.Profiling; pcfg != nil {
		if pcfg.CompleteMessage != "" {
			opts = append(opts, timer.WithCompleteMessage(pcfg.CompleteMessage))
		}

		if pcfg.FailMessage != "" {
			opts = append(opts, timer.WithFailMessage(pcfg.FailMessage))
		}
	}

	startMessage := "Running " + strings.Join(append([]string{cmd.Name}, cmd.Args...), " ")

	var t *timer.DurationTimer

	if cmd.Debug {
		threshold, err2 := cfg.Profiling.GetDebugThreshold()
		if err2 != nil {
			return err2
		}

		// Timer is nil when debug is disabled, Finish is still safe
		t, _ = r.pl.DebugDuration(reporting, startMessage, append(opts, timer.WithThreshold(threshold))...)
	} else {
		t = r.pl.TraceDuration(reporting, startMessage, opts...)
	}

	defer t.Finish(&err)

	return r.exec(ctx, trace, cmd)
}

// exec runs the process in a child trace of the run one.
func (*Runner) exec(ctx context.Context, parent tracing.Trace, cmd *Command) error {
	trace, ctx := parent.GetChildTrace(ctx, "command.exec")
	defer trace.Finish()

	trace.SetTag("command.args", strings.Join(cmd.Args, " "))

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	err := c.Run()
	if err != nil {
		err = errors.Wrapf(err, "command %s", cmd.Name)
		trace.SetError(err)
		parent.SetError(err)

		return err
	}

	if c.ProcessState != nil {
		trace.SetTag("command.exit_code", c.ProcessState.ExitCode())
	}

	return nil
}
