// Package app wires configuration, algorithms, orchestration and
// presentation into the recbench command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/recbench/internal/cli"
	"github.com/agbru/recbench/internal/config"
	"github.com/agbru/recbench/internal/dataset"
	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/fibonacci"
	"github.com/agbru/recbench/internal/logging"
	"github.com/agbru/recbench/internal/metrics"
	"github.com/agbru/recbench/internal/orchestration"
	"github.com/agbru/recbench/internal/quicksort"
	"github.com/agbru/recbench/internal/tui"
	"github.com/agbru/recbench/internal/ui"
)

// Application represents the recbench application instance.
type Application struct {
	Config    config.AppConfig
	Fibonacci fibonacci.CalculatorFactory
	Sorters   *quicksort.Factory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFibonacciFactory sets a custom Fibonacci factory.
func WithFibonacciFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Fibonacci = f }
}

// WithSortFactory sets a custom quicksort factory.
func WithSortFactory(f *quicksort.Factory) AppOption {
	return func(a *Application) { a.Sorters = f }
}

// WithLogger replaces the console logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Fibonacci == nil {
		app.Fibonacci = fibonacci.NewDefaultFactory()
	}
	if app.Sorters == nil {
		app.Sorters = quicksort.NewDefaultFactory()
	}

	programName := "recbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, orchestration.Catalog(app.Fibonacci, app.Sorters))
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	return app, nil
}

// newLogger picks the log backend for cfg. Quiet runs are meant for
// scripts, so they log plain lines without timestamps or colors.
func newLogger(cfg config.AppConfig, errWriter io.Writer) logging.Logger {
	if cfg.Quiet {
		return logging.NewStdLoggerAdapter(log.New(errWriter, "recbench: ", 0), cfg.Verbose)
	}
	return logging.NewLogger(errWriter, "recbench", cfg.NoColor)
}

// logLevel returns the zerolog level selected by -v.
func logLevel(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(logLevel(a.Config.Verbose))
	ui.InitTheme(a.Config.NoColor)

	if a.Config.MaxStack > 0 {
		previous := debug.SetMaxStack(a.Config.MaxStack)
		defer debug.SetMaxStack(previous)
		a.Logger.Debug("max stack raised", logging.Int("bytes", a.Config.MaxStack))
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var input []int
	if a.Config.Mode != config.ModeFib {
		var err error
		input, err = dataset.Load(a.Config.File)
		if err != nil {
			a.Logger.Error("load failed", err, logging.String("file", a.Config.File))
			return cli.HandleError(err, a.ErrWriter)
		}
		a.Logger.Debug("dataset loaded", logging.String("file", a.Config.File), logging.Int("length", len(input)))
	}

	benches, err := orchestration.BuildBenchmarks(a.Config, a.Fibonacci, a.Sorters, input)
	if err != nil {
		return cli.HandleError(apperrors.NewConfigError("%v", err), a.ErrWriter)
	}

	recorder := metrics.NewRecorder()
	opts := orchestration.Options{
		Parallelism: a.Config.Parallel,
		Recorder:    recorder,
		Logger:      a.Logger,
		GCMode:      metrics.GCMode(a.Config.GC),
	}

	var exitCode int
	switch {
	case a.Config.TUI:
		exitCode = tui.Run(ctx, benches, opts, Version)
	case a.Config.Compares():
		exitCode = a.runComparison(ctx, benches, opts, out)
	default:
		exitCode = a.runSingle(ctx, benches[0], input, opts, out)
	}

	if a.Config.MetricsOut != "" {
		if err := recorder.WriteTextfile(a.Config.MetricsOut); err != nil {
			a.Logger.Error("metrics export failed", err, logging.String("path", a.Config.MetricsOut))
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		} else {
			a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsOut))
		}
	}
	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
