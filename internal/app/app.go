// Package app wires the configuration to the execution modes of fftmul:
// comparison runs, batch processing, the REPL, the HTTP server, the
// dashboard, calibration and shell completion.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agbru/fftmul/internal/calibration"
	"github.com/agbru/fftmul/internal/cli"
	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/logging"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/server"
	"github.com/agbru/fftmul/internal/tui"
	"github.com/agbru/fftmul/internal/ui"
)

// Application represents the fftmul application instance.
type Application struct {
	Config    config.AppConfig
	Factory   multiply.MultiplierFactory
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom MultiplierFactory for the application.
func WithFactory(f multiply.MultiplierFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader used by batch and interactive modes.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name. An auto threshold is resolved from the cached
// calibration profile, then from the hardware.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = multiply.NewDefaultFactory()
	}

	programName := "fftmul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}

	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	a.setupLogging()
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.Calibrate:
		return a.runCalibration(ctx, out)
	case a.Config.ServerMode:
		return a.runServer()
	case a.Config.Interactive:
		return a.runInteractive(out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Batch:
		return a.runBatch(ctx, out)
	default:
		return a.runCalculate(ctx, out)
	}
}

// setupLogging routes the global zerolog logger to the error writer at the
// configured level.
func (a *Application) setupLogging() {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter, NoColor: a.Config.NoColor}).
		With().Timestamp().Logger()
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runCalibration runs the full calibration mode.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return calibration.RunCalibration(ctx, out, a.Factory, calibration.CalibrationOptions{
		ProfilePath: a.Config.CalibrationProfile,
		SaveProfile: true,
		Strategy:    a.Config.Strategy,
	})
}

// runServer serves the multipliers over HTTP until a termination signal.
func (a *Application) runServer() int {
	logger := logging.NewConsoleLogger(a.ErrWriter, "server", a.Config.NoColor)
	srv := server.NewServer(a.Factory, a.Config, server.WithLogger(logger))
	if err := srv.Start(); err != nil {
		logger.Error("server stopped", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the REPL on the application input.
func (a *Application) runInteractive(out io.Writer) int {
	repl := cli.NewREPL(a.Factory.GetAll(), cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		Options:     a.Config.ToMultiplyOptions(),
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	multipliers := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	return tui.Run(ctx, multipliers, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
