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

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/cli"
	"github.com/agbru/arraykit/internal/config"
	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/logging"
	"github.com/agbru/arraykit/internal/metrics"
	"github.com/agbru/arraykit/internal/orchestration"
	"github.com/agbru/arraykit/internal/tui"
	"github.com/agbru/arraykit/internal/ui"
)

// Application represents the arraykit application instance.
type Application struct {
	Config    config.AppConfig
	Factory   arrays.SorterFactory
	Logger    logging.Logger
	ErrWriter io.Writer
	In        io.Reader

	recorder *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom SorterFactory for the application.
func WithFactory(f arrays.SorterFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the interactive session.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = arrays.NewDefaultFactory()
	}

	programName := "arraykit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode: completion
// script, dashboard, interactive session, or the default demonstration.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	if a.Logger == nil {
		a.Logger = logging.NewConsoleLogger(a.ErrWriter, "arraykit", level)
	}
	a.recorder = metrics.NewRecorder()
	a.Logger.Debug("configuration resolved",
		logging.Int("length", len(a.Config.Input)),
		logging.String("algo", a.Config.Algo),
		logging.Duration("timeout", a.Config.Timeout),
	)

	switch {
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Interactive:
		return a.runREPL(out)
	default:
		return a.runDemo(ctx, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard. Each run inside the dashboard
// is bounded by the configured timeout.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sorters := orchestration.GetSortersToRun(a.Config.Algo, a.Factory)
	return tui.Run(ctx, sorters, a.Config, Version, a.execOptions())
}

// runREPL starts the line-oriented interactive session.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, a.Config.Input, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		Seed:        a.Config.Seed,
		CheckSorted: a.Config.CheckSorted,
		Recorder:    a.recorder,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

func (a *Application) execOptions() orchestration.ExecOptions {
	return orchestration.ExecOptions{
		Logger:   a.Logger,
		Recorder: a.recorder,
		Memory:   metrics.NewMemoryCollector(),
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
