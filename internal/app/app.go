package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/tryfib/internal/cli"
	"github.com/agbru/tryfib/internal/config"
	apperrors "github.com/agbru/tryfib/internal/errors"
	"github.com/agbru/tryfib/internal/fibonacci"
	"github.com/agbru/tryfib/internal/logging"
	"github.com/agbru/tryfib/internal/metrics"
	"github.com/agbru/tryfib/internal/orchestration"
	"github.com/agbru/tryfib/internal/ui"
)

// Application represents the tryfib application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the logger built from the configuration.
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
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	programName := "tryfib"
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

	if app.Logger == nil {
		level := zerolog.WarnLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		if cfg.LogFormat == config.LogFormatText {
			app.Logger = logging.NewTextLogger(errWriter, level)
		} else {
			app.Logger = logging.NewLevelLogger(errWriter, "tryfib", level)
		}
	}
	app.Metrics = metrics.NewRecorder()
	return app, nil
}

// Run resolves the configured input and prints the result to out. It returns
// the process exit code.
//
// A resolution failure prints nothing and returns ExitSuccess unless strict
// mode is enabled.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(false)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	code := a.run(ctx, out)

	if a.Config.Metrics {
		if err := a.Metrics.WriteText(a.ErrWriter); err != nil {
			a.Logger.Error("writing metrics failed", err)
		}
	}
	return code
}

func (a *Application) run(ctx context.Context, out io.Writer) int {
	value := a.Config.Value()
	log := a.Logger

	n, err := fibonacci.ResolveIndex(value)
	if err == nil {
		err = fibonacci.CheckIndex(n)
	}
	a.Metrics.ObserveResolution(err)
	if err != nil {
		log.Debug("input not resolved", logging.String("input", value.String()), logging.Err(err))
		if !a.Config.Strict {
			return apperrors.ExitSuccess
		}
		resErr := apperrors.ResolutionError{Input: value.String(), Cause: err}
		cli.DisplayError(a.ErrWriter, resErr)
		return apperrors.ExitCodeFor(resErr)
	}
	log.Debug("input resolved", logging.String("input", value.String()), logging.Int("index", n))

	calculators := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	results := orchestration.ExecuteCalculations(ctx, calculators, n, a.Metrics)
	for _, res := range results {
		if res.Err != nil {
			msg := "calculation failed"
			if apperrors.IsContextError(res.Err) {
				msg = "calculation interrupted"
			}
			log.Error(msg, res.Err, logging.String("algorithm", res.Name), logging.Int("index", n))
			continue
		}
		log.Debug("calculation finished",
			logging.String("algorithm", res.Name),
			logging.Int("current", res.Pair.Current),
			logging.Int("previous", res.Pair.Previous),
			logging.Duration("elapsed", res.Duration))
	}

	best, err := orchestration.AnalyzeResults(results, n)
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: a.Config.Algo, Limit: a.Config.Timeout}
	}
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}

	cli.DisplayResult(out, best.Pair.Current)
	if a.Config.Details {
		cli.DisplayDetails(out, cli.Details{Input: value, Index: n, Results: results})
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps an error returned by New to a process exit status.
func ExitCode(err error) int {
	return apperrors.ExitCodeFor(err)
}
