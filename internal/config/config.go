// Package config parses the command line and environment into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/tryfib/internal/errors"
	"github.com/agbru/tryfib/internal/fibonacci"
)

const (
	// EnvPrefix is prepended to every environment override key.
	EnvPrefix = "TRYFIB_"

	// DefaultInput is the textual input resolved when none is given.
	DefaultInput = "11"

	// DefaultTimeout bounds a whole run.
	DefaultTimeout = time.Minute

	// LogFormatJSON and LogFormatText are the accepted -log-format values.
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Input is the textual value handed to the resolver.
	Input string
	// Index is an integer input. It is used instead of Input when HasIndex is set.
	Index int
	// HasIndex records whether -n (or TRYFIB_N) was given.
	HasIndex bool
	// Algo selects a calculator by name, or "all" to cross-check every one.
	Algo string
	// Strict turns resolution failures into a nonzero exit status.
	Strict bool
	// Verbose enables debug logging on stderr.
	Verbose bool
	// Details prints a styled summary after the result line.
	Details bool
	// Metrics dumps Prometheus metrics to stderr on exit.
	Metrics bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// LogFormat selects zerolog JSON ("json") or plain "[LEVEL] msg" lines ("text").
	LogFormat string
}

// Value returns the resolver input selected by the configuration.
func (c AppConfig) Value() fibonacci.Value {
	if c.HasIndex {
		return fibonacci.IntegerValue(c.Index)
	}
	return fibonacci.StringValue(c.Input)
}

// Validate checks the semantic constraints that flag parsing cannot.
// availableAlgos is the list of registered calculator names.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: fmt.Sprintf("must be positive, got %s", c.Timeout)}
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		return apperrors.ValidationError{Field: "log-format", Message: fmt.Sprintf("unknown format %q (available: json, text)", c.LogFormat)}
	}
	if c.Algo == "all" {
		return nil
	}
	for _, name := range availableAlgos {
		if name == c.Algo {
			return nil
		}
	}
	return apperrors.ValidationError{Field: "algo", Message: fmt.Sprintf("unknown algorithm %q (available: %v, or all)", c.Algo, availableAlgos)}
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags win over TRYFIB_* environment variables, which win over defaults.
// Usage and parse errors are written to errWriter. flag.ErrHelp is returned
// unwrapped so callers can detect --help.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\nResolves an input into a Fibonacci index and prints the result.\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	cfg := AppConfig{}
	fs.StringVar(&cfg.Input, "input", DefaultInput, "Textual input to resolve (base-10 integer).")
	fs.IntVar(&cfg.Index, "n", 0, "Integer input; takes precedence over -input.")
	fs.StringVar(&cfg.Algo, "algo", fibonacci.DefaultAlgorithm, fmt.Sprintf("Algorithm to use: %v or 'all'.", availableAlgos))
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit with a nonzero status when the input cannot be resolved.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging on stderr.")
	fs.BoolVar(&cfg.Details, "d", false, "Show details (shorthand).")
	fs.BoolVar(&cfg.Details, "details", false, "Show a summary after the result.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Write Prometheus metrics to stderr on exit.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.StringVar(&cfg.LogFormat, "log-format", LogFormatJSON, "Log format on stderr: json or text.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}
	cfg.HasIndex = isFlagSet(fs, "n")

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		err = apperrors.WrapError(err, "invalid configuration")
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}
