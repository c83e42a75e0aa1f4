// Package config provides the configuration management for the fftmul
// application. It defines the configuration structure, parses command-line
// arguments, applies environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/fftmul/internal/codec"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/logging"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/spectral"
)

// EnvPrefix is the prefix for all environment variables read by fftmul.
const EnvPrefix = "FFTMUL_"

// Default configuration values.
const (
	// DefaultTimeout is the default multiplication timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultAlgo is the default algorithm selection.
	DefaultAlgo = multiply.DefaultMultiplier
	// DefaultStrategy is the transform strategy calibrated by default.
	DefaultStrategy = spectral.StrategyIterative
	// DefaultLogLevel is the default zerolog level name.
	DefaultLogLevel = "info"
	// AllAlgorithms selects every registered multiplier for comparison.
	AllAlgorithms = "all"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// A and B are the operands, as decimal digit strings.
	A, B string
	// Algo is a registered multiplier name or "all".
	Algo string
	// Strategy is the transform strategy used by calibration.
	Strategy string
	// Timeout sets the maximum duration of a run.
	Timeout time.Duration
	// Threshold is the transform length from which butterflies run in
	// parallel. 0 resolves it from the calibration profile or the hardware;
	// -1 disables parallelism.
	Threshold int
	// MaxDigits caps the combined operand length. 0 selects
	// multiply.MaxSafeDigits.
	MaxDigits int
	// AllowUnsafe lifts the combined operand length cap.
	AllowUnsafe bool
	// StrictPrecision fails a multiplication whose rounding deviation
	// exceeds multiply.PrecisionWarnThreshold.
	StrictPrecision bool

	// Batch reads a count followed by operand pairs from Input.
	Batch bool
	// Input is the batch input file. Empty or "-" reads standard input.
	Input string
	// Interactive starts the REPL.
	Interactive bool
	// ServerMode starts the HTTP server on Port.
	ServerMode bool
	// Port is the server listen port.
	Port string
	// TUI starts the dashboard.
	TUI bool
	// Calibrate benchmarks the parallel threshold and saves the profile.
	Calibrate bool
	// CalibrationProfile overrides the profile path
	// (default ~/.fftmul_calibration.json).
	CalibrationProfile string

	// OutputFile, if set, receives the product.
	OutputFile string
	// Quiet prints only the product.
	Quiet bool
	// Verbose prints the full product even when it is long.
	Verbose bool
	// Details prints timing and operand metadata.
	Details bool
	// NoColor disables colored output.
	NoColor bool
	// LogLevel is a zerolog level name.
	LogLevel string
	// Completion generates a shell completion script for the named shell.
	Completion string
}

// ToMultiplyOptions converts the configuration into multiply.Options.
func (c AppConfig) ToMultiplyOptions() multiply.Options {
	return multiply.Options{
		ParallelThreshold: c.Threshold,
		MaxDigits:         c.MaxDigits,
		AllowUnsafe:       c.AllowUnsafe,
		StrictPrecision:   c.StrictPrecision,
	}
}

// NeedsOperands reports whether the selected mode multiplies the A and B
// operands given on the command line.
func (c AppConfig) NeedsOperands() bool {
	return !c.Batch && !c.Interactive && !c.ServerMode && !c.Calibrate && c.Completion == ""
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableAlgos: The registered multiplier names.
//
// Returns:
//   - error: A ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Threshold < -1 {
		return apperrors.NewConfigError("parallelism threshold must be -1 (disabled), 0 (auto) or positive: %d", c.Threshold)
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("max digits cannot be negative: %d", c.MaxDigits)
	}
	if c.Algo != AllAlgorithms && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: '%s' or [%s]",
			c.Algo, AllAlgorithms, strings.Join(availableAlgos, ", "))
	}
	if !slices.Contains(spectral.Strategies(), c.Strategy) {
		return apperrors.NewConfigError("unrecognized strategy: '%s'. Valid strategies are: [%s]",
			c.Strategy, strings.Join(spectral.Strategies(), ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.NeedsOperands() {
		if c.A == "" || c.B == "" {
			return apperrors.NewConfigError("two operands are required (use -a and -b, or pass them as arguments)")
		}
		if err := codec.Validate(c.A); err != nil {
			return apperrors.NewConfigError("operand a: %v", err)
		}
		if err := codec.Validate(c.B); err != nil {
			return apperrors.NewConfigError("operand b: %v", err)
		}
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// FFTMUL_ environment overrides for flags that were not set, and validates
// the result. Two positional arguments are taken as the operands when -a and
// -b are absent.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage are printed.
//   - availableAlgos: The registered multiplier names.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: An error if parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Multiplier to use: '%s' to compare, or one of [%s].", AllAlgorithms, strings.Join(availableAlgos, ", "))
	strategyHelp := fmt.Sprintf("Transform strategy to calibrate: one of [%s].", strings.Join(spectral.Strategies(), ", "))

	config := AppConfig{}
	fs.StringVar(&config.A, "a", "", "First operand (decimal digits).")
	fs.StringVar(&config.B, "b", "", "Second operand (decimal digits).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.StringVar(&config.Strategy, "strategy", DefaultStrategy, strategyHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.IntVar(&config.Threshold, "threshold", 0, "Transform length from which butterflies run in parallel (0 auto, -1 off).")
	fs.IntVar(&config.MaxDigits, "max-digits", 0, fmt.Sprintf("Maximum combined operand digits (default %d).", multiply.MaxSafeDigits))
	fs.BoolVar(&config.AllowUnsafe, "allow-unsafe", false, "Multiply operands beyond the float64 safe length.")
	fs.BoolVar(&config.StrictPrecision, "strict", false, "Fail when a coefficient cannot be rounded reliably.")
	fs.BoolVar(&config.Batch, "batch", false, "Read a count then operand pairs, print one product per line.")
	fs.StringVar(&config.Input, "input", "", "Batch input file (default: standard input).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.TUI, "tui", false, "Run the comparison in the terminal dashboard.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Benchmark the parallel threshold and save the profile.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path to calibration profile file (default: ~/.fftmul_calibration.json).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the product.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the product.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full product even when it is long.")
	fs.BoolVar(&config.Details, "details", false, "Display timing and operand details.")
	fs.BoolVar(&config.Details, "d", false, "Alias for -details.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if config.A == "" && config.B == "" && fs.NArg() == 2 {
		config.A, config.B = fs.Arg(0), fs.Arg(1)
	}

	config.Algo = strings.ToLower(config.Algo)
	config.Strategy = strings.ToLower(config.Strategy)
	config.LogLevel = strings.ToLower(config.LogLevel)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
