// Environment variable overrides. Priority: CLI flags > FFTMUL_* > defaults.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet reports whether a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliased flags was set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an environment key (without the FFTMUL_ prefix) to the
// flag names it shadows and the function applying its value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Operands
	{"A", []string{"a"}, func(c *AppConfig, v string) { c.A = v }},
	{"B", []string{"b"}, func(c *AppConfig, v string) { c.B = v }},

	// Numeric
	{"THRESHOLD", []string{"threshold"}, intOverride(func(c *AppConfig) *int { return &c.Threshold })},
	{"MAX_DIGITS", []string{"max-digits"}, intOverride(func(c *AppConfig) *int { return &c.MaxDigits })},

	// Duration
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) { c.Algo = v }},
	{"STRATEGY", []string{"strategy"}, func(c *AppConfig, v string) { c.Strategy = v }},
	{"PORT", []string{"port"}, func(c *AppConfig, v string) { c.Port = v }},
	{"INPUT", []string{"input"}, func(c *AppConfig, v string) { c.Input = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, func(c *AppConfig, v string) { c.CalibrationProfile = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},

	// Boolean
	{"ALLOW_UNSAFE", []string{"allow-unsafe"}, boolOverride(func(c *AppConfig) *bool { return &c.AllowUnsafe })},
	{"STRICT", []string{"strict"}, boolOverride(func(c *AppConfig) *bool { return &c.StrictPrecision })},
	{"BATCH", []string{"batch"}, boolOverride(func(c *AppConfig) *bool { return &c.Batch })},
	{"SERVER", []string{"server"}, boolOverride(func(c *AppConfig) *bool { return &c.ServerMode })},
	{"TUI", []string{"tui"}, boolOverride(func(c *AppConfig) *bool { return &c.TUI })},
	{"CALIBRATE", []string{"calibrate"}, boolOverride(func(c *AppConfig) *bool { return &c.Calibrate })},
	{"VERBOSE", []string{"v"}, boolOverride(func(c *AppConfig) *bool { return &c.Verbose })},
	{"DETAILS", []string{"d", "details"}, boolOverride(func(c *AppConfig) *bool { return &c.Details })},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive). Other values return defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies FFTMUL_* values for every flag that was not
// explicitly set on the command line.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
