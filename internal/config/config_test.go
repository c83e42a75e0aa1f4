package config

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/fftmul/internal/errors"
)

var availableAlgos = []string{"bigint", "fft-iterative", "fft-recursive", "schoolbook"}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("fftmul", []string{"-a", "12", "-b", "34"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Algo = %q, want %q", cfg.Algo, DefaultAlgo)
	}
	if cfg.Strategy != DefaultStrategy {
		t.Errorf("Strategy = %q, want %q", cfg.Strategy, DefaultStrategy)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.Threshold != 0 {
		t.Errorf("Threshold = %d, want 0 (auto)", cfg.Threshold)
	}
}

func TestParseConfigFlags(t *testing.T) {
	t.Parallel()
	args := []string{
		"-a", "123", "-b", "456",
		"-algo", "ALL",
		"-strategy", "recursive",
		"-timeout", "10s",
		"-threshold", "2048",
		"-max-digits", "5000",
		"-allow-unsafe", "-strict",
		"-q", "-d", "-v",
		"-o", "product.txt",
		"-log-level", "debug",
	}
	cfg, err := ParseConfig("fftmul", args, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.A != "123" || cfg.B != "456" {
		t.Errorf("operands = %q, %q", cfg.A, cfg.B)
	}
	if cfg.Algo != AllAlgorithms {
		t.Errorf("Algo = %q, want %q", cfg.Algo, AllAlgorithms)
	}
	if cfg.Strategy != "recursive" {
		t.Errorf("Strategy = %q", cfg.Strategy)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Threshold != 2048 || cfg.MaxDigits != 5000 {
		t.Errorf("Threshold, MaxDigits = %d, %d", cfg.Threshold, cfg.MaxDigits)
	}
	if !cfg.AllowUnsafe || !cfg.StrictPrecision || !cfg.Quiet || !cfg.Details || !cfg.Verbose {
		t.Errorf("boolean flags not set: %+v", cfg)
	}
	if cfg.OutputFile != "product.txt" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}

	opts := cfg.ToMultiplyOptions()
	if opts.ParallelThreshold != 2048 || opts.MaxDigits != 5000 || !opts.AllowUnsafe || !opts.StrictPrecision {
		t.Errorf("ToMultiplyOptions() = %+v", opts)
	}
}

func TestParseConfigPositionalOperands(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("fftmul", []string{"-q", "999", "111"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.A != "999" || cfg.B != "111" {
		t.Errorf("operands = %q, %q", cfg.A, cfg.B)
	}
}

func TestParseConfigModesWithoutOperands(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		{"-batch"},
		{"-interactive"},
		{"-server", "-port", "9090"},
		{"-calibrate"},
		{"-completion", "bash"},
	} {
		if _, err := ParseConfig("fftmul", args, io.Discard, availableAlgos); err != nil {
			t.Errorf("ParseConfig(%v) error = %v", args, err)
		}
	}
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-unknown"}},
		{"missing operands", []string{}},
		{"one operand", []string{"-a", "12"}},
		{"invalid operand", []string{"-a", "12x", "-b", "3"}},
		{"unknown algorithm", []string{"-a", "1", "-b", "2", "-algo", "karatsuba"}},
		{"unknown strategy", []string{"-a", "1", "-b", "2", "-strategy", "radix4"}},
		{"zero timeout", []string{"-a", "1", "-b", "2", "-timeout", "0s"}},
		{"negative threshold", []string{"-a", "1", "-b", "2", "-threshold", "-5"}},
		{"negative max digits", []string{"-a", "1", "-b", "2", "-max-digits", "-1"}},
		{"bad log level", []string{"-a", "1", "-b", "2", "-log-level", "loud"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if _, err := ParseConfig("fftmul", tc.args, &buf, availableAlgos); err == nil {
				t.Errorf("ParseConfig(%v) succeeded, want error", tc.args)
			}
		})
	}
}

func TestValidateReturnsConfigError(t *testing.T) {
	t.Parallel()
	cfg := AppConfig{Timeout: time.Second, Algo: "nope", Strategy: DefaultStrategy, A: "1", B: "2"}
	err := cfg.Validate(availableAlgos)
	var ce apperrors.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("Validate() error = %v, want ConfigError", err)
	}
}

func TestUsageMentionsFlags(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	_, _ = ParseConfig("fftmul", []string{"-h"}, &buf, availableAlgos)
	for _, want := range []string{"FFT Multiplier", "-algo", "-allow-unsafe", "-batch"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("usage output is missing %q", want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"FFTMUL_A":                   "77",
		"FFTMUL_B":                   "88",
		"FFTMUL_ALGO":                "schoolbook",
		"FFTMUL_STRATEGY":            "recursive",
		"FFTMUL_TIMEOUT":             "2m",
		"FFTMUL_THRESHOLD":           "1024",
		"FFTMUL_MAX_DIGITS":          "300",
		"FFTMUL_PORT":                "3000",
		"FFTMUL_OUTPUT":              "out.txt",
		"FFTMUL_CALIBRATION_PROFILE": "prof.json",
		"FFTMUL_LOG_LEVEL":           "warn",
		"FFTMUL_ALLOW_UNSAFE":        "yes",
		"FFTMUL_VERBOSE":             "1",
		"FFTMUL_DETAILS":             "true",
		"FFTMUL_NO_COLOR":            "TRUE",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := ParseConfig("fftmul", []string{}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.A != "77" || cfg.B != "88" {
		t.Errorf("operands = %q, %q", cfg.A, cfg.B)
	}
	if cfg.Algo != "schoolbook" || cfg.Strategy != "recursive" {
		t.Errorf("Algo, Strategy = %q, %q", cfg.Algo, cfg.Strategy)
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Threshold != 1024 || cfg.MaxDigits != 300 {
		t.Errorf("Threshold, MaxDigits = %d, %d", cfg.Threshold, cfg.MaxDigits)
	}
	if cfg.Port != "3000" || cfg.OutputFile != "out.txt" || cfg.CalibrationProfile != "prof.json" {
		t.Errorf("string overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.AllowUnsafe || !cfg.Verbose || !cfg.Details || !cfg.NoColor {
		t.Errorf("boolean overrides not applied: %+v", cfg)
	}
}

func TestFlagPrecedenceOverEnv(t *testing.T) {
	t.Setenv("FFTMUL_ALGO", "schoolbook")
	t.Setenv("FFTMUL_THRESHOLD", "not-a-number")

	cfg, err := ParseConfig("fftmul", []string{"-algo", "bigint", "1", "2"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Algo != "bigint" {
		t.Errorf("Algo = %q, want flag value bigint", cfg.Algo)
	}
	if cfg.Threshold != 0 {
		t.Errorf("malformed env threshold applied: %d", cfg.Threshold)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tc := range tests {
		if got := parseBoolEnv(tc.in, tc.def); got != tc.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestAdaptiveThresholds(t *testing.T) {
	t.Parallel()

	if got := ApplyAdaptiveThresholds(AppConfig{Threshold: 4096}).Threshold; got != 4096 {
		t.Errorf("explicit threshold overwritten: %d", got)
	}
	if got := ApplyAdaptiveThresholds(AppConfig{Threshold: -1}).Threshold; got != -1 {
		t.Errorf("disabled threshold overwritten: %d", got)
	}
	if got := ApplyAdaptiveThresholds(AppConfig{}).Threshold; got == 0 {
		t.Error("auto threshold was not resolved")
	}

	tests := []struct {
		cpus int
		want int
	}{
		{1, -1},
		{2, 1 << 16},
		{4, 1 << 15},
		{8, 1 << 14},
		{16, 1 << 13},
		{64, 1 << 12},
	}
	for _, tc := range tests {
		if got := estimateParallelThreshold(tc.cpus); got != tc.want {
			t.Errorf("estimateParallelThreshold(%d) = %d, want %d", tc.cpus, got, tc.want)
		}
	}
}
