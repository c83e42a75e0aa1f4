package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	testErr := errors.New("bad digit")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("algo", "fft-iterative"), "algo", "fft-iterative"},
		{"Int", Int("digits", 42), "digits", 42},
		{"Uint64", Uint64("size", 1<<40), "size", uint64(1 << 40)},
		{"Float64", Float64("deviation", 0.125), "deviation", 0.125},
		{"Bool", Bool("parallel", true), "parallel", true},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"off", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestNewLogger tests the component-tagged constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "driver")
	logger.Info("product ready")

	output := buf.String()
	if !strings.Contains(output, `"component":"driver"`) {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "product ready") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "repl", true)
	logger.Warn("rounding close to tolerance", Float64("deviation", 0.3))

	output := buf.String()
	for _, want := range []string{"WRN", "rounding close to tolerance", "deviation=0.3"} {
		if !strings.Contains(output, want) {
			t.Errorf("console output should contain %q, got: %s", want, output)
		}
	}
}

// TestZerologAdapter_Levels checks each level method emits its level and fields.
func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("multiplied", String("algo", "fft-recursive"), Int("n", 8)) },
			contains: []string{`"level":"info"`, "multiplied", "fft-recursive", `"n":8`},
		},
		{
			name:     "warn",
			log:      func(l Logger) { l.Warn("precision", Float64("deviation", 0.31)) },
			contains: []string{`"level":"warn"`, "0.31"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("decode failed", errors.New("carry overflow"), Bool("strict", true)) },
			contains: []string{`"level":"error"`, "carry overflow", `"strict":true`},
		},
		{
			name:     "debug with duration",
			log:      func(l Logger) { l.Debug("pass done", Duration("elapsed", 2*time.Millisecond)) },
			contains: []string{`"level":"debug"`, "pass done", "elapsed"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("listening on %s", ":8080") },
			contains: []string{"listening on :8080"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("server", "stopped") },
			contains: []string{"server stopped"},
		},
		{
			name:     "interface field",
			log:      func(l Logger) { l.Info("sizes", Field{Key: "sizes", Value: []int{1, 2}}) },
			contains: []string{`"sizes":[1,2]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
			tt.log(NewZerologAdapter(zl))
			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLogger(&buf, "spectral")
	zl := adapter.Zerolog()
	zl.Info().Msg("direct")
	if !strings.Contains(buf.String(), "spectral") {
		t.Errorf("underlying logger should keep the component, got: %s", buf.String())
	}
}

// TestStdLoggerAdapter checks the bracketed level prefixes.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{"info", func(l Logger) { l.Info("started") }, []string{"[INFO]", "started"}},
		{"info fields", func(l Logger) { l.Info("started", String("port", "8080")) }, []string{"[INFO]", "8080"}},
		{"warn", func(l Logger) { l.Warn("slow") }, []string{"[WARN]", "slow"}},
		{"debug", func(l Logger) { l.Debug("pass", Int("p", 4)) }, []string{"[DEBUG]", "pass"}},
		{"error", func(l Logger) { l.Error("failed", errors.New("boom")) }, []string{"[ERROR]", "failed: boom"}},
		{"error fields", func(l Logger) { l.Error("failed", errors.New("boom"), Int("pair", 2)) }, []string{"[ERROR]", "boom", "pair"}},
		{"printf", func(l Logger) { l.Printf("%d products", 3) }, []string{"3 products"}},
		{"println", func(l Logger) { l.Println("a", "b") }, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored", errors.New("x"))
	l.Debug("ignored")
	l.Printf("%s", "ignored")
	l.Println("ignored")
}
