package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fftmul into a temporary directory. go test runs
// from test/e2e, so the module root is two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binName := "fftmul"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fftmul")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fftmul: %v", err)
	}
	return binPath
}

func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)
	profile := filepath.Join(t.TempDir(), "profile.json")

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Basic Multiplication",
			args:    []string{"-a", "12345", "-b", "6789"},
			wantOut: "A × B = 83810205",
		},
		{
			name:    "Positional Operands",
			args:    []string{"99", "99"},
			wantOut: "9801",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "All Algorithms Comparison",
			args:    []string{"--algo", "all", "123456789", "987654321"},
			wantOut: "All valid results are consistent",
		},
		{
			name:    "Quiet Mode",
			args:    []string{"--quiet", "0", "123"},
			wantOut: "0",
		},
		{
			name:    "Recursive Strategy",
			args:    []string{"--algo", "fft-recursive", "-d", "1000", "1000"},
			wantOut: "Transform length",
		},
		{
			name:    "Batch From Stdin",
			args:    []string{"--batch"},
			stdin:   "2\n12 34\n5 5\n",
			wantOut: "408\n25",
		},
		{
			name:     "Invalid Operand",
			args:     []string{"-a", "12a", "-b", "3"},
			wantOut:  "operand a",
			wantCode: 4,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"--timeout", "1ns", "-a", strings.Repeat("7", 5000), "-b", strings.Repeat("3", 5000)},
			wantCode: 2,
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: "fftmul",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--calibration-profile", profile}, tt.args...)
			if tt.name == "Help" || tt.name == "Version Flag" {
				args = tt.args
			}
			cmd := exec.Command(binPath, args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			if tt.stdin != "" {
				cmd.Stdin = strings.NewReader(tt.stdin)
			}
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				var exitErr *exec.ExitError
				if err == nil {
					t.Errorf("Expected exit code %d, but command succeeded.\nOutput: %s", tt.wantCode, outStr)
				} else if errors.As(err, &exitErr) && exitErr.ExitCode() != tt.wantCode {
					t.Errorf("Exit code = %d, want %d\nOutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
