package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build-time variables set via -ldflags, for example:
//
//	go build -ldflags="-X github.com/agbru/fftmul/internal/app.Version=v1.2.3 -X github.com/agbru/fftmul/internal/app.Commit=abc123"
var (
	// Version is the semantic version of the application.
	Version = "dev"
	// Commit is the short Git commit hash.
	Commit = "unknown"
	// BuildDate is the ISO 8601 timestamp of the build.
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args contain a version flag in any
// position.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes version and runtime information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fftmul %s\n", Version)
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
