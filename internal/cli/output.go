// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write to the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the product (empty for no file output).
	OutputFile string
	// Quiet prints the bare product only.
	Quiet bool
}

// ResultFileHeader is the first line of a product file.
const ResultFileHeader = "# FFT Multiplication Result"

// WriteResultToFile writes a product and its metadata to config.OutputFile,
// creating parent directories as needed. An empty OutputFile is a no-op.
//
// Parameters:
//   - product: The decimal product.
//   - digitsA, digitsB: The operand lengths.
//   - duration: The multiplication duration.
//   - algo: The algorithm name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(product string, digitsA, digitsB int, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(config.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	fmt.Fprintf(file, "%s\n", ResultFileHeader)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Operand digits: %d x %d\n", digitsA, digitsB)
	fmt.Fprintf(file, "# Digits: %d\n", len(product))
	fmt.Fprintf(file, "\n%s\n", product)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatQuietResult returns the product as a single line for scripting.
func FormatQuietResult(product string) string {
	return product
}

// DisplayQuietResult prints only the product.
func DisplayQuietResult(out io.Writer, product string) {
	fmt.Fprintln(out, FormatQuietResult(product))
}

// SaveResult writes result to config.OutputFile and confirms it on out
// unless config.Quiet is set. An empty OutputFile is a no-op.
//
// Parameters:
//   - out: The output writer for the confirmation.
//   - result: The successful multiplication.
//   - opts: Presentation options carrying the operand lengths.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func SaveResult(out io.Writer, result orchestration.CalculationResult, opts orchestration.PresentationOptions, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(result.Result, opts.DigitsA, opts.DigitsB, result.Duration, result.Name, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
	return nil
}
