package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/stringmatch"
	"github.com/agbru/fftmul/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the registry name of the initial multiplier.
	DefaultAlgo string
	// Timeout is the maximum duration of each multiplication.
	Timeout time.Duration
	// Options are passed to every multiplication.
	Options multiply.Options
}

// REPL is an interactive multiplication session.
type REPL struct {
	config      REPLConfig
	registry    map[string]multiply.Multiplier
	names       []string
	currentAlgo string
	last        string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a session over the multipliers in registry, keyed by their
// registry names. An empty or "all" DefaultAlgo selects the first name in
// sorted order.
func NewREPL(registry map[string]multiply.Multiplier, config REPLConfig) *REPL {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	currentAlgo := config.DefaultAlgo
	if _, ok := registry[currentAlgo]; !ok && len(names) > 0 {
		currentAlgo = names[0]
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}

	return &REPL{
		config:      config,
		registry:    registry,
		names:       names,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and executes commands until "exit" or end of input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"mul> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		// A final line without a newline is still executed.
		if line := strings.TrimSpace(input); line != "" && !r.processCommand(line) {
			return
		}
		if err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s✖ FFT Multiplier - Interactive Mode%s                   %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smul <a> <b>%s     - Multiply with the current algorithm\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s     - Change algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.names, ", "))
	fmt.Fprintf(r.out, "  %scompare <a> <b>%s - Compare all algorithms\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfind <digits>%s   - Locate a digit sequence in the last product\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s            - List available algorithms\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s          - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s            - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s     - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand executes one input line. It returns false on exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "mul", "m":
		r.cmdMul(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "find", "f":
		r.cmdFind(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Two bare operands are a shorthand for mul.
		if len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1]) {
			r.multiply(parts[0], parts[1])
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func (r *REPL) cmdMul(args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: mul <a> <b>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.multiply(args[0], args[1])
}

// multiply runs the current multiplier with a spinner.
func (r *REPL) multiply(a, b string) {
	m, ok := r.registry[r.currentAlgo]
	if !ok {
		fmt.Fprintf(r.out, "%sAlgorithm not found: %s%s\n", ui.ColorRed(), r.currentAlgo, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Multiplying %s%d%s × %s%d%s digits with %s%s%s...\n",
		ui.ColorMagenta(), len(a), ui.ColorReset(),
		ui.ColorMagenta(), len(b), ui.ColorReset(),
		ui.ColorCyan(), m.Name(), ui.ColorReset())

	progressChan := make(chan progress.ProgressUpdate, 10)
	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(progressChan))

	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	product, err := m.MultiplyWithObservers(ctx, subject, 0, a, b, r.config.Options)
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	r.last = product
	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time:   %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Digits: %s%s%s\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(product))), ui.ColorReset())
	if len(product) > TruncationLimit {
		fmt.Fprintf(r.out, "  A × B = %s%s%s (truncated)\n",
			ui.ColorGreen(), format.TruncateDigits(product, TruncationLimit, DisplayEdges), ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  A × B = %s%s%s\n", ui.ColorGreen(), product, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.names, ", "))
		return
	}

	name := strings.ToLower(args[0])
	m, ok := r.registry[name]
	if !ok {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.names, ", "))
		return
	}
	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), m.Name(), ui.ColorReset())
}

// cmdCompare runs every multiplier sequentially and flags products that
// differ from the first successful one.
func (r *REPL) cmdCompare(args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: compare <a> <b>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	a, b := args[0], args[1]

	fmt.Fprintf(r.out, "\n%sComparison for %d × %d digits:%s\n", ui.ColorBold(), len(a), len(b), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	var first string
	for _, name := range r.names {
		m := r.registry[name]
		ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
		start := time.Now()
		product, err := m.Multiply(ctx, a, b, r.config.Options)
		duration := time.Since(start)
		cancel()

		if err != nil {
			fmt.Fprintf(r.out, "  %s%-15s%s: %sError - %v%s\n",
				ui.ColorYellow(), name, ui.ColorReset(), ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		if first == "" {
			first = product
		}

		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if product != first {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-15s%s: %s%12s%s %s\n",
			ui.ColorYellow(), name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset(),
			status)
	}

	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// maxFindPositions bounds the positions printed by find.
const maxFindPositions = 10

// cmdFind lists the positions of a digit sequence in the last product.
func (r *REPL) cmdFind(args []string) {
	if len(args) != 1 || !isDigits(args[0]) {
		fmt.Fprintf(r.out, "%sUsage: find <digits>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	if r.last == "" {
		fmt.Fprintf(r.out, "%sNo product yet. Run mul first.%s\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	positions := stringmatch.KMPAll(r.last, args[0])
	if len(positions) == 0 {
		fmt.Fprintf(r.out, "%s%s not found in the last product%s\n", ui.ColorYellow(), args[0], ui.ColorReset())
		return
	}
	shown := make([]string, 0, maxFindPositions)
	for _, p := range positions[:min(len(positions), maxFindPositions)] {
		shown = append(shown, fmt.Sprint(p))
	}
	suffix := ""
	if len(positions) > maxFindPositions {
		suffix = ", ..."
	}
	fmt.Fprintf(r.out, "Found %s%d%s occurrence(s) of %s at: %s%s\n",
		ui.ColorGreen(), len(positions), ui.ColorReset(), args[0], strings.Join(shown, ", "), suffix)
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.names {
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-15s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), r.registry[name].Name())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	threshold := "disabled"
	if t := r.config.Options.ParallelThreshold; t > 0 {
		threshold = fmt.Sprintf("%d samples", t)
	} else if t == 0 {
		threshold = "default"
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:          %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:            %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Parallel threshold: %s%s%s\n", ui.ColorCyan(), threshold, ui.ColorReset())
	fmt.Fprintln(r.out)
}
