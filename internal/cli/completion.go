package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// argKind classifies what follows a flag on the command line.
type argKind int

const (
	argNone argKind = iota
	argFree
	argChoice
	argFile
	argAlgorithm
)

// completionFlag describes one command-line flag for the completion scripts.
type completionFlag struct {
	Long    string
	Short   string
	Help    string
	Kind    argKind
	Label   string
	Choices []string
	Section string
}

// names returns the dash-prefixed spellings, long form first.
func (f completionFlag) names() []string {
	var n []string
	if f.Long != "" {
		n = append(n, "--"+f.Long)
	}
	if f.Short != "" {
		n = append(n, "-"+f.Short)
	}
	return n
}

func (f completionFlag) values(algorithms []string) []string {
	switch f.Kind {
	case argAlgorithm:
		return append(append([]string(nil), algorithms...), "all")
	case argChoice:
		return f.Choices
	default:
		return nil
	}
}

var completionSections = []string{"Help", "Operands", "Algorithm", "Modes", "Calibration", "Output", "Completion"}

var completionFlags = []completionFlag{
	{Long: "help", Short: "h", Help: "Show help message", Section: "Help"},
	{Short: "a", Help: "First operand (decimal digits)", Kind: argFree, Label: "digits", Section: "Operands"},
	{Short: "b", Help: "Second operand (decimal digits)", Kind: argFree, Label: "digits", Section: "Operands"},
	{Long: "max-digits", Help: "Largest accepted operand length", Kind: argChoice, Label: "digits", Choices: []string{"100000", "1000000"}, Section: "Operands"},
	{Long: "allow-unsafe", Help: "Accept operands beyond the safe length", Section: "Operands"},
	{Long: "algo", Help: "Multiplier to run", Kind: argAlgorithm, Label: "algorithm", Section: "Algorithm"},
	{Long: "strategy", Help: "Transform strategy", Kind: argChoice, Label: "strategy", Choices: []string{"iterative", "recursive"}, Section: "Algorithm"},
	{Long: "threshold", Help: "Transform length for parallel butterflies", Kind: argChoice, Label: "samples", Choices: []string{"0", "-1", "8192", "16384", "65536"}, Section: "Algorithm"},
	{Long: "strict", Help: "Fail when rounding error is too large", Section: "Algorithm"},
	{Long: "timeout", Help: "Maximum execution time", Kind: argChoice, Label: "duration", Choices: []string{"1m", "5m", "30m"}, Section: "Algorithm"},
	{Long: "batch", Help: "Multiply operand pairs read line by line", Section: "Modes"},
	{Long: "input", Help: "Batch input file", Kind: argFile, Label: "file", Section: "Modes"},
	{Long: "interactive", Help: "Start the REPL", Section: "Modes"},
	{Long: "server", Help: "Start the HTTP server", Section: "Modes"},
	{Long: "port", Help: "HTTP server port", Kind: argChoice, Label: "port", Choices: []string{"8080", "9090"}, Section: "Modes"},
	{Long: "tui", Help: "Run the terminal dashboard", Section: "Modes"},
	{Long: "calibrate", Help: "Measure the parallel threshold", Section: "Calibration"},
	{Long: "calibration-profile", Help: "Calibration profile file", Kind: argFile, Label: "file", Section: "Calibration"},
	{Long: "output", Short: "o", Help: "Write the product to a file", Kind: argFile, Label: "file", Section: "Output"},
	{Short: "v", Help: "Print the full product", Section: "Output"},
	{Long: "details", Short: "d", Help: "Show timing and operand details", Section: "Output"},
	{Long: "quiet", Short: "q", Help: "Print only the product", Section: "Output"},
	{Long: "no-color", Help: "Disable colored output", Section: "Output"},
	{Long: "log-level", Help: "Log level", Kind: argChoice, Label: "level", Choices: []string{"debug", "info", "warn", "error"}, Section: "Output"},
	{Long: "completion", Help: "Print a shell completion script", Kind: argChoice, Label: "shell", Choices: []string{"bash", "zsh", "fish", "powershell"}, Section: "Completion"},
}

// flagsInSection returns the flags of one section in declaration order.
func flagsInSection(section string) []completionFlag {
	var out []completionFlag
	for _, f := range completionFlags {
		if f.Section == section {
			out = append(out, f)
		}
	}
	return out
}

var completionFuncs = template.FuncMap{
	"join": strings.Join,
	"quote": func(vals []string) string {
		q := make([]string, len(vals))
		for i, v := range vals {
			q[i] = "'" + v + "'"
		}
		return strings.Join(q, ", ")
	},
}

var completionTemplates = map[string]*template.Template{
	"bash":       template.Must(template.New("bash").Funcs(completionFuncs).Parse(bashTemplate)),
	"zsh":        template.Must(template.New("zsh").Funcs(completionFuncs).Parse(zshTemplate)),
	"fish":       template.Must(template.New("fish").Funcs(completionFuncs).Parse(fishTemplate)),
	"powershell": template.Must(template.New("powershell").Funcs(completionFuncs).Parse(powershellTemplate)),
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish", "powershell" or "ps") offering the given algorithm names to --algo.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	if shell == "ps" {
		shell = "powershell"
	}
	tmpl, ok := completionTemplates[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if err := tmpl.Execute(out, newCompletionData(algorithms)); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

type valueCase struct {
	Names  []string
	Values []string
	Files  bool
}

type fishSection struct {
	Title string
	Lines []string
}

type psEntry struct {
	Name   string
	Help   string
	Values []string
}

type completionData struct {
	Algorithms []string
	Options    []string
	Cases      []valueCase
	ZshArgs    []string
	Fish       []fishSection
	PSOptions  []psEntry
	PSCases    []psEntry
}

func newCompletionData(algorithms []string) completionData {
	d := completionData{Algorithms: append(append([]string(nil), algorithms...), "all")}

	var files []string
	for _, f := range completionFlags {
		d.Options = append(d.Options, f.names()...)
		d.ZshArgs = append(d.ZshArgs, zshArg(f, algorithms))
		for _, n := range f.names() {
			d.PSOptions = append(d.PSOptions, psEntry{Name: n, Help: f.Help})
		}
		switch f.Kind {
		case argFile:
			files = append(files, f.names()...)
		case argChoice, argAlgorithm:
			vals := f.values(algorithms)
			d.Cases = append(d.Cases, valueCase{Names: f.names(), Values: vals})
			for _, n := range f.names() {
				d.PSCases = append(d.PSCases, psEntry{Name: n, Values: vals})
			}
		}
	}
	if len(files) > 0 {
		d.Cases = append(d.Cases, valueCase{Names: files, Files: true})
	}

	for _, s := range completionSections {
		sec := fishSection{Title: s}
		for _, f := range flagsInSection(s) {
			sec.Lines = append(sec.Lines, fishLine(f, algorithms))
		}
		d.Fish = append(d.Fish, sec)
	}
	return d
}

func zshArg(f completionFlag, algorithms []string) string {
	var action string
	switch f.Kind {
	case argFree:
		action = ":" + f.Label + ":"
	case argFile:
		action = ":" + f.Label + ":_files"
	case argChoice, argAlgorithm:
		action = fmt.Sprintf(":%s:(%s)", f.Label, strings.Join(f.values(algorithms), " "))
	}

	desc := fmt.Sprintf("[%s]%s", f.Help, action)
	switch {
	case f.Long != "" && f.Short != "":
		return fmt.Sprintf("'(-%[1]s --%[2]s)'{-%[1]s,--%[2]s}'%[3]s'", f.Short, f.Long, desc)
	case f.Long != "":
		return "'--" + f.Long + desc + "'"
	default:
		return "'-" + f.Short + desc + "'"
	}
}

func fishLine(f completionFlag, algorithms []string) string {
	var b strings.Builder
	b.WriteString("complete -c fftmul")
	if f.Short != "" {
		b.WriteString(" -s " + f.Short)
	}
	if f.Long != "" {
		b.WriteString(" -l " + f.Long)
	}
	fmt.Fprintf(&b, " -d '%s'", f.Help)
	switch f.Kind {
	case argFree:
		b.WriteString(" -x")
	case argFile:
		b.WriteString(" -rF")
	case argChoice, argAlgorithm:
		fmt.Fprintf(&b, " -xa '%s'", strings.Join(f.values(algorithms), " "))
	}
	return b.String()
}

const bashTemplate = `# bash completion for fftmul
# source this file from ~/.bashrc

_fftmul() {
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
{{- range .Cases}}
        {{join .Names "|"}})
{{- if .Files}}
            COMPREPLY=( $(compgen -f -- "${cur}") )
{{- else}}
            COMPREPLY=( $(compgen -W "{{join .Values " "}}" -- "${cur}") )
{{- end}}
            return 0
            ;;
{{- end}}
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "{{join .Options " "}}" -- "${cur}") )
    fi
}

complete -F _fftmul fftmul
`

const zshTemplate = `#compdef fftmul

_fftmul() {
    _arguments -s \
        {{join .ZshArgs " \\\n        "}}
}

_fftmul "$@"
`

const fishTemplate = `# fish completion for fftmul
# save as ~/.config/fish/completions/fftmul.fish

complete -c fftmul -f
{{range .Fish}}
# {{.Title}}
{{- range .Lines}}
{{.}}
{{- end}}
{{end}}`

const powershellTemplate = `# PowerShell completion for fftmul
# dot-source this file from $PROFILE

$fftmulAlgorithms = @({{quote .Algorithms}})

Register-ArgumentCompleter -CommandName 'fftmul' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    $values = switch ($prevElement) {
{{- range .PSCases}}
        '{{.Name}}' { @({{quote .Values}}) }
{{- end}}
        default { $null }
    }
    if ($values) {
        $values | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    $options = @(
{{- range .PSOptions}}
        @{ Name = '{{.Name}}'; Description = '{{.Help}}' }
{{- end}}
    )
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`
