package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight       = 1
	footerHeight       = 1
	minBodyHeight      = 6
	AlgorithmsWidthPct = 55
	MetricsPanelHeight = 7
	sampleInterval     = 500 * time.Millisecond
)

// ExecutionState holds the run-related fields of a dashboard session.
type ExecutionState struct {
	ctx         context.Context
	cancel      context.CancelFunc
	multipliers []multiply.Multiplier
	generation  uint64
	done        bool
	exitCode    int
}

// LayoutManager holds the terminal dimensions and splits them into panels.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) algorithmsWidth() int {
	return l.width * AlgorithmsWidthPct / 100
}

func (l LayoutManager) rightWidth() int {
	return l.width - l.algorithmsWidth()
}

func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header     HeaderModel
	algorithms AlgorithmsModel
	metrics    MetricsModel
	chart      ChartModel
	footer     FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
}

// NewModel creates a dashboard that multiplies cfg.A by cfg.B with every
// multiplier.
func NewModel(parentCtx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, version string) Model {
	names := make([]string, len(multipliers))
	for i, m := range multipliers {
		names[i] = m.Name()
	}

	ctx, cancel := context.WithCancel(parentCtx)
	keymap := DefaultKeyMap()

	algorithms := NewAlgorithmsModel(names)
	if cfg.Verbose {
		algorithms.ToggleFull()
	}

	return Model{
		header:     NewHeaderModel(version, len(cfg.A), len(cfg.B)),
		algorithms: algorithms,
		metrics:    NewMetricsModel(len(cfg.A), len(cfg.B), cfg.Threshold),
		chart:      NewChartModel(),
		footer:     NewFooterModel(keymap),
		keymap:     keymap,
		ExecutionState: ExecutionState{
			ctx:         ctx,
			cancel:      cancel,
			multipliers: multipliers,
			exitCode:    apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

// Init starts the run, the sampling ticker and the context watcher.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.multipliers, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation && !m.paused {
			m.algorithms.UpdateProgress(msg.CalculatorIndex, msg.Value)
			m.chart.AddDataPoint(msg.AverageProgress, msg.ETA)
			m.metrics.UpdateProgress(msg.AverageProgress)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		if msg.Generation == m.generation {
			m.algorithms.SetResults(msg.Results)
		}
		return m, nil

	case FinalResultMsg:
		if msg.Generation == m.generation {
			m.algorithms.SetProduct(msg.Result.Result)
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.algorithms.SetError(msg.Err)
		m.footer.SetError(true)
		m.finish()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(m.ctx), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.exitCode = msg.ExitCode
		switch msg.ExitCode {
		case apperrors.ExitSuccess:
		case apperrors.ExitErrorMismatch:
			m.algorithms.SetMismatch()
			m.footer.SetError(true)
		default:
			m.footer.SetError(true)
		}
		m.finish()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.finish()
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) finish() {
	if m.done {
		return
	}
	m.done = true
	m.header.SetDone()
	m.chart.SetDone(m.header.Elapsed())
	m.footer.SetDone(true)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Verbose):
		m.algorithms.ToggleFull()
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)

		m.header.Reset()
		m.algorithms.Reset()
		m.chart.Reset()
		m.metrics = NewMetricsModel(len(m.config.A), len(m.config.B), m.config.Threshold)
		m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetPaused(false)
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess

		return m, m.startCmds()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	algorithms := m.algorithms
	algorithms.SetSize(m.algorithmsWidth(), lipgloss.Height(rightCol))
	body := lipgloss.JoinHorizontal(lipgloss.Top, algorithms.View(), rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.algorithms.SetSize(m.algorithmsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run starts the dashboard and blocks until the user quits or ctx is
// canceled. It returns the exit code of the last run.
func Run(ctx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, multipliers, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd runs every multiplier and reports through the bridge.
func startCalculationCmd(ref *programRef, ctx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, gen: gen}
		presenter := &TUIResultPresenter{ref: ref, gen: gen}

		results := orchestration.ExecuteCalculations(ctx, multipliers, cfg, reporter, io.Discard)
		opts := orchestration.PresentationOptions{
			DigitsA: len(cfg.A),
			DigitsB: len(cfg.B),
			Verbose: cfg.Verbose,
			Details: cfg.Details,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, io.Discard)
		return CalculationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		s := sysmon.SampleContext(ctx)
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for ctx to end and reports it.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
