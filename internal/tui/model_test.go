package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/orchestration"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	multipliers := []multiply.Multiplier{
		multiply.GlobalFactory().MustGet(multiply.NameFFTIterative),
		multiply.GlobalFactory().MustGet(multiply.NameFFTRecursive),
	}
	cfg := config.AppConfig{A: "1234", B: "5678", Algo: config.AllAlgorithms}
	m := NewModel(context.Background(), multipliers, cfg, "v1.0.0")
	t.Cleanup(m.cancel)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_ViewAfterResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	for _, want := range []string{"FFT Multiply", "fft-iterative", "fft-recursive", "Metrics", "Progress", "RUNNING"} {
		assert.Contains(t, view, want)
	}
}

func TestModel_ProgressUpdatesPanels(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, ProgressMsg{CalculatorIndex: 1, Value: 0.5, AverageProgress: 0.25, ETA: time.Second})

	assert.Equal(t, 0.5, m.algorithms.rows[1].progress)
	assert.Equal(t, 0.25, m.chart.average)
}

func TestModel_PauseDropsProgress(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, m.paused)
	assert.Equal(t, "PAUSED", m.footer.Status())

	m, _ = update(t, m, ProgressMsg{CalculatorIndex: 0, Value: 0.9})
	assert.Zero(t, m.algorithms.rows[0].progress)
}

func TestModel_VerboseTogglesFullProduct(t *testing.T) {
	m := newTestModel(t)
	before := m.algorithms.showFull
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	assert.NotEqual(t, before, m.algorithms.showFull)
}

func TestModel_CompletionSuccess(t *testing.T) {
	m := newTestModel(t)
	results := []orchestration.CalculationResult{
		{Name: multiply.NameFFTIterative, Result: "7006652", Duration: time.Millisecond},
		{Name: multiply.NameFFTRecursive, Result: "7006652", Duration: 2 * time.Millisecond},
	}
	m, _ = update(t, m, ComparisonResultsMsg{Results: results})
	m, _ = update(t, m, FinalResultMsg{Result: results[0]})
	m, _ = update(t, m, CalculationCompleteMsg{ExitCode: apperrors.ExitSuccess})

	assert.True(t, m.done)
	assert.Equal(t, apperrors.ExitSuccess, m.exitCode)
	assert.Equal(t, "7006652", m.algorithms.product)
	assert.Equal(t, "DONE", m.footer.Status())

	_, cmd := update(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd, "ticks stop once done")
}

func TestModel_CompletionMismatch(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, CalculationCompleteMsg{ExitCode: apperrors.ExitErrorMismatch})

	assert.Equal(t, apperrors.ExitErrorMismatch, m.exitCode)
	assert.True(t, m.algorithms.failed)
	assert.Equal(t, "ERROR", m.footer.Status())
}

func TestModel_ErrorMsg(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, ErrorMsg{Err: errors.New("boom")})

	assert.True(t, m.done)
	assert.Equal(t, "boom", m.algorithms.status)
}

func TestModel_ResetIgnoresStaleMessages(t *testing.T) {
	m := newTestModel(t)
	oldCtx := m.ctx

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	assert.Equal(t, uint64(1), m.generation)
	assert.Error(t, oldCtx.Err(), "reset cancels the previous run")

	m, _ = update(t, m, ErrorMsg{Err: context.Canceled, Generation: 0})
	m, _ = update(t, m, ProgressMsg{Value: 0.8, Generation: 0})
	m, _ = update(t, m, CalculationCompleteMsg{ExitCode: apperrors.ExitErrorCanceled, Generation: 0})
	next, quit := m.Update(ContextCancelledMsg{Err: context.Canceled, Generation: 0})
	m = next.(Model)

	assert.Nil(t, quit)
	assert.False(t, m.done)
	assert.Empty(t, m.algorithms.status)
	assert.Zero(t, m.algorithms.rows[0].progress)
	assert.Equal(t, apperrors.ExitSuccess, m.exitCode)
}

func TestModel_QuitCancelsContext(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Error(t, m.ctx.Err())
}

func TestModel_SystemSamples(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, MemStatsMsg{Alloc: 1 << 20, NumGoroutine: 3})
	m, _ = update(t, m, SysStatsMsg{CPUPercent: 12, MemPercent: 34})

	assert.Equal(t, uint64(1<<20), m.metrics.alloc)
	assert.Equal(t, 12.0, m.chart.cpu.Last())
	assert.Equal(t, 34.0, m.chart.mem.Last())
}

func TestStartCalculationCmd(t *testing.T) {
	multipliers := []multiply.Multiplier{multiply.GlobalFactory().MustGet(multiply.NameFFTIterative)}
	cfg := config.AppConfig{A: "1234", B: "5678"}

	msg := startCalculationCmd(&programRef{}, context.Background(), multipliers, cfg, 4)()
	done, ok := msg.(CalculationCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, apperrors.ExitSuccess, done.ExitCode)
	assert.Equal(t, uint64(4), done.Generation)
}

func TestWatchContextCmd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := watchContextCmd(ctx, 2)()
	cc, ok := msg.(ContextCancelledMsg)
	require.True(t, ok)
	assert.ErrorIs(t, cc.Err, context.Canceled)
	assert.Equal(t, uint64(2), cc.Generation)
}

func TestSampleMemStatsCmd(t *testing.T) {
	msg, ok := sampleMemStatsCmd()().(MemStatsMsg)
	require.True(t, ok)
	assert.Positive(t, msg.NumGoroutine)
}
