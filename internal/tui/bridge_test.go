package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/progress"
)

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	ref := &programRef{} // nil program - Send is a no-op
	reporter := &TUIProgressReporter{ref: ref}

	ch := make(chan progress.ProgressUpdate, 10)
	ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.25}
	ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.50}
	ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 1.00}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 1, nil)
	wg.Wait()

	if _, ok := <-ch; ok {
		t.Error("expected channel to be drained")
	}
}

func TestTUIProgressReporter_ZeroCalculators(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}}

	ch := make(chan progress.ProgressUpdate, 5)
	ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 0, nil)
	wg.Wait()
}

func TestTUIProgressReporter_MultipleCalculators(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}, gen: 3}

	ch := make(chan progress.ProgressUpdate, 10)
	ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.25}
	ch <- progress.ProgressUpdate{CalculatorIndex: 1, Value: 0.50}
	ch <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.75}
	ch <- progress.ProgressUpdate{CalculatorIndex: 1, Value: 1.00}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 2, nil)
	wg.Wait()
}

func TestProgramRef_Send_NilProgram(t *testing.T) {
	ref := &programRef{}
	ref.Send(ProgressMsg{Value: 0.5})
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{}

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Send(ProgressMsg{Value: float64(i) / 100})
		}()
	}
	wg.Wait()
}

func TestTUIResultPresenter_PresentMethods(t *testing.T) {
	presenter := &TUIResultPresenter{ref: &programRef{}}

	results := []orchestration.CalculationResult{
		{Name: "fft-iterative", Result: "56088", Duration: 100 * time.Millisecond},
		{Name: "fft-recursive", Result: "56088", Duration: 200 * time.Millisecond},
	}
	presenter.PresentComparisonTable(results, nil)
	presenter.PresentResult(results[0], orchestration.PresentationOptions{DigitsA: 3, DigitsB: 3}, nil)
}

func TestTUIResultPresenter_HandleError(t *testing.T) {
	presenter := &TUIResultPresenter{ref: &programRef{}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"validation", apperrors.NewValidationError("a", "not a digit"), apperrors.ExitErrorConfig},
		{"generic", errors.New("something failed"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := presenter.HandleError(tt.err, time.Second, nil); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
