package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/fftmul/internal/cli/mocks"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/ui"
)

func TestDisplayResult(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	long := strings.Repeat("9", 150)
	tests := []struct {
		name        string
		product     string
		opts        orchestration.PresentationOptions
		contains    []string
		notContains []string
	}{
		{
			name:     "Short product",
			product:  "56088",
			contains: []string{"Product size: 5 digits.", "A × B = 56088"},
		},
		{
			name:     "Details",
			product:  "56088",
			opts:     orchestration.PresentationOptions{Details: true, DigitsA: 3, DigitsB: 3},
			contains: []string{"Detailed result analysis", "Multiplication time", "Operand digits      : 3 × 3", "Transform length    : 8", "Transform memory"},
		},
		{
			name:        "Truncated product",
			product:     long,
			contains:    []string{"(truncated)", "Tip: use", "Product size: 150 digits."},
			notContains: []string{long},
		},
		{
			name:     "Verbose product",
			product:  long,
			opts:     orchestration.PresentationOptions{Verbose: true},
			contains: []string{"A × B = " + long},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.product, time.Millisecond, tt.opts, &buf)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, output)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(output, s) {
					t.Errorf("expected output not to contain %q", s)
				}
			}
		})
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)
	gomock.InOrder(
		mockS.EXPECT().Start(),
		mockS.EXPECT().Stop(),
	)
	mockS.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate)
	go func() {
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
		time.Sleep(2 * ProgressRefreshRate)
		close(progressChan)
	}()

	var buf bytes.Buffer
	DisplayProgress(&wg, progressChan, 1, &buf)
	wg.Wait()

	if !strings.Contains(buf.String(), "Progress: 100.00%") {
		t.Errorf("expected final progress line, got %q", buf.String())
	}
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}

func TestProgressLabel(t *testing.T) {
	t.Parallel()
	if got := progressLabel(1); got != "Progress" {
		t.Errorf("progressLabel(1) = %q", got)
	}
	if got := progressLabel(4); got != "Avg progress" {
		t.Errorf("progressLabel(4) = %q", got)
	}
}
