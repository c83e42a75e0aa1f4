// Package calibration measures the transform length from which parallel
// butterfly passes become profitable on the current machine, and persists
// the result as a profile reused by later runs.
package calibration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agbru/fftmul/internal/cli"
	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/ui"
)

const (
	// DefaultCalibrationDigits is the operand length used for each trial.
	DefaultCalibrationDigits = 200_000
	// DefaultTrialTimeout bounds a single trial.
	DefaultTrialTimeout = 30 * time.Second
	// ProfileMaxAge is the age after which a cached profile is ignored.
	ProfileMaxAge = 30 * 24 * time.Hour
)

// CalibrationOptions configures RunCalibration.
type CalibrationOptions struct {
	// ProfilePath is where the profile is written (empty = default path).
	ProfilePath string
	// SaveProfile writes the profile after a successful run.
	SaveProfile bool
	// Strategy selects the transform benchmarked ("iterative" or "recursive").
	Strategy string
	// Digits is the length of both random operands. 0 selects
	// DefaultCalibrationDigits.
	Digits int
	// Quick benchmarks the reduced candidate set.
	Quick bool
	// TrialTimeout bounds every trial. 0 selects DefaultTrialTimeout.
	TrialTimeout time.Duration
}

// RunCalibration benchmarks every parallel threshold candidate with the
// FFT multiplier for opts.Strategy, prints a summary table and a
// recommendation, and optionally saves the profile. It returns an exit code.
func RunCalibration(ctx context.Context, out io.Writer, factory multiply.MultiplierFactory, opts CalibrationOptions) int {
	if opts.Digits <= 0 {
		opts.Digits = DefaultCalibrationDigits
	}
	if opts.TrialTimeout <= 0 {
		opts.TrialTimeout = DefaultTrialTimeout
	}
	if opts.Strategy == "" {
		opts.Strategy = config.DefaultStrategy
	}

	name := "fft-" + opts.Strategy
	m, err := factory.Get(name)
	if err != nil {
		fmt.Fprintf(out, "Calibration failed: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	thresholds := GenerateParallelThresholds()
	if opts.Quick {
		thresholds = GenerateQuickParallelThresholds()
	}

	fmt.Fprintf(out, "%s--- Calibration Mode: parallel threshold for %s%s%s ---%s\n",
		ui.ColorBold(), ui.ColorCyan(), name, ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Operands: %s%d%s digits each, %d candidates.\n",
		ui.ColorMagenta(), opts.Digits, ui.ColorReset(), len(thresholds))

	start := time.Now()
	r := newRunner(m, opts.Digits, opts.TrialTimeout, multiply.Options{AllowUnsafe: true})
	results := make([]calibrationResult, 0, len(thresholds))

	progressChan := make(chan progress.ProgressUpdate, len(thresholds)+1)
	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, progressChan, 1, out)

	for i, threshold := range thresholds {
		if ctx.Err() != nil {
			break
		}
		res := r.measure(ctx, threshold)
		results = append(results, res)
		log.Debug().Int("threshold", threshold).Dur("duration", res.Duration).Err(res.Err).Msg("calibration trial")
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: float64(i+1) / float64(len(thresholds))}
	}
	close(progressChan)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(out, "%sCalibration interrupted: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorCanceled
	}

	bestThreshold, bestDuration, ok := best(results)
	printCalibrationResults(out, results, bestThreshold)
	if !ok {
		fmt.Fprintf(out, "%sAll calibration trials failed.%s\n", ui.ColorRed(), ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}

	fmt.Fprintf(out, "\n%s✅ Recommendation: %s%s%s (%s)%s\n",
		ui.ColorGreen(), ui.ColorYellow(), thresholdLabel(bestThreshold), ui.ColorGreen(),
		bestDuration.Round(time.Microsecond), ui.ColorReset())

	if opts.SaveProfile {
		profile := NewProfile()
		profile.Strategy = opts.Strategy
		profile.OptimalParallelThreshold = bestThreshold
		profile.CalibrationDigits = opts.Digits
		profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
		if err := profile.SaveProfile(opts.ProfilePath); err != nil {
			fmt.Fprintf(out, "%sWarning: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
		} else {
			path := opts.ProfilePath
			if path == "" {
				path = GetDefaultProfilePath()
			}
			fmt.Fprintf(out, "Profile saved to %s%s%s\n", ui.ColorCyan(), path, ui.ColorReset())
		}
	}
	return apperrors.ExitSuccess
}

// LoadCachedCalibration fills an auto (0) threshold in cfg from a valid,
// fresh profile at profilePath. Explicit thresholds are left untouched. The
// boolean reports whether the profile was applied.
func LoadCachedCalibration(cfg config.AppConfig, profilePath string) (config.AppConfig, bool) {
	if cfg.Threshold != 0 {
		return cfg, false
	}
	profile, err := LoadProfile(profilePath)
	if err != nil {
		return cfg, false
	}
	if !profile.IsValid() || profile.IsStale(ProfileMaxAge) {
		log.Debug().Str("profile", profile.String()).Msg("ignoring calibration profile")
		return cfg, false
	}
	cfg.Threshold = profile.OptimalParallelThreshold
	log.Debug().Int("threshold", cfg.Threshold).Msg("loaded calibration profile")
	return cfg, true
}
