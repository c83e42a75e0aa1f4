package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/fftmul/internal/spectral"
)

// CalibrationProfile stores the result of a calibration run together with
// the hardware it was measured on, so stale or foreign profiles are ignored.
type CalibrationProfile struct {
	// Hardware identification
	CPUModel    string `json:"cpu_model"`
	CPUFeatures string `json:"cpu_features"`
	NumCPU      int    `json:"num_cpu"`
	GOARCH      string `json:"goarch"`
	GOOS        string `json:"goos"`
	GoVersion   string `json:"go_version"`
	WordSize    int    `json:"word_size"`

	// OptimalParallelThreshold is the fastest transform length measured.
	// -1 means sequential.
	OptimalParallelThreshold int `json:"optimal_parallel_threshold"`
	// Strategy is the transform strategy that was benchmarked.
	Strategy string `json:"strategy"`

	CalibratedAt      time.Time `json:"calibrated_at"`
	CalibrationDigits int       `json:"calibration_digits"`
	CalibrationTime   string    `json:"calibration_time"`

	ProfileVersion int `json:"profile_version"`
}

const (
	// CurrentProfileVersion is incremented on breaking format changes.
	CurrentProfileVersion = 1

	// DefaultProfileFileName is the profile name in the home directory.
	DefaultProfileFileName = ".fftmul_calibration.json"
)

// GetDefaultProfilePath returns ~/.fftmul_calibration.json, or the bare file
// name when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// NewProfile creates a profile describing the current host.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		CPUModel:       getCPUModel(),
		CPUFeatures:    spectral.DetectCPUFeatures().String(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CalibratedAt:   time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

func getCPUModel() string {
	return fmt.Sprintf("%s-%d-cores", runtime.GOARCH, runtime.NumCPU())
}

// LoadProfile reads a profile. An empty path selects the default path.
func LoadProfile(path string) (*CalibrationProfile, error) {
	if path == "" {
		path = GetDefaultProfilePath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile CalibrationProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile writes p as indented JSON. An empty path selects the default
// path.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if path == "" {
		path = GetDefaultProfilePath()
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// IsValid reports whether p was produced by this profile version on hardware
// matching the current host.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63) &&
		p.OptimalParallelThreshold >= Sequential
}

// IsStale reports whether p is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

func (p *CalibrationProfile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	return fmt.Sprintf("CalibrationProfile{CPU: %s, Strategy: %s, Parallel: %s, Calibrated: %s}",
		p.CPUModel, p.Strategy, thresholdLabel(p.OptimalParallelThreshold), p.CalibratedAt.Format(time.RFC3339))
}

// LoadOrCreateProfile returns the stored profile and true, or a fresh
// profile and false when none exists or it does not match this host.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	profile, err := LoadProfile(path)
	if err != nil || !profile.IsValid() {
		return NewProfile(), false
	}
	return profile, true
}

// ProfileExists reports whether a profile file exists at path.
func ProfileExists(path string) bool {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	_, err := os.Stat(path)
	return err == nil
}
