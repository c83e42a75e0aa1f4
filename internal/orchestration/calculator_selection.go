package orchestration

import (
	"github.com/agbru/fftmul/internal/config"
	"github.com/agbru/fftmul/internal/multiply"
)

// GetCalculatorsToRun returns the multipliers selected by cfg.Algo: every
// registered multiplier in sorted name order for "all", otherwise the single
// named one. An unknown name yields nil.
func GetCalculatorsToRun(cfg config.AppConfig, factory multiply.MultiplierFactory) []multiply.Multiplier {
	if cfg.Algo == config.AllAlgorithms {
		keys := factory.List()
		multipliers := make([]multiply.Multiplier, 0, len(keys))
		for _, k := range keys {
			if m, err := factory.Get(k); err == nil {
				multipliers = append(multipliers, m)
			}
		}
		return multipliers
	}
	if m, err := factory.Get(cfg.Algo); err == nil {
		return []multiply.Multiplier{m}
	}
	return nil
}
