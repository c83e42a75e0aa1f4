package orchestration

import (
	"testing"

	"github.com/agbru/fftmul/internal/config"
	"github.com/agbru/fftmul/internal/multiply"
)

func TestGetCalculatorsToRun(t *testing.T) {
	t.Parallel()
	factory := multiply.NewDefaultFactory()

	t.Run("Single algorithm returns one multiplier", func(t *testing.T) {
		t.Parallel()
		got := GetCalculatorsToRun(config.AppConfig{Algo: multiply.NameFFTRecursive}, factory)
		if len(got) != 1 {
			t.Fatalf("expected 1 multiplier, got %d", len(got))
		}
		if got[0].Name() != "FFT (recursive)" {
			t.Errorf("unexpected name %q", got[0].Name())
		}
	})

	t.Run("All returns every registered multiplier in sorted order", func(t *testing.T) {
		t.Parallel()
		got := GetCalculatorsToRun(config.AppConfig{Algo: config.AllAlgorithms}, factory)
		if len(got) != len(factory.List()) {
			t.Fatalf("expected %d multipliers, got %d", len(factory.List()), len(got))
		}
		want, _ := factory.Get(factory.List()[0])
		if got[0] != want {
			t.Error("first multiplier does not follow the sorted registry order")
		}
	})

	t.Run("Unknown algorithm returns nil", func(t *testing.T) {
		t.Parallel()
		if got := GetCalculatorsToRun(config.AppConfig{Algo: "karatsuba"}, factory); got != nil {
			t.Errorf("expected nil, got %d multipliers", len(got))
		}
	})
}
