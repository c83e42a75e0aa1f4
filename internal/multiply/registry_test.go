package multiply

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/agbru/fftmul/internal/progress"
)

func TestDefaultFactoryList(t *testing.T) {
	t.Parallel()
	got := NewDefaultFactory().List()
	want := []string{NameBigInt, NameFFTIterative, NameFFTRecursive, NameSchoolbook}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestDefaultFactoryGetCaches(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()

	m1, err := f.Get(NameSchoolbook)
	if err != nil {
		t.Fatal(err)
	}
	m2, _ := f.Get(NameSchoolbook)
	if m1 != m2 {
		t.Error("Get should return the cached instance")
	}

	m3, err := f.Create(NameSchoolbook)
	if err != nil {
		t.Fatal(err)
	}
	if m3 == m1 {
		t.Error("Create should return a fresh instance")
	}
}

func TestDefaultFactoryUnknown(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()
	if _, err := f.Get("karatsuba"); err == nil {
		t.Error("Get of unknown name should fail")
	}
	if _, err := f.Create("karatsuba"); err == nil {
		t.Error("Create of unknown name should fail")
	}
	if f.Has("karatsuba") {
		t.Error("Has reported an unknown name")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustGet of unknown name should panic")
		}
	}()
	f.MustGet("karatsuba")
}

type constantCore struct{ value string }

func (c constantCore) Name() string { return "constant" }

func (c constantCore) MultiplyCore(context.Context, progress.ProgressCallback, string, string, Options) (string, error) {
	return c.value, nil
}

func TestDefaultFactoryRegisterReplaces(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()

	if err := f.Register("", func() coreMultiplier { return constantCore{} }); err == nil {
		t.Error("empty name should be rejected")
	}
	if err := f.Register("x", nil); err == nil {
		t.Error("nil creator should be rejected")
	}

	_ = f.Register("const", func() coreMultiplier { return constantCore{"1"} })
	m, _ := f.Get("const")
	if got, _ := m.Multiply(context.Background(), "2", "3", Options{}); got != "1" {
		t.Errorf("got %q, want 1", got)
	}

	_ = f.Register("const", func() coreMultiplier { return constantCore{"2"} })
	m, _ = f.Get("const")
	if got, _ := m.Multiply(context.Background(), "2", "3", Options{}); got != "2" {
		t.Errorf("after replace got %q, want 2", got)
	}
	if len(f.GetAll()) != 5 {
		t.Errorf("GetAll() has %d entries, want 5", len(f.GetAll()))
	}
}

func TestDefaultFactoryConcurrentGet(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()
	var wg sync.WaitGroup
	results := make([]Multiplier, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = f.Get(NameFFTIterative)
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent Get returned different instances")
		}
	}
}

func TestGlobalFactory(t *testing.T) {
	t.Parallel()
	if !GlobalFactory().Has(DefaultMultiplier) {
		t.Errorf("global factory is missing %q", DefaultMultiplier)
	}
}
