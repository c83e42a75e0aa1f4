package multiply

// MultiplierFactory cannot be generated with mockgen because Register takes
// the unexported coreMultiplier type. Use DefaultFactory in tests.

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/fftmul/internal/spectral"
)

// MultiplierFactory creates and caches Multiplier instances by name.
type MultiplierFactory interface {
	// Create returns a fresh Multiplier registered under name.
	Create(name string) (Multiplier, error)

	// Get returns the cached Multiplier registered under name.
	Get(name string) (Multiplier, error)

	// List returns the sorted registered names.
	List() []string

	// Register adds or replaces the creator for name.
	Register(name string, creator func() coreMultiplier) error

	// GetAll returns every registered Multiplier keyed by name.
	GetAll() map[string]Multiplier
}

// DefaultFactory is the default implementation of MultiplierFactory. It is
// safe for concurrent use.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreMultiplier
	multipliers map[string]Multiplier
}

// NewDefaultFactory creates a factory with the standard multipliers
// registered:
//   - "fft-iterative": bit-reversal plus in-place butterfly passes
//   - "fft-recursive": divide and conquer over even and odd samples
//   - "schoolbook": exact quadratic digit multiplication
//   - "bigint": math/big reference
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreMultiplier),
		multipliers: make(map[string]Multiplier),
	}

	_ = f.Register(NameFFTIterative, func() coreMultiplier { return NewFFTMultiplier(spectral.StrategyIterative) })
	_ = f.Register(NameFFTRecursive, func() coreMultiplier { return NewFFTMultiplier(spectral.StrategyRecursive) })
	_ = f.Register(NameSchoolbook, func() coreMultiplier { return SchoolbookMultiplier{} })
	_ = f.Register(NameBigInt, func() coreMultiplier { return BigIntMultiplier{} })

	return f
}

// Register adds a multiplier creator. An existing entry under the same name
// is replaced and its cached instance dropped.
func (f *DefaultFactory) Register(name string, creator func() coreMultiplier) error {
	if name == "" {
		return fmt.Errorf("multiplier name cannot be empty")
	}
	if creator == nil {
		return fmt.Errorf("creator for multiplier %q cannot be nil", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.multipliers, name)
	return nil
}

// Create returns a new, uncached Multiplier.
func (f *DefaultFactory) Create(name string) (Multiplier, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown multiplier: %s", name)
	}
	return NewMultiplier(creator()), nil
}

// Get returns a Multiplier instance by name. Instances are cached.
//
// Parameters:
//   - name: The registry key of the multiplier.
//
// Returns:
//   - Multiplier: The cached instance.
//   - error: An error if the name is not registered.
func (f *DefaultFactory) Get(name string) (Multiplier, error) {
	f.mu.RLock()
	if m, exists := f.multipliers[name]; exists {
		f.mu.RUnlock()
		return m, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if m, exists := f.multipliers[name]; exists {
		return m, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown multiplier: %s", name)
	}
	m := NewMultiplier(creator())
	f.multipliers[name] = m
	return m, nil
}

// List returns the registered names in alphabetical order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll initializes every registered multiplier and returns a copy of the
// cache.
func (f *DefaultFactory) GetAll() map[string]Multiplier {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.multipliers[name]; !exists {
			f.multipliers[name] = NewMultiplier(creator())
		}
	}

	result := make(map[string]Multiplier, len(f.multipliers))
	for name, m := range f.multipliers {
		result[name] = m
	}
	return result
}

// MustGet is like Get but panics if name is not registered.
func (f *DefaultFactory) MustGet(name string) Multiplier {
	m, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("multiply: required multiplier not found: %s", name))
	}
	return m
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterMultiplier registers a multiplier in the global factory.
func RegisterMultiplier(name string, creator func() coreMultiplier) error {
	return globalFactory.Register(name, creator)
}
