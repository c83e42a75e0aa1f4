package parallel

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorCollectorContention starts many reporters at once and checks that
// exactly one of their errors is kept.
func TestErrorCollectorContention(t *testing.T) {
	const reporters = 500
	for round := range 20 {
		var ec ErrorCollector
		var wg sync.WaitGroup
		start := make(chan struct{})

		wg.Add(reporters)
		for id := range reporters {
			go func() {
				defer wg.Done()
				<-start
				ec.SetError(fmt.Errorf("operand %d: invalid digit", id))
			}()
		}
		close(start)
		wg.Wait()

		err := ec.Err()
		require.Error(t, err, "round %d", round)
		assert.True(t, strings.HasPrefix(err.Error(), "operand "), "round %d: %v", round, err)
	}
}

func TestErrorCollectorIgnoresNil(t *testing.T) {
	var ec ErrorCollector
	var wg sync.WaitGroup
	sentinel := errors.New("encode failed")

	wg.Add(101)
	for range 100 {
		go func() {
			defer wg.Done()
			ec.SetError(nil)
		}()
	}
	go func() {
		defer wg.Done()
		ec.SetError(sentinel)
	}()
	wg.Wait()

	assert.ErrorIs(t, ec.Err(), sentinel)
}

func TestErrorCollectorReset(t *testing.T) {
	var ec ErrorCollector
	first := errors.New("first")
	ec.SetError(first)
	ec.SetError(errors.New("second"))
	require.ErrorIs(t, ec.Err(), first)

	ec.Reset()
	assert.NoError(t, ec.Err())

	third := errors.New("third")
	ec.SetError(third)
	assert.ErrorIs(t, ec.Err(), third)
}
