// Package parallel provides the fork-join helpers shared by the transforms
// and the multiplication driver.
package parallel

import "sync"

// ErrorCollector keeps the first non-nil error reported by concurrent
// goroutines. The zero value is ready to use.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err unless an error was already recorded. Nil is ignored.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.once.Do(func() { c.err = err })
}

// Err returns the recorded error. Call it after every reporter has finished.
func (c *ErrorCollector) Err() error {
	return c.err
}

// Reset clears the collector. It must not race with SetError.
func (c *ErrorCollector) Reset() {
	c.once = sync.Once{}
	c.err = nil
}
