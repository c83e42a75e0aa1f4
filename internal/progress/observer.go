package progress

import "sync"

// ─────────────────────────────────────────────────────────────────────────────
// Observer Pattern Interfaces
// ─────────────────────────────────────────────────────────────────────────────

// ProgressObserver receives notifications when multiplication progress changes.
type ProgressObserver interface {
	// Update is called when progress changes.
	//
	// Parameters:
	//   - calcIndex: The multiplier instance identifier.
	//   - progress: The normalized progress value (0.0 to 1.0).
	Update(calcIndex int, progress float64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Progress Subject (Observable)
// ─────────────────────────────────────────────────────────────────────────────

// ProgressSubject manages observer registration and notification.
//
// ProgressSubject is safe for concurrent use.
type ProgressSubject struct {
	observers []ProgressObserver
	mu        sync.RWMutex
}

// NewProgressSubject creates a new subject for managing progress observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{
		observers: make([]ProgressObserver, 0),
	}
}

// Register adds an observer to receive progress updates. Observers are
// notified in registration order. A nil observer is ignored.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes an observer. Unknown observers are ignored.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends a progress update to all registered observers synchronously.
func (s *ProgressSubject) Notify(calcIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, observer := range s.observers {
		observer.Update(calcIndex, progress)
	}
}

// ObserverCount returns the number of registered observers.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Freeze snapshots the current observers and returns a callback bound to
// calcIndex. Observers registered after the call are not notified by the
// returned callback, and invoking it takes no lock.
//
// Parameters:
//   - calcIndex: The multiplier instance identifier to include in notifications.
//
// Returns:
//   - ProgressCallback: A callback notifying the snapshot.
func (s *ProgressSubject) Freeze(calcIndex int) ProgressCallback {
	s.mu.RLock()
	snapshot := make([]ProgressObserver, len(s.observers))
	copy(snapshot, s.observers)
	s.mu.RUnlock()

	return func(progress float64) {
		for _, o := range snapshot {
			o.Update(calcIndex, progress)
		}
	}
}
