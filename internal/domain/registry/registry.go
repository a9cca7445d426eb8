// registry holds the process-wide, append-only sequence of numbers shared by every
// request. It lives as long as the process does and is never persisted.
package registry

import "sync"

// Registry is a shared ordered sequence of int32s.
//
// Readers run concurrently with each other; Append takes exclusive access only for the
// duration of the mutation. Every returned slice is a copy that callers may keep.
type Registry interface {

	// Snapshot returns a point-in-time copy of the whole sequence, empty (not nil)
	// when nothing has been appended yet
	Snapshot() []int32

	// Append adds a number to the end and returns the sequence as it stood right
	// after the append
	Append(value int32) []int32

	// Contains reports whether the number has been appended at least once
	Contains(value int32) bool
}

type rwMutexRegistry struct {
	// sync.RWMutex blocks new readers once a writer is waiting, so a steady stream of
	// Snapshots cannot starve Append
	mu      sync.RWMutex
	numbers []int32
}

// NewRegistry returns an empty Registry
func NewRegistry() Registry {
	return &rwMutexRegistry{
		numbers: make([]int32, 0),
	}
}

func (r *rwMutexRegistry) Snapshot() []int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyNumbers()
}

func (r *rwMutexRegistry) Append(value int32) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.numbers = append(r.numbers, value)
	return r.copyNumbers()
}

func (r *rwMutexRegistry) Contains(value int32) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.numbers {
		if n == value {
			return true
		}
	}
	return false
}

// must be called with the lock held
func (r *rwMutexRegistry) copyNumbers() []int32 {
	out := make([]int32, len(r.numbers))
	copy(out, r.numbers)
	return out
}
