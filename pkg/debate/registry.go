package debate

import (
	"context"
	"sync"
)

// Registry tracks live debate executions so external callers (the cancel
// endpoint, shutdown) can stop them cooperatively.
type Registry struct {
	mu     sync.Mutex
	active map[string]context.CancelCauseFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]context.CancelCauseFunc)}
}

// Register records a live execution. It fails with ErrAlreadyRunning when
// the debate already has one.
func (r *Registry) Register(debateID string, cancel context.CancelCauseFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.active[debateID]; exists {
		return ErrAlreadyRunning
	}
	r.active[debateID] = cancel
	return nil
}

// Unregister removes a finished execution.
func (r *Registry) Unregister(debateID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, debateID)
}

// Cancel signals a live execution. It reports whether one was found.
func (r *Registry) Cancel(debateID string) bool {
	r.mu.Lock()
	cancel, ok := r.active[debateID]
	r.mu.Unlock()
	if ok {
		cancel(ErrCancelled)
	}
	return ok
}

// CancelAll stops every live execution, used on shutdown.
func (r *Registry) CancelAll() {
	r.mu.Lock()
	cancels := make([]context.CancelCauseFunc, 0, len(r.active))
	for _, cancel := range r.active {
		cancels = append(cancels, cancel)
	}
	r.mu.Unlock()
	for _, cancel := range cancels {
		cancel(ErrCancelled)
	}
}

// ActiveCount returns the number of live executions.
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
