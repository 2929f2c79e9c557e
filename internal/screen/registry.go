package screen

import (
	"fmt"
	"iter"
	"sync"
)

// Registry holds the panel's screens, indexed by identifier.
//
// Screens are registered once at startup and never removed; identifiers are
// static for the program's lifetime. Registration order is preserved and
// defines the default screen (the first one registered).
//
// All public methods are thread-safe.
type Registry struct {
	mu      sync.RWMutex
	screens map[string]*Screen
	order   []string // registration order
}

// NewRegistry creates an empty screen registry.
func NewRegistry() *Registry {
	return &Registry{
		screens: make(map[string]*Screen),
	}
}

// Register adds a screen to the registry.
//
// It validates the descriptor (non-empty ID, Init and Destroy present) and
// rejects duplicate identifiers. Registration has no side effect on visual
// state; Init runs lazily on first activation.
//
// Returns:
//   - error: ErrInvalidScreen or ErrDuplicateScreen, nil on success
func (r *Registry) Register(s *Screen) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidScreen)
	}
	if s.Init == nil {
		return fmt.Errorf("%w: %s has no Init", ErrInvalidScreen, s.ID)
	}
	if s.Destroy == nil {
		return fmt.Errorf("%w: %s has no Destroy", ErrInvalidScreen, s.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.screens[s.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScreen, s.ID)
	}

	r.screens[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

// Lookup returns the screen registered under id.
//
// Pure lookup, no side effects.
//
// Returns:
//   - *Screen: the descriptor
//   - error: ErrScreenNotFound if id is not registered
func (r *Registry) Lookup(id string) (*Screen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.screens[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScreenNotFound, id)
	}
	return s, nil
}

// All returns an iterator over registered screen IDs in registration order.
//
// The sequence is restartable and intended for diagnostic enumeration
// (status payloads, startup logging).
func (r *Registry) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.mu.RLock()
		ids := make([]string, len(r.order))
		copy(ids, r.order)
		r.mu.RUnlock()

		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// First returns the first-registered screen ID, the panel's default screen.
// ok is false when the registry is empty.
func (r *Registry) First() (id string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return "", false
	}
	return r.order[0], true
}

// Count returns the number of registered screens.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.screens)
}
