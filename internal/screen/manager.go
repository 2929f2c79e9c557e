package screen

import (
	"fmt"
	"sync"
)

// Logger defines the logging interface used by the Manager.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Manager owns the panel's active screen and drives lifecycle transitions.
//
// It guarantees:
//   - At most one screen is active at any instant.
//   - A screen is never active before its Init succeeded, and receives no
//     callbacks after Destroy until Init runs again.
//   - Switches are atomic with respect to delivery: DispatchMessage and
//     Tick never observe a half-completed switch, because all three entry
//     points serialise on one mutex.
//
// Visual subtrees are created lazily on first activation. Whether a subtree
// is torn down when switching away is a deployment policy; see
// SetDestroyOnDeactivate.
type Manager struct {
	registry *Registry
	logger   Logger

	mu     sync.Mutex
	active string            // "" = no active screen
	roots  map[string]Object // resident subtrees by screen ID

	// destroyOnDeactivate tears down the outgoing screen's subtree on every
	// switch. Frees memory on constrained panels at the cost of re-running
	// Init on every return visit.
	destroyOnDeactivate bool

	// halted is set after an Init contract violation. The manager refuses
	// further switches; the caller is expected to escalate.
	halted bool
}

// NewManager creates a lifecycle manager over the given registry.
// No screen is active until the first successful SwitchTo.
func NewManager(registry *Registry) *Manager {
	return &Manager{
		registry: registry,
		roots:    make(map[string]Object),
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the manager.
func (m *Manager) SetLogger(logger Logger) {
	m.logger = logger
}

// SetDestroyOnDeactivate selects the subtree retention policy.
//
// When true, the outgoing screen's Destroy runs on every switch
// (memory-frugal). When false (the default), subtrees stay resident until
// Shutdown and return visits skip Init.
func (m *Manager) SetDestroyOnDeactivate(destroy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyOnDeactivate = destroy
}

// SwitchTo makes the screen registered under id the active screen.
//
// The transition sequence is:
//  1. Lookup; ErrScreenNotFound leaves all state unchanged.
//  2. Switching to the already-active screen is a no-op (idempotent).
//  3. The outgoing screen's OnDeactivate runs, then its Destroy when the
//     destroy-on-deactivate policy is set.
//  4. The target's Init runs if its subtree does not yet exist. An Init
//     that errors or returns a nil root violates the screen contract:
//     SwitchTo returns ErrScreenContract, no screen is left active, and
//     the manager refuses further switches (ErrManagerHalted). Callers
//     must treat this as fatal.
//  5. The target's OnActivate runs and it becomes the active screen.
//
// No message or tick is delivered to either screen while the sequence is
// in progress.
func (m *Manager) SwitchTo(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.halted {
		return ErrManagerHalted
	}

	target, err := m.registry.Lookup(id)
	if err != nil {
		return err
	}

	if m.active == id {
		m.logger.Debug("screen already active", "screen", id)
		return nil
	}

	// Deactivate the outgoing screen before touching the target.
	if m.active != "" {
		m.deactivateLocked()
	}

	root, ok := m.roots[id]
	if !ok {
		root, err = target.Init()
		if err != nil {
			m.halted = true
			m.logger.Error("screen init failed", "screen", id, "error", err)
			return fmt.Errorf("%w: %s init: %w", ErrScreenContract, id, err)
		}
		if root == nil {
			m.halted = true
			m.logger.Error("screen init returned nil root", "screen", id)
			return fmt.Errorf("%w: %s init returned nil root object", ErrScreenContract, id)
		}
		m.roots[id] = root
		m.logger.Debug("screen subtree created", "screen", id)
	}

	if target.OnActivate != nil {
		target.OnActivate()
	}
	m.active = id
	m.logger.Info("screen activated", "screen", id)
	return nil
}

// deactivateLocked runs the outgoing screen's deactivation hooks.
// Caller must hold m.mu and have verified m.active is non-empty.
func (m *Manager) deactivateLocked() {
	outgoing, err := m.registry.Lookup(m.active)
	if err != nil {
		// Registry entries are never removed, so this cannot happen in
		// normal operation; clear the stale reference and carry on.
		m.logger.Warn("active screen missing from registry", "screen", m.active)
		m.active = ""
		return
	}

	if outgoing.OnDeactivate != nil {
		outgoing.OnDeactivate()
	}
	if m.destroyOnDeactivate {
		m.destroyLocked(outgoing)
	}
	m.logger.Debug("screen deactivated", "screen", outgoing.ID)
	m.active = ""
}

// destroyLocked tears down a screen's resident subtree, if any.
// Caller must hold m.mu.
func (m *Manager) destroyLocked(s *Screen) {
	root, ok := m.roots[s.ID]
	if !ok {
		return
	}
	s.Destroy(root)
	delete(m.roots, s.ID)
	m.logger.Debug("screen subtree destroyed", "screen", s.ID)
}

// DispatchMessage forwards a bus message to the active screen.
//
// With no active screen, or an active screen without an OnMessage hook,
// this is a safe no-op. Topic and payload are passed through verbatim; the
// manager does no filtering.
func (m *Manager) DispatchMessage(topic string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == "" {
		return
	}
	s, err := m.registry.Lookup(m.active)
	if err != nil || s.OnMessage == nil {
		return
	}
	s.OnMessage(topic, payload)
}

// Tick invokes the active screen's periodic update hook.
//
// With no active screen, or an active screen without an OnUpdate hook,
// this is a safe no-op. Called at a fixed cadence by the panel runtime.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == "" {
		return
	}
	s, err := m.registry.Lookup(m.active)
	if err != nil || s.OnUpdate == nil {
		return
	}
	s.OnUpdate()
}

// Active returns the active screen's ID. ok is false when no screen is
// active (before the first switch, or after a contract violation).
func (m *Manager) Active() (id string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active, m.active != ""
}

// Root returns the resident root object for a screen, nil if its subtree
// does not currently exist. Diagnostic use only; ownership stays with the
// UI toolkit.
func (m *Manager) Root(id string) Object {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roots[id]
}

// Shutdown deactivates the active screen and destroys every resident
// subtree, in registration order. Safe to call once at process exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != "" {
		m.deactivateLocked()
	}

	for id := range m.registry.All() {
		s, err := m.registry.Lookup(id)
		if err != nil {
			continue
		}
		m.destroyLocked(s)
	}
	m.logger.Info("screen manager shut down")
}
