package screens

import (
	"sync"
	"time"

	"github.com/nerrad567/gray-logic-panel/internal/screen"
)

// SettingsID is the settings screen's registry identifier.
const SettingsID = "settings"

// Settings shows static panel information and runtime counters.
//
// It has no bus interest: no activation hooks, no message handler. Only
// the periodic update runs while it is active, advancing the visible
// uptime counter.
type Settings struct {
	deps Deps

	mu       sync.Mutex
	shownAt  time.Time
	viewTime time.Duration
}

// NewSettings creates the settings screen around its collaborators.
func NewSettings(deps Deps) *Settings {
	return &Settings{deps: deps}
}

// Screen returns the lifecycle descriptor for registration.
func (s *Settings) Screen() *screen.Screen {
	return &screen.Screen{
		ID:         SettingsID,
		Init:       s.init,
		Destroy:    s.destroy,
		OnActivate: s.activate,
		OnUpdate:   s.update,
	}
}

func (s *Settings) init() (screen.Object, error) {
	return s.deps.Toolkit.NewRoot(SettingsID)
}

func (s *Settings) destroy(root screen.Object) {
	s.deps.Toolkit.Release(root)
}

func (s *Settings) activate() {
	s.mu.Lock()
	s.shownAt = time.Now()
	s.viewTime = 0
	s.mu.Unlock()
}

func (s *Settings) update() {
	s.mu.Lock()
	s.viewTime = time.Since(s.shownAt)
	s.mu.Unlock()
}

// ViewTime returns how long the screen has been on display since its last
// activation, as of the most recent tick.
func (s *Settings) ViewTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewTime
}
