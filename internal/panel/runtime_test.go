package panel

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-panel/internal/screen"
)

// fakeBus is an in-memory Bus implementation for testing.
type fakeBus struct {
	mu       sync.Mutex
	handlers map[string]mqtt.MessageHandler
	// published records every publish as topic → payloads in order.
	published map[string][][]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		handlers:  make(map[string]mqtt.MessageHandler),
		published: make(map[string][][]byte),
	}
}

func (b *fakeBus) Subscribe(topic string, _ byte, handler mqtt.MessageHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = handler
	return nil
}

func (b *fakeBus) Unsubscribe(topic string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, topic)
	return nil
}

func (b *fakeBus) Publish(topic string, payload []byte, _ byte, _ bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published[topic] = append(b.published[topic], payload)
	return nil
}

func (b *fakeBus) PublishRetained(topic string, payload []byte) error {
	return b.Publish(topic, payload, 1, true)
}

// deliver simulates an inbound message from the broker.
func (b *fakeBus) deliver(t *testing.T, topic string, payload []byte) error {
	t.Helper()
	b.mu.Lock()
	handler, ok := b.handlers[topic]
	b.mu.Unlock()
	if !ok {
		t.Fatalf("no handler subscribed on %s", topic)
	}
	return handler(topic, payload)
}

func (b *fakeBus) lastPublished(topic string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.published[topic]
	if len(msgs) == 0 {
		return nil, false
	}
	return msgs[len(msgs)-1], true
}

// testRuntime builds a runtime over screens home and settings.
func testRuntime(t *testing.T, cfg config.PanelConfig) (*Runtime, *fakeBus, *screen.Manager) {
	t.Helper()

	reg := screen.NewRegistry()
	for _, id := range []string{"home", "settings"} {
		s := &screen.Screen{
			ID:      id,
			Init:    func() (screen.Object, error) { return struct{}{}, nil },
			Destroy: func(screen.Object) {},
		}
		if err := reg.Register(s); err != nil {
			t.Fatalf("Register(%s) error = %v", id, err)
		}
	}

	mgr := screen.NewManager(reg)
	bus := newFakeBus()
	rt := NewRuntime(cfg, bus, mgr)
	return rt, bus, mgr
}

func testPanelConfig() config.PanelConfig {
	return config.PanelConfig{
		ID:                 "panel-test",
		Name:               "Test Panel",
		DefaultScreen:      "home",
		TickIntervalMS:     1000,
		HeartbeatIntervalS: 30,
	}
}

func TestStart_ActivatesDefaultScreen(t *testing.T) {
	rt, bus, mgr := testRuntime(t, testPanelConfig())

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	active, ok := mgr.Active()
	if !ok || active != "home" {
		t.Errorf("Active() = %q, %v, want home, true", active, ok)
	}

	// The switch must be reported retained on screen/state.
	payload, ok := bus.lastPublished("graylogic/ui/panel-test/screen/state")
	if !ok {
		t.Fatal("no screen state published")
	}
	var state screenState
	if err := json.Unmarshal(payload, &state); err != nil {
		t.Fatalf("screen state payload invalid JSON: %v", err)
	}
	if state.Screen != "home" || state.PanelID != "panel-test" {
		t.Errorf("screen state = %+v, want screen=home panel_id=panel-test", state)
	}
	if state.SessionID != rt.SessionID() {
		t.Errorf("session_id = %q, want %q", state.SessionID, rt.SessionID())
	}
}

func TestStart_NoDefaultScreen(t *testing.T) {
	cfg := testPanelConfig()
	cfg.DefaultScreen = ""
	rt, _, mgr := testRuntime(t, cfg)

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	// Panel waits for a navigation command.
	if _, ok := mgr.Active(); ok {
		t.Error("Active() ok = true, want no active screen")
	}
}

func TestNavigation_SwitchesScreen(t *testing.T) {
	rt, bus, mgr := testRuntime(t, testPanelConfig())

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	if err := bus.deliver(t, "graylogic/ui/panel-test/screen/set", []byte("settings\n")); err != nil {
		t.Fatalf("navigation handler error = %v", err)
	}

	active, ok := mgr.Active()
	if !ok || active != "settings" {
		t.Errorf("Active() = %q, %v, want settings, true", active, ok)
	}
}

func TestNavigation_UnknownScreen(t *testing.T) {
	rt, bus, mgr := testRuntime(t, testPanelConfig())

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	err := bus.deliver(t, "graylogic/ui/panel-test/screen/set", []byte("nonexistent"))
	if !errors.Is(err, screen.ErrScreenNotFound) {
		t.Errorf("navigation handler error = %v, want ErrScreenNotFound", err)
	}

	// Recoverable: the previous screen stays active.
	active, ok := mgr.Active()
	if !ok || active != "home" {
		t.Errorf("Active() = %q, %v, want home, true", active, ok)
	}
}

func TestNavigation_EmptyPayload(t *testing.T) {
	rt, bus, _ := testRuntime(t, testPanelConfig())

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	if err := bus.deliver(t, "graylogic/ui/panel-test/screen/set", []byte("  ")); err == nil {
		t.Error("navigation handler = nil error for empty payload, want error")
	}
}

func TestFatal_ContractViolation(t *testing.T) {
	reg := screen.NewRegistry()
	broken := &screen.Screen{
		ID:      "broken",
		Init:    func() (screen.Object, error) { return nil, nil },
		Destroy: func(screen.Object) {},
	}
	if err := reg.Register(broken); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	cfg := testPanelConfig()
	cfg.DefaultScreen = ""
	bus := newFakeBus()
	rt := NewRuntime(cfg, bus, screen.NewManager(reg))

	var fatalErr error
	rt.SetOnFatal(func(err error) { fatalErr = err })

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	err := bus.deliver(t, "graylogic/ui/panel-test/screen/set", []byte("broken"))
	if !errors.Is(err, screen.ErrScreenContract) {
		t.Fatalf("navigation handler error = %v, want ErrScreenContract", err)
	}
	if !errors.Is(fatalErr, screen.ErrScreenContract) {
		t.Errorf("OnFatal received %v, want ErrScreenContract", fatalErr)
	}
}

func TestStop_Unsubscribes(t *testing.T) {
	rt, bus, mgr := testRuntime(t, testPanelConfig())

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	rt.Stop()

	bus.mu.Lock()
	_, subscribed := bus.handlers["graylogic/ui/panel-test/screen/set"]
	bus.mu.Unlock()
	if subscribed {
		t.Error("navigation subscription still present after Stop()")
	}

	if _, ok := mgr.Active(); ok {
		t.Error("Active() ok = true after Stop()")
	}

	// Stop is idempotent.
	rt.Stop()
}

func TestHeartbeatPayload(t *testing.T) {
	rt, bus, _ := testRuntime(t, testPanelConfig())

	if err := rt.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer rt.Stop()

	rt.publishHeartbeat()

	payload, ok := bus.lastPublished("graylogic/ui/panel-test/presence")
	if !ok {
		t.Fatal("no heartbeat published")
	}

	var hb heartbeat
	if err := json.Unmarshal(payload, &hb); err != nil {
		t.Fatalf("heartbeat payload invalid JSON: %v", err)
	}
	if hb.Status != "online" {
		t.Errorf("status = %q, want online", hb.Status)
	}
	if hb.Screen != "home" {
		t.Errorf("screen = %q, want home", hb.Screen)
	}
	if !strings.Contains(hb.Timestamp, "T") {
		t.Errorf("timestamp = %q, want RFC3339", hb.Timestamp)
	}
}
