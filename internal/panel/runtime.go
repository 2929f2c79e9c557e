package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-panel/internal/screen"
)

// Bus is the subset of the MQTT client the runtime needs.
// Satisfied by *mqtt.Client; faked in tests.
type Bus interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	Unsubscribe(topic string) error
	Publish(topic string, payload []byte, qos byte, retained bool) error
	PublishRetained(topic string, payload []byte) error
}

// Logger defines the logging interface used by the Runtime.
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

// screenState is the payload published to the panel's screen/state topic.
type screenState struct {
	Screen    string `json:"screen"`
	PanelID   string `json:"panel_id"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// heartbeat is the payload published to the panel's presence topic.
type heartbeat struct {
	Status    string `json:"status"`
	PanelID   string `json:"panel_id"`
	SessionID string `json:"session_id"`
	Screen    string `json:"screen,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Runtime drives the screen lifecycle manager on behalf of the panel.
//
// It owns the tick and heartbeat loops and the navigation subscription.
// Start and Stop bracket the panel's operating life; both are safe to call
// exactly once.
type Runtime struct {
	cfg     config.PanelConfig
	bus     Bus
	manager *screen.Manager
	logger  Logger

	// sessionID identifies this boot of the panel in bus payloads.
	sessionID string

	onFatal    func(err error)
	callbackMu sync.RWMutex

	stop     chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// NewRuntime creates a panel runtime over the given bus and manager.
func NewRuntime(cfg config.PanelConfig, bus Bus, manager *screen.Manager) *Runtime {
	return &Runtime{
		cfg:       cfg,
		bus:       bus,
		manager:   manager,
		logger:    noopLogger{},
		sessionID: uuid.NewString(),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// SetLogger sets the logger for the runtime.
func (r *Runtime) SetLogger(logger Logger) {
	r.logger = logger
}

// SetOnFatal sets a callback invoked when the screen manager is poisoned by
// an init contract violation. The process should shut down in response.
func (r *Runtime) SetOnFatal(callback func(err error)) {
	r.callbackMu.Lock()
	r.onFatal = callback
	r.callbackMu.Unlock()
}

// SessionID returns the per-boot session identifier used in bus payloads.
func (r *Runtime) SessionID() string {
	return r.sessionID
}

// Start activates the default screen and begins serving the panel.
//
// It performs:
//  1. Subscription to the navigation topic (screen/set)
//  2. Activation of the default screen (config default_screen, falling
//     back to nothing if unset — the panel then waits for a bus command)
//  3. Launch of the tick/heartbeat loop
//
// Returns:
//   - error: If the navigation subscription or default activation fails
func (r *Runtime) Start() error {
	navTopic := mqtt.Topics{}.PanelScreenSet(r.cfg.ID)
	if err := r.bus.Subscribe(navTopic, 1, r.handleNavigate); err != nil {
		return fmt.Errorf("subscribing to navigation topic: %w", err)
	}
	r.logger.Info("navigation subscription active", "topic", navTopic)

	if r.cfg.DefaultScreen != "" {
		if err := r.switchTo(r.cfg.DefaultScreen); err != nil {
			return fmt.Errorf("activating default screen: %w", err)
		}
	}

	r.started = true
	go r.loop()
	return nil
}

// Stop halts the loops, drops the navigation subscription and tears down
// all screen subtrees.
func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
		if r.started {
			<-r.done
		}

		navTopic := mqtt.Topics{}.PanelScreenSet(r.cfg.ID)
		if err := r.bus.Unsubscribe(navTopic); err != nil {
			r.logger.Warn("unsubscribing navigation topic", "error", err)
		}

		r.manager.Shutdown()
		r.logger.Info("panel runtime stopped")
	})
}

// handleNavigate processes a navigation command from the bus.
// The payload is the target screen ID as plain text.
func (r *Runtime) handleNavigate(_ string, payload []byte) error {
	id := strings.TrimSpace(string(payload))
	if id == "" {
		return errors.New("empty screen ID in navigation command")
	}
	return r.switchTo(id)
}

// switchTo performs a switch and the follow-up bus reporting.
//
// Recoverable errors (unknown screen) are logged and returned; a contract
// violation additionally fires the OnFatal callback.
func (r *Runtime) switchTo(id string) error {
	err := r.manager.SwitchTo(id)
	if err == nil {
		r.publishScreenState(id)
		return nil
	}

	if errors.Is(err, screen.ErrScreenContract) || errors.Is(err, screen.ErrManagerHalted) {
		r.logger.Error("screen manager integrity failure", "screen", id, "error", err)
		r.callbackMu.RLock()
		callback := r.onFatal
		r.callbackMu.RUnlock()
		if callback != nil {
			callback(err)
		}
		return err
	}

	r.logger.Warn("screen switch rejected", "screen", id, "error", err)
	return err
}

// publishScreenState reports the active screen, retained, on the panel's
// screen/state topic.
func (r *Runtime) publishScreenState(id string) {
	payload, err := json.Marshal(screenState{
		Screen:    id,
		PanelID:   r.cfg.ID,
		SessionID: r.sessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		r.logger.Error("marshalling screen state", "error", err)
		return
	}

	topic := mqtt.Topics{}.PanelScreenState(r.cfg.ID)
	if err := r.bus.PublishRetained(topic, payload); err != nil {
		r.logger.Warn("publishing screen state", "error", err)
	}
}

// publishHeartbeat reports panel presence on the presence topic.
func (r *Runtime) publishHeartbeat() {
	active, _ := r.manager.Active()
	payload, err := json.Marshal(heartbeat{
		Status:    "online",
		PanelID:   r.cfg.ID,
		SessionID: r.sessionID,
		Screen:    active,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		r.logger.Error("marshalling heartbeat", "error", err)
		return
	}

	topic := mqtt.Topics{}.PanelPresence(r.cfg.ID)
	if err := r.bus.PublishRetained(topic, payload); err != nil {
		r.logger.Warn("publishing heartbeat", "error", err)
	}
}

// loop is the panel's scheduler: one goroutine multiplexing the screen
// tick and the presence heartbeat, so ticks and heartbeats never run
// concurrently with each other.
func (r *Runtime) loop() {
	defer close(r.done)

	tick := time.NewTicker(time.Duration(r.cfg.TickIntervalMS) * time.Millisecond)
	defer tick.Stop()

	beat := time.NewTicker(time.Duration(r.cfg.HeartbeatIntervalS) * time.Second)
	defer beat.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-tick.C:
			r.manager.Tick()
		case <-beat.C:
			r.publishHeartbeat()
		}
	}
}
