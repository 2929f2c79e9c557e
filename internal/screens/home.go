package screens

import (
	"strings"
	"sync"
	"time"

	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-panel/internal/screen"
)

// HomeID is the home screen's registry identifier.
const HomeID = "home"

// Home shows live device states for the panel's room.
//
// While active it subscribes to the canonical device state topics and to
// system alerts; messages are cached per device so the widget layer always
// renders the latest known state. When inactive it holds no subscriptions
// and receives no messages.
type Home struct {
	deps Deps

	mu     sync.Mutex
	states map[string][]byte // last payload per device ID
	clock  time.Time         // refreshed by OnUpdate
}

// NewHome creates the home screen around its collaborators.
func NewHome(deps Deps) *Home {
	return &Home{
		deps:   deps,
		states: make(map[string][]byte),
	}
}

// Screen returns the lifecycle descriptor for registration.
func (h *Home) Screen() *screen.Screen {
	return &screen.Screen{
		ID:           HomeID,
		Init:         h.init,
		Destroy:      h.destroy,
		OnActivate:   h.activate,
		OnDeactivate: h.deactivate,
		OnMessage:    h.message,
		OnUpdate:     h.update,
	}
}

func (h *Home) init() (screen.Object, error) {
	return h.deps.Toolkit.NewRoot(HomeID)
}

func (h *Home) destroy(root screen.Object) {
	h.deps.Toolkit.Release(root)

	// Cached states belong to the subtree's widgets; drop them with it.
	h.mu.Lock()
	h.states = make(map[string][]byte)
	h.mu.Unlock()
}

// activate subscribes the screen's topic interest.
// Subscription errors are tolerated: the bus restores subscriptions on
// reconnect, and a screen with no live data still renders its last cache.
func (h *Home) activate() {
	topics := mqtt.Topics{}
	forward := func(topic string, payload []byte) error {
		h.deps.Dispatch(topic, payload)
		return nil
	}
	_ = h.deps.Bus.Subscribe(topics.AllCoreDeviceStates(), 1, forward)
	_ = h.deps.Bus.Subscribe(topics.AllCoreAlerts(), 1, forward)
}

func (h *Home) deactivate() {
	topics := mqtt.Topics{}
	_ = h.deps.Bus.Unsubscribe(topics.AllCoreDeviceStates())
	_ = h.deps.Bus.Unsubscribe(topics.AllCoreAlerts())
}

// message caches device state payloads by device ID. Alert topics pass
// through untouched for now; the alert banner reads the cache by topic.
func (h *Home) message(topic string, payload []byte) {
	deviceID, ok := deviceIDFromStateTopic(topic)
	if !ok {
		return
	}

	h.mu.Lock()
	h.states[deviceID] = payload
	h.mu.Unlock()
}

// update refreshes the wall clock shown in the header.
func (h *Home) update() {
	h.mu.Lock()
	h.clock = time.Now()
	h.mu.Unlock()
}

// DeviceState returns the last cached payload for a device.
func (h *Home) DeviceState(deviceID string) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	payload, ok := h.states[deviceID]
	return payload, ok
}

// Clock returns the last tick-refreshed wall-clock value.
func (h *Home) Clock() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clock
}

// deviceIDFromStateTopic extracts the device ID from a canonical state
// topic (graylogic/core/device/{id}/state). ok is false for other topics.
func deviceIDFromStateTopic(topic string) (string, bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 5 || parts[0] != "graylogic" || parts[1] != "core" ||
		parts[2] != "device" || parts[4] != "state" {
		return "", false
	}
	if parts[3] == "" {
		return "", false
	}
	return parts[3], true
}
