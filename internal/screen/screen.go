package screen

// Object is an opaque handle to a screen's root visual object.
//
// The concrete type is chosen by the deployment's UI toolkit (an LVGL
// object pointer on the firmware build, a widget tree in the simulator).
// The lifecycle manager stores and forwards the handle but never looks
// inside it; ownership of the underlying memory stays with the toolkit.
type Object any

// Screen describes one screen's lifecycle callbacks and identity.
//
// Init and Destroy are required and must pair: Destroy is only called on a
// subtree that a successful Init produced, and a destroyed screen receives
// no further callbacks until Init runs again.
//
// The remaining hooks are optional capabilities. A nil field means the
// screen has no interest in that event and the manager skips the call.
type Screen struct {
	// ID is the stable identifier for this screen, unique within a Registry.
	ID string

	// Init builds the screen's visual subtree and returns its root object.
	// Returning a nil Object (or an error) is a contract violation the
	// manager treats as fatal; see Manager.SwitchTo.
	Init func() (Object, error)

	// Destroy tears down the visual subtree previously built by Init.
	// The root handle Init returned is passed back for convenience.
	Destroy func(root Object)

	// OnActivate is called when the screen becomes active. This is where
	// the screen subscribes its topic interest with the message bus.
	OnActivate func()

	// OnDeactivate is called when the manager switches away. This is where
	// the screen unsubscribes from the bus.
	OnDeactivate func()

	// OnMessage receives bus messages while the screen is active. The
	// manager performs no topic filtering; the screen either subscribed
	// narrowly in OnActivate or filters here.
	OnMessage func(topic string, payload []byte)

	// OnUpdate is called on every scheduler tick while the screen is
	// active. It must not block; it is for lightweight housekeeping such
	// as refreshing a clock field.
	OnUpdate func()
}
