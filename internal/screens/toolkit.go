package screens

import (
	"github.com/nerrad567/gray-logic-panel/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-panel/internal/screen"
)

// Toolkit abstracts the UI toolkit that owns visual-object memory.
//
// Screens call NewRoot from their Init hook and Release from Destroy; no
// other component touches toolkit memory. The returned root is the opaque
// handle the lifecycle manager books but never dereferences.
type Toolkit interface {
	// NewRoot builds the root visual object for the named screen.
	NewRoot(name string) (screen.Object, error)

	// Release frees a root previously returned by NewRoot.
	Release(root screen.Object)
}

// Bus is the subscription surface screens use from their activation hooks.
// Satisfied by *mqtt.Client.
type Bus interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	Unsubscribe(topic string) error
}

// Deps bundles the collaborators injected into every builtin screen.
type Deps struct {
	Toolkit Toolkit
	Bus     Bus

	// Dispatch is the manager's inbound message entry point. Screen
	// subscriptions forward through it so only the active screen's
	// OnMessage ever runs.
	Dispatch func(topic string, payload []byte)
}

// RegisterBuiltin registers the builtin screens. Home goes first and
// becomes the panel's default screen.
func RegisterBuiltin(reg *screen.Registry, deps Deps) error {
	if err := reg.Register(NewHome(deps).Screen()); err != nil {
		return err
	}
	return reg.Register(NewSettings(deps).Screen())
}
