// Package screen implements the panel's screen lifecycle model.
//
// This package manages:
//   - Screen descriptors bundling lifecycle hooks and the root visual handle
//   - A registry of screens, indexed by stable identifier
//   - The lifecycle manager that owns "which screen is active"
//
// # Architecture
//
// A screen is a bundle of callbacks around one page of the panel UI. The
// manager drives them through a strict sequence: Init builds the visual
// subtree, OnActivate subscribes the screen's topic interest with the bus,
// OnMessage and OnUpdate run only while the screen is active, OnDeactivate
// unsubscribes, Destroy tears the subtree down.
//
//	Init → OnActivate → { OnMessage | OnUpdate }* → OnDeactivate → Destroy
//
// Exactly one screen is active at any instant. Bus messages and ticks are
// routed to the active screen only; an inactive screen holds no
// subscriptions and receives no callbacks.
//
// # Ownership
//
// The root visual object returned by Init is owned by the UI toolkit. The
// manager records the handle for bookkeeping and hands it back to Destroy,
// but never constructs or frees the underlying visual memory itself.
//
// # Concurrency
//
// The paho MQTT client delivers messages on its own goroutines, so the
// manager serialises SwitchTo, DispatchMessage and Tick behind a single
// mutex. No hook ever observes a half-completed switch.
//
// # Usage
//
//	reg := screen.NewRegistry()
//	reg.Register(&screen.Screen{ID: "home", Init: ..., Destroy: ...})
//
//	mgr := screen.NewManager(reg)
//	mgr.SetLogger(log)
//	if err := mgr.SwitchTo("home"); err != nil {
//	    log.Error("switch failed", "error", err)
//	}
package screen
