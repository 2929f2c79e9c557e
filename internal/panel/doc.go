// Package panel wires the screen lifecycle manager to the Gray Logic bus
// and drives it at a fixed cadence.
//
// This package manages:
//   - Navigation: subscribes to the panel's screen/set topic and switches
//     screens in response to bus commands
//   - Reporting: publishes the active screen (retained) and presence
//     heartbeats on the panel's UI namespace
//   - Scheduling: runs the periodic tick loop that feeds Manager.Tick
//
// # Architecture
//
//	broker ── screen/set ──▶ Runtime ──▶ Manager.SwitchTo
//	broker ◀─ screen/state ─ Runtime ◀── successful switch
//	ticker ───────────────▶ Runtime ──▶ Manager.Tick
//
// The runtime is the only component that calls the manager from its own
// goroutines; screens never call back into the manager from their hooks.
//
// # Fault policy
//
// A screen that violates the init contract poisons the manager. The runtime
// reports this through the OnFatal callback so the process can halt rather
// than keep serving a panel with an invalid active screen.
package panel
