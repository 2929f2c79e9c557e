// Package screens provides the panel's builtin screens.
//
// Each screen is expressed as a screen.Screen descriptor whose hooks close
// over the screen's private state. The UI toolkit is injected through the
// Toolkit interface so the same screens run against LVGL on hardware and a
// stub toolkit in tests.
//
// Builtin set:
//   - home: live device states, subscribes to the canonical state topics
//     while active
//   - settings: static panel information, tick-driven only
//
// Registration order matters: home is registered first and is therefore
// the panel's default screen.
package screens
