// Package editor provides a Bubble Tea component that hosts an editable
// widget over an in-memory markup element.
//
// The component turns key presses into host events (input, paste, keyup,
// click, focus) on the element, so the widget records history and emits
// notifications exactly as it would for a browser host. A toolbar mirrors
// command state from "state" notifications and a status line summarizes
// "change" notifications.
package editor
