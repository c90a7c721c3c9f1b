// Package editable implements an embeddable rich-text editing widget.
//
// An Editable toggles a host element's editable state, records content
// snapshots in a bounded undo/redo history as the user edits, and
// re-broadcasts "enable", "disable", "change" and "state" notifications to
// listeners such as a toolbar mirroring command state.
//
// The host element is supplied through the dom.Host interface; package
// dom/memdom provides an in-memory implementation and package editor a
// Bubble Tea terminal front end.
package editable
