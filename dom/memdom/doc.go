// Package memdom is an in-memory markup host for the editable widget.
//
// Elements wrap golang.org/x/net/html nodes. Content is serialized and
// parsed as HTML fragments, selectors are matched with cascadia, and events
// are dispatched through a capture and bubble phase like a browser. The
// caret is a rune offset into an element's text content.
package memdom
