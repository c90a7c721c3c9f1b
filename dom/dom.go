package dom

import (
	"reflect"
	"time"
)

// Node is a point in the host tree used for delegated event matching.
type Node interface {
	Parent() Node
}

// Matcher reports whether node matches a selector.
type Matcher interface {
	Matches(node Node, selector string) bool
}

// Handler handles a dispatched event.
type Handler func(e *Event)

// Listener wraps a Handler so registrations can be removed by identity.
type Listener struct {
	Handle Handler
}

func NewListener(h Handler) *Listener { return &Listener{Handle: h} }

// EventTarget registers and removes listeners for named events.
type EventTarget interface {
	Node
	AddEventListener(name string, l *Listener, capture bool)
	RemoveEventListener(name string, l *Listener, capture bool)
}

// Host is the element made editable by the widget.
type Host interface {
	EventTarget

	SetEditable(on bool)
	IsEditable() bool

	// Content returns the serialized markup of the element's children.
	Content() string
	SetContent(markup string)

	ExecCommand(name, value string) bool
	QueryCommandState(name string) bool

	// CaretOffset returns the caret position as a rune offset into the
	// element's text content. ok is false when the caret is outside it.
	CaretOffset() (off int, ok bool)
	SetCaretOffset(off int)
}

// Event is a dispatched host event.
type Event struct {
	Type string

	// Target is the node the event was dispatched on.
	Target Node
	// CurrentTarget is the node whose listener is running.
	CurrentTarget Node
	// DelegateTarget is the node that matched a delegated binding's selector.
	DelegateTarget Node

	Key  string // keyboard events
	Data string // input and paste payload

	Timestamp time.Time

	stopped bool
}

func NewEvent(typ string, target Node) *Event {
	return &Event{Type: typ, Target: target, Timestamp: time.Now()}
}

// StopPropagation prevents the event from reaching further nodes.
func (e *Event) StopPropagation() { e.stopped = true }

func (e *Event) PropagationStopped() bool { return e.stopped }

// Contains reports whether node is root or one of its descendants.
func Contains(root, node Node) bool {
	for n := node; n != nil; n = n.Parent() {
		if n == root {
			return true
		}
	}
	return false
}

// IsNil reports whether v is nil or an interface holding a nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
