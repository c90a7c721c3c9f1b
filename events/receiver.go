package events

import "github.com/iw2rmb/editable/dom"

// Handler is a receiver method invoked with the runtime event followed by
// the extra arguments supplied at bind time.
type Handler func(e *dom.Event, args ...any)

// Receiver resolves method names to handlers.
type Receiver interface {
	Method(name string) (Handler, bool)
}

// Methods is a Receiver backed by a map.
type Methods map[string]Handler

func (m Methods) Method(name string) (Handler, bool) {
	h, ok := m[name]
	return h, ok && h != nil
}
