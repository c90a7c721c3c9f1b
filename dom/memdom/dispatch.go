package memdom

import (
	"slices"

	"github.com/iw2rmb/editable/dom"
)

// Events that run the capture and target phases only.
var nonBubbling = map[string]bool{
	"focus": true,
	"blur":  true,
}

func (e *Element) AddEventListener(name string, l *dom.Listener, capture bool) {
	if l == nil {
		return
	}
	for _, r := range e.listeners[name] {
		if r.l == l && r.capture == capture {
			return
		}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]registration)
	}
	e.listeners[name] = append(e.listeners[name], registration{l: l, capture: capture})
}

func (e *Element) RemoveEventListener(name string, l *dom.Listener, capture bool) {
	list := e.listeners[name]
	for i, r := range list {
		if r.l == l && r.capture == capture {
			e.listeners[name] = slices.Delete(slices.Clone(list), i, i+1)
			if len(e.listeners[name]) == 0 {
				delete(e.listeners, name)
			}
			return
		}
	}
}

// ListenerCount returns the number of listeners registered on e.
func (e *Element) ListenerCount() int {
	n := 0
	for _, list := range e.listeners {
		n += len(list)
	}
	return n
}

// Dispatch delivers ev with e as its target: capture listeners from the
// root down, then the target's listeners, then bubble listeners back up.
func (e *Element) Dispatch(ev *dom.Event) *dom.Event {
	ev.Target = e

	var path []*Element // target first
	for n := dom.Node(e); n != nil; n = n.Parent() {
		path = append(path, n.(*Element))
	}

	for i := len(path) - 1; i > 0; i-- {
		if path[i].invoke(ev, func(r registration) bool { return r.capture }) {
			return ev
		}
	}
	if e.invoke(ev, func(registration) bool { return true }) {
		return ev
	}
	if nonBubbling[ev.Type] {
		return ev
	}
	for _, el := range path[1:] {
		if el.invoke(ev, func(r registration) bool { return !r.capture }) {
			return ev
		}
	}
	return ev
}

// Fire dispatches a new event of type typ on e.
func (e *Element) Fire(typ string) *dom.Event {
	return e.Dispatch(dom.NewEvent(typ, e))
}

// invoke runs the listeners selected by keep and reports whether
// propagation was stopped.
func (e *Element) invoke(ev *dom.Event, keep func(registration) bool) bool {
	list := slices.Clone(e.listeners[ev.Type])
	ev.CurrentTarget = e
	for _, r := range list {
		if keep(r) {
			r.l.Handle(ev)
		}
	}
	return ev.PropagationStopped()
}
