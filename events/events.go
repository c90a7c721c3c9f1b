package events

import (
	"fmt"
	"sort"

	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/internal/log"
)

type binding struct {
	spec     Spec
	listener *dom.Listener
	capture  bool
}

// Events binds receiver methods to events on a target.
type Events struct {
	target  dom.EventTarget
	recv    Receiver
	matcher dom.Matcher
	capture bool

	bindings map[string]map[string]binding
}

// Option configures Events.
type Option func(*Events)

// WithMatcher sets the selector matcher used for delegated bindings.
// Without one, delegated bindings match nothing.
func WithMatcher(m dom.Matcher) Option {
	return func(e *Events) { e.matcher = m }
}

// WithCapture registers every listener for the capture phase.
func WithCapture(on bool) Option {
	return func(e *Events) { e.capture = on }
}

// New creates a binding manager for target dispatching to recv.
func New(target dom.EventTarget, recv Receiver, opts ...Option) (*Events, error) {
	if dom.IsNil(target) {
		return nil, fmt.Errorf("%w: element required", ErrInvalidArgument)
	}
	if recv == nil {
		return nil, fmt.Errorf("%w: receiver object required", ErrInvalidArgument)
	}
	e := &Events{
		target:   target,
		recv:     recv,
		bindings: make(map[string]map[string]binding),
	}
	if m, ok := target.(dom.Matcher); ok {
		e.matcher = m
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Bind subscribes method to the event described by spec and returns the
// registered listener. An empty method defaults to "on" + event name.
// Extra args are passed to the method after the runtime event.
//
// Binding a pair that is already bound replaces the previous listener.
func (e *Events) Bind(spec string, method string, args ...any) (*dom.Listener, error) {
	s := ParseSpec(spec)
	if s.Name == "" {
		return nil, ErrEmptyEvent
	}
	if method == "" {
		method = "on" + s.Name
	}
	h, ok := e.recv.Method(method)
	if !ok {
		return nil, fmt.Errorf("%w: %q for %q", ErrUnknownMethod, method, s.Name)
	}

	extra := append([]any(nil), args...)
	var fn dom.Handler
	if s.Delegated() {
		fn = e.delegate(s.Selector, func(ev *dom.Event) { h(ev, extra...) })
	} else {
		fn = func(ev *dom.Event) { h(ev, extra...) }
	}

	e.Unbind(s.Name, method)

	b := binding{
		spec:     s,
		listener: dom.NewListener(fn),
		capture:  e.capture || (s.Delegated() && nonBubbling[s.Name]),
	}
	e.target.AddEventListener(s.Name, b.listener, b.capture)

	methods := e.bindings[s.Name]
	if methods == nil {
		methods = make(map[string]binding)
		e.bindings[s.Name] = methods
	}
	methods[method] = b

	log.Debug(log.CatEvents, "bind", "event", s.Name, "method", method, "selector", s.Selector)
	return b.listener, nil
}

// delegate wraps fn so it only runs when the event target, or one of its
// ancestors below the bound element, matches selector.
func (e *Events) delegate(selector string, fn dom.Handler) dom.Handler {
	return func(ev *dom.Event) {
		if e.matcher == nil || !dom.Contains(e.target, ev.Target) {
			return
		}
		for n := ev.Target; n != nil && n != dom.Node(e.target); n = n.Parent() {
			if e.matcher.Matches(n, selector) {
				ev.DelegateTarget = n
				fn(ev)
				return
			}
		}
	}
}

// Unbind removes the binding of method to event. Absent bindings are ignored.
func (e *Events) Unbind(event, method string) {
	methods := e.bindings[event]
	b, ok := methods[method]
	if !ok {
		return
	}
	e.target.RemoveEventListener(event, b.listener, b.capture)
	delete(methods, method)
	if len(methods) == 0 {
		delete(e.bindings, event)
	}
	log.Debug(log.CatEvents, "unbind", "event", event, "method", method)
}

// UnbindAllOf removes every method bound to event.
func (e *Events) UnbindAllOf(event string) {
	for _, method := range sortedKeys(e.bindings[event]) {
		e.Unbind(event, method)
	}
}

// UnbindAll removes every binding.
func (e *Events) UnbindAll() {
	for _, event := range sortedKeys(e.bindings) {
		e.UnbindAllOf(event)
	}
}

// Bound reports whether method is bound to event.
func (e *Events) Bound(event, method string) bool {
	_, ok := e.bindings[event][method]
	return ok
}

// Len returns the number of live bindings.
func (e *Events) Len() int {
	n := 0
	for _, methods := range e.bindings {
		n += len(methods)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
