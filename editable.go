package editable

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/emitter"
	"github.com/iw2rmb/editable/events"
	"github.com/iw2rmb/editable/history"
	"github.com/iw2rmb/editable/internal/log"
)

// Notification names emitted by an Editable.
const (
	EventEnable  = "enable"
	EventDisable = "disable"
	EventChange  = "change"
	EventState   = "state"
)

// Receiver method names the host events are bound to.
const (
	MethodChange      = "onchange"
	MethodStateChange = "onstatechange"
)

// ErrInvalidArgument is returned by New when the host is missing.
var ErrInvalidArgument = events.ErrInvalidArgument

// hostBindings are installed by Enable, in order.
var hostBindings = []struct{ event, method string }{
	{"keyup", MethodStateChange},
	{"click", MethodStateChange},
	{"focus", MethodStateChange},
	{"paste", MethodChange},
	{"input", MethodChange},
}

// Editable is an editing widget bound to one host element.
//
// It is not safe for concurrent use: all methods are expected to run on the
// goroutine dispatching host events.
type Editable struct {
	id      string
	host    dom.Host
	hist    *history.History
	events  *events.Events
	emitter *emitter.Emitter[*dom.Event]
	enabled bool
}

// New creates a disabled widget for host.
func New(host dom.Host, opts ...Option) (*Editable, error) {
	if dom.IsNil(host) {
		return nil, fmt.Errorf("%w: expects an element", ErrInvalidArgument)
	}

	o := options{historyLimit: DefaultHistoryLimit}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Editable{
		id:      uuid.NewString(),
		host:    host,
		hist:    history.New(o.initial...),
		emitter: emitter.New[*dom.Event](),
	}
	e.hist.SetLimit(o.historyLimit)

	var evOpts []events.Option
	if o.matcher != nil {
		evOpts = append(evOpts, events.WithMatcher(o.matcher))
	}
	ev, err := events.New(host, e.methods(), evOpts...)
	if err != nil {
		return nil, err
	}
	e.events = ev

	log.Debug(log.CatWidget, "new", "id", e.id, "history", e.hist.Len(), "limit", e.hist.Limit())
	return e, nil
}

func (e *Editable) methods() events.Methods {
	return events.Methods{
		MethodChange:      func(ev *dom.Event, _ ...any) { e.OnChange(ev) },
		MethodStateChange: func(ev *dom.Event, _ ...any) { e.OnStateChange(ev) },
	}
}

// ID returns the widget's unique identifier.
func (e *Editable) ID() string { return e.id }

// Contents returns the host's current markup.
func (e *Editable) Contents() string { return e.host.Content() }

// Enabled reports whether the widget is currently listening to its host.
func (e *Editable) Enabled() bool { return e.enabled }

// Toggle disables an editable host and enables a non-editable one.
func (e *Editable) Toggle() *Editable {
	if e.host.IsEditable() {
		return e.Disable()
	}
	return e.Enable()
}

// Enable makes the host editable, binds its events and emits "enable".
// Enabling an enabled widget only restores the host flag.
func (e *Editable) Enable() *Editable {
	e.host.SetEditable(true)
	if e.enabled {
		return e
	}
	for _, b := range hostBindings {
		if _, err := e.events.Bind(b.event, b.method); err != nil {
			log.ErrorErr(log.CatWidget, "bind", err, "id", e.id, "event", b.event)
		}
	}
	e.enabled = true
	log.Debug(log.CatWidget, "enable", "id", e.id, "bindings", e.events.Len())
	e.emitter.Emit(EventEnable, nil)
	return e
}

// Disable makes the host non-editable, removes every binding and emits
// "disable". Disabling a disabled widget only clears the host's flag.
func (e *Editable) Disable() *Editable {
	e.host.SetEditable(false)
	if !e.enabled {
		return e
	}
	e.events.UnbindAll()
	e.enabled = false
	log.Debug(log.CatWidget, "disable", "id", e.id)
	e.emitter.Emit(EventDisable, nil)
	return e
}

// Undo restores the snapshot under the history cursor and steps back.
// Without history it does nothing and emits nothing.
func (e *Editable) Undo() *Editable {
	s, ok := e.hist.Prev()
	if !ok {
		log.Debug(log.CatHistory, "undo: no history", "id", e.id)
		return e
	}
	e.restore(s)
	log.Debug(log.CatHistory, "undo", "id", e.id, "cursor", e.hist.Cursor())
	e.emitter.Emit(EventState, nil)
	return e
}

// Redo steps the history cursor forward and restores that snapshot.
func (e *Editable) Redo() *Editable {
	s, ok := e.hist.Next()
	if !ok {
		log.Debug(log.CatHistory, "redo: no history", "id", e.id)
		return e
	}
	e.restore(s)
	log.Debug(log.CatHistory, "redo", "id", e.id, "cursor", e.hist.Cursor())
	e.emitter.Emit(EventState, nil)
	return e
}

func (e *Editable) restore(s history.Snapshot) {
	e.host.SetContent(s.Content())
	if off, ok := s.Caret(); ok {
		e.host.SetCaretOffset(off)
	}
}

// Execute runs a host command and emits "state".
func (e *Editable) Execute(cmd, value string) *Editable {
	if !e.host.ExecCommand(cmd, value) {
		log.Debug(log.CatWidget, "execute: unsupported", "id", e.id, "cmd", cmd)
	}
	return e.OnStateChange(nil)
}

// State answers "undo" and "redo" from the history; other queries go to the
// host's command state.
func (e *Editable) State(query string) bool {
	switch query {
	case "undo":
		return e.hist.CanUndo()
	case "redo":
		return e.hist.CanRedo()
	default:
		return e.host.QueryCommandState(query)
	}
}

// Selection returns the host caret offset.
func (e *Editable) Selection() (off int, ok bool) { return e.host.CaretOffset() }

// OnStateChange emits "state" with ev.
func (e *Editable) OnStateChange(ev *dom.Event) *Editable {
	e.emitter.Emit(EventState, ev)
	return e
}

// OnChange records the current contents in the history and emits "change"
// with ev.
func (e *Editable) OnChange(ev *dom.Event) *Editable {
	s := history.NewSnapshot(e.Contents())
	if off, ok := e.host.CaretOffset(); ok {
		s = s.WithCaret(off)
	}
	e.hist.Add(s)
	e.emitter.Emit(EventChange, ev)
	return e
}

// History exposes the widget's history for inspection.
func (e *Editable) History() *history.History { return e.hist }

// Bindings exposes the widget's binding manager for inspection.
func (e *Editable) Bindings() *events.Events { return e.events }

// On registers fn for the named notification.
func (e *Editable) On(name string, fn func(*dom.Event)) emitter.ListenerID {
	return e.emitter.On(name, fn)
}

// Once registers fn for a single delivery of the named notification.
func (e *Editable) Once(name string, fn func(*dom.Event)) emitter.ListenerID {
	return e.emitter.Once(name, fn)
}

// Off removes a listener registered with On or Once.
func (e *Editable) Off(name string, id emitter.ListenerID) { e.emitter.Off(name, id) }

// OffAll removes every listener for name.
func (e *Editable) OffAll(name string) { e.emitter.OffAll(name) }

// Emit delivers a notification to listeners.
func (e *Editable) Emit(name string, ev *dom.Event) { e.emitter.Emit(name, ev) }

// Notifications exposes the emitter, e.g. for emitter.Subscribe.
func (e *Editable) Notifications() *emitter.Emitter[*dom.Event] { return e.emitter }
