// Package emitter provides a synchronous, generic notification emitter with
// on/once/off/emit semantics, plus channel and Bubble Tea bridges for
// consumers that prefer messages over callbacks.
package emitter

import "sync"

// ListenerID identifies a registration returned by On or Once.
type ListenerID uint64

type entry[T any] struct {
	id   ListenerID
	fn   func(T)
	once bool
}

// Emitter dispatches named notifications to registered listeners.
//
// Emit calls listeners synchronously on the caller's goroutine, in
// registration order, over a copy of the listener list. Listeners may
// register or remove listeners (including themselves) while an emit is in
// progress; such changes apply to the next Emit.
type Emitter[T any] struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[string][]entry[T]
}

func New[T any]() *Emitter[T] {
	return &Emitter[T]{listeners: make(map[string][]entry[T])}
}

// On registers fn for name.
func (e *Emitter[T]) On(name string, fn func(T)) ListenerID {
	return e.add(name, fn, false)
}

// Once registers fn for name; it is removed before its first invocation.
func (e *Emitter[T]) Once(name string, fn func(T)) ListenerID {
	return e.add(name, fn, true)
}

func (e *Emitter[T]) add(name string, fn func(T), once bool) ListenerID {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[string][]entry[T])
	}
	e.nextID++
	id := e.nextID
	e.listeners[name] = append(e.listeners[name], entry[T]{id: id, fn: fn, once: once})
	return id
}

// Off removes the listener registered under id for name.
// Unknown ids are ignored.
func (e *Emitter[T]) Off(name string, id ListenerID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(name, id)
}

// OffAll removes every listener for name.
func (e *Emitter[T]) OffAll(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, name)
}

// Clear removes all listeners.
func (e *Emitter[T]) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = make(map[string][]entry[T])
}

func (e *Emitter[T]) removeLocked(name string, id ListenerID) bool {
	list := e.listeners[name]
	for i, l := range list {
		if l.id != id {
			continue
		}
		next := make([]entry[T], 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(e.listeners, name)
		} else {
			e.listeners[name] = next
		}
		return true
	}
	return false
}

// Emit calls every listener registered for name with payload.
func (e *Emitter[T]) Emit(name string, payload T) {
	e.mu.Lock()
	list := append([]entry[T](nil), e.listeners[name]...)
	e.mu.Unlock()

	for _, l := range list {
		if l.once {
			e.mu.Lock()
			removed := e.removeLocked(name, l.id)
			e.mu.Unlock()
			if !removed {
				// Another listener already consumed or removed it.
				continue
			}
		}
		l.fn(payload)
	}
}

// Listeners returns the number of listeners registered for name.
func (e *Emitter[T]) Listeners(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[name])
}

func (e *Emitter[T]) HasListeners(name string) bool { return e.Listeners(name) > 0 }
