// Package events maps declarative event bindings onto a dom.EventTarget.
//
// A binding names an event (optionally followed by a selector for delegated
// matching) and a receiver method. The manager remembers every live
// listener per event and method so bindings can be torn down individually,
// per event, or all at once.
package events
