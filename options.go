package editable

import (
	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/history"
)

// DefaultHistoryLimit is the history capacity configured for new widgets.
const DefaultHistoryLimit = 100

type options struct {
	initial      []history.Snapshot
	historyLimit int
	matcher      dom.Matcher
}

// Option configures an Editable.
type Option func(*options)

// WithHistory seeds the undo history.
func WithHistory(snaps ...history.Snapshot) Option {
	return func(o *options) { o.initial = append(o.initial, snaps...) }
}

// WithHistoryLimit overrides DefaultHistoryLimit. Values below 1 are ignored.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.historyLimit = n
		}
	}
}

// WithMatcher sets the selector matcher for delegated bindings when the host
// does not implement dom.Matcher itself.
func WithMatcher(m dom.Matcher) Option {
	return func(o *options) { o.matcher = m }
}
