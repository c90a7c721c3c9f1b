package editor

import (
	"github.com/iw2rmb/editable"
	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/dom/memdom"
	"github.com/iw2rmb/editable/history"
)

// ChangeEvent describes one recorded content change.
type ChangeEvent struct {
	// Source is the host event type that triggered the change.
	Source string

	Content string // markup after the change
	Text    string

	Caret    int
	HasCaret bool

	// History is the number of retained snapshots.
	History int
	// Delta is the difference from the previous snapshot.
	Delta history.Delta
}

// ToolbarState mirrors command state after a "state" notification.
type ToolbarState struct {
	Enabled   bool
	Bold      bool
	Italic    bool
	Underline bool
	Undo      bool
	Redo      bool
}

// hostState is shared between the model value and widget listeners.
type hostState struct {
	toolbar ToolbarState
	last    ChangeEvent
	changes int
	states  int
}

func (s *hostState) listen(w *editable.Editable, el *memdom.Element, onChange func(ChangeEvent)) {
	refresh := func(*dom.Event) { s.refresh(w) }
	w.On(editable.EventEnable, refresh)
	w.On(editable.EventDisable, refresh)
	w.On(editable.EventState, func(ev *dom.Event) {
		s.states++
		refresh(ev)
	})
	w.On(editable.EventChange, func(ev *dom.Event) {
		s.record(w, el, ev)
		s.refresh(w)
		if onChange != nil {
			onChange(s.last)
		}
	})
}

func (s *hostState) refresh(w *editable.Editable) {
	s.toolbar = ToolbarState{
		Enabled:   w.Enabled(),
		Bold:      w.State("bold"),
		Italic:    w.State("italic"),
		Underline: w.State("underline"),
		Undo:      w.State("undo"),
		Redo:      w.State("redo"),
	}
}

func (s *hostState) record(w *editable.Editable, el *memdom.Element, ev *dom.Event) {
	snaps := w.History().Snapshots()
	var prev, cur history.Snapshot
	if n := len(snaps); n > 0 {
		cur = snaps[n-1]
		if n > 1 {
			prev = snaps[n-2]
		}
	}

	s.changes++
	s.last = ChangeEvent{
		Content: cur.Content(),
		Text:    el.Text(),
		History: len(snaps),
		Delta:   history.Diff(prev, cur),
	}
	s.last.Caret, s.last.HasCaret = cur.Caret()
	if ev != nil {
		s.last.Source = ev.Type
	}
}
