package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/internal/grapheme"
	"github.com/iw2rmb/editable/internal/log"
	"github.com/iw2rmb/editable/internal/textpos"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		var handled bool
		m, handled = m.updateKey(msg)
		if handled {
			m.keyup(msg)
		}
		m.rebuildContent()
		m.followCaret()
		return m, nil
	}
	return m, nil
}

// updateKey applies msg and reports whether it was handled.
func (m Model) updateKey(msg tea.KeyMsg) (Model, bool) {
	if !m.focused {
		return m, false
	}
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Toggle) {
		m.w.Toggle()
		return m, true
	}
	// A disabled widget leaves the host read-only; only the caret moves.
	editing := m.w.Enabled()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if editing {
			m.paste(string(msg.Runes))
		}
		return m, true
	}

	text := m.el.Text()
	caret := m.caret()

	switch {
	case key.Matches(msg, km.Left):
		m.el.SetCaretOffset(grapheme.Prev(text, caret))
	case key.Matches(msg, km.Right):
		m.el.SetCaretOffset(grapheme.Next(text, caret))
	case key.Matches(msg, km.Up):
		m.el.SetCaretOffset(textpos.Vertical(text, caret, -1))
	case key.Matches(msg, km.Down):
		m.el.SetCaretOffset(textpos.Vertical(text, caret, 1))
	case key.Matches(msg, km.WordLeft):
		m.el.SetCaretOffset(grapheme.WordPrev(text, caret))
	case key.Matches(msg, km.WordRight):
		m.el.SetCaretOffset(grapheme.WordNext(text, caret))
	case key.Matches(msg, km.Home):
		m.el.SetCaretOffset(textpos.LineStart(text, caret))
	case key.Matches(msg, km.End):
		m.el.SetCaretOffset(textpos.LineEnd(text, caret))

	case !editing:
		return m, false

	case key.Matches(msg, km.Backspace):
		m.el.ExecCommand("delete", "")
	case key.Matches(msg, km.Delete):
		m.el.ExecCommand("forwardDelete", "")
	case key.Matches(msg, km.Enter):
		m.el.ExecCommand("insertText", "\n")

	case key.Matches(msg, km.Undo):
		m.w.Undo()
	case key.Matches(msg, km.Redo):
		m.w.Redo()
	case key.Matches(msg, km.Bold):
		m.w.Execute("bold", "")
	case key.Matches(msg, km.Italic):
		m.w.Execute("italic", "")
	case key.Matches(msg, km.Underline):
		m.w.Execute("underline", "")

	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		switch {
		case msg.Type == tea.KeyTab:
			m.el.ExecCommand("insertText", "\t")
		case msg.Type == tea.KeySpace:
			m.el.ExecCommand("insertText", " ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.el.ExecCommand("insertText", string(msg.Runes))
		default:
			return m, false
		}
	}
	return m, true
}

// keyup reports a handled key to the host like a browser key release.
func (m Model) keyup(msg tea.KeyMsg) {
	ev := dom.NewEvent("keyup", m.el)
	ev.Key = msg.String()
	m.el.Dispatch(ev)
}

// paste dispatches "paste" with the clipboard data, then inserts it.
func (m Model) paste(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return
	}
	ev := dom.NewEvent("paste", m.el)
	ev.Data = s
	m.el.Dispatch(ev)
	m.el.ExecCommand("insertText", s)
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		log.ErrorErr(log.CatUI, "clipboard read", err)
		return
	}
	m.paste(s)
}
