package editor

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/editable"
	"github.com/iw2rmb/editable/dom/memdom"
	"github.com/iw2rmb/editable/history"
	"github.com/iw2rmb/editable/internal/log"
	"github.com/iw2rmb/editable/internal/textpos"
)

// Model is a Bubble Tea component hosting an editable widget.
type Model struct {
	cfg Config

	el *memdom.Element
	w  *editable.Editable
	st *hostState

	focused bool
	width   int
	height  int

	viewport viewport.Model
	help     help.Model
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}

	el := memdom.New("div", cfg.Content)
	el.SetCaretOffset(utf8.RuneCountInString(el.Text()))

	seed := history.NewSnapshot(el.Content()).WithCaret(utf8.RuneCountInString(el.Text()))
	opts := []editable.Option{editable.WithHistory(seed)}
	if cfg.HistoryLimit > 0 {
		opts = append(opts, editable.WithHistoryLimit(cfg.HistoryLimit))
	}
	w, err := editable.New(el, opts...)
	if err != nil {
		// Unreachable: el is never nil.
		panic(err)
	}

	m := Model{
		cfg:      cfg,
		el:       el,
		w:        w,
		st:       &hostState{},
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.st.listen(w, el, cfg.OnChange)
	if !cfg.StartDisabled {
		w.Enable()
	}
	m.st.refresh(w)

	log.Debug(log.CatUI, "editor: new", "id", w.ID(), "enabled", w.Enabled())
	m = m.Focus()
	return m
}

// Widget returns the hosted widget.
func (m Model) Widget() *editable.Editable { return m.w }

// Element returns the host element.
func (m Model) Element() *memdom.Element { return m.el }

// Toolbar returns the command state from the latest notification.
func (m Model) Toolbar() ToolbarState { return m.st.toolbar }

// LastChange returns the latest change and the number of changes so far.
func (m Model) LastChange() (ChangeEvent, int) { return m.st.last, m.st.changes }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.help.Width = m.width
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.chromeHeight(), 0)

	m.rebuildContent()
	m.followCaret()
	return m
}

// Focus fires "focus" on the host the first time the editor gains focus.
func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.el.Fire("focus")
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.el.Fire("blur")
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string {
	var parts []string
	if m.cfg.ShowToolbar {
		parts = append(parts, m.renderToolbar())
	}
	parts = append(parts, m.viewport.View())
	if m.cfg.ShowStatus {
		parts = append(parts, m.renderStatus())
	}
	if m.cfg.ShowHelp {
		parts = append(parts, m.help.View(m.cfg.KeyMap))
	}
	return joinLines(parts)
}

func (m Model) chromeHeight() int {
	n := 0
	for _, on := range []bool{m.cfg.ShowToolbar, m.cfg.ShowStatus, m.cfg.ShowHelp} {
		if on {
			n++
		}
	}
	return n
}

// caret returns the host caret, defaulting to the end of the text.
func (m Model) caret() int {
	if off, ok := m.el.CaretOffset(); ok {
		return off
	}
	return utf8.RuneCountInString(m.el.Text())
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCaret() {
	row := textpos.FromOffset(m.el.Text(), m.caret()).Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
