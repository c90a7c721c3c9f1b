package editor

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/editable/internal/grapheme"
	"github.com/iw2rmb/editable/internal/textpos"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	off, ok := m.screenToOffset(msg.X, msg.Y)
	if !ok {
		return m, cmd
	}

	m = m.Focus()
	m.el.SetCaretOffset(off)
	m.el.Fire("click")
	m.rebuildContent()
	return m, cmd
}

// screenToOffset maps a cell inside the content area to a caret offset.
func (m Model) screenToOffset(x, y int) (int, bool) {
	top := 0
	if m.cfg.ShowToolbar {
		top = 1
	}
	if x < 0 || y < top || y >= top+m.viewport.Height {
		return 0, false
	}

	text := m.el.Text()
	lines := textpos.Lines(text)
	row := min(y-top+m.viewport.YOffset, len(lines)-1)

	col, cells := 0, 0
	for _, c := range grapheme.Split(string(lines[row])) {
		w := cellWidth(c)
		if cells+w > x {
			break
		}
		cells += w
		col += utf8.RuneCountInString(c)
	}
	return textpos.ToOffset(text, textpos.Pos{Row: row, Col: col}), true
}

func cellWidth(cluster string) int {
	if cluster == "\t" {
		return tabWidth
	}
	return max(grapheme.Width(cluster), 1)
}
