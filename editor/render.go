package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/editable/dom/memdom"
	"github.com/iw2rmb/editable/internal/grapheme"
	"github.com/iw2rmb/editable/internal/textpos"
)

const tabWidth = 4

type styledCluster struct {
	text string
	run  memdom.Run
}

// styledLines splits runs into rows of grapheme clusters carrying their
// run's style.
func styledLines(runs []memdom.Run) [][]styledCluster {
	rows := [][]styledCluster{nil}
	for _, r := range runs {
		for _, c := range grapheme.Split(r.Text) {
			if c == "\n" {
				rows = append(rows, nil)
				continue
			}
			last := len(rows) - 1
			rows[last] = append(rows[last], styledCluster{text: c, run: r})
		}
	}
	return rows
}

func runStyle(base lipgloss.Style, r memdom.Run) lipgloss.Style {
	st := base
	if r.Bold {
		st = st.Bold(true)
	}
	if r.Italic {
		st = st.Italic(true)
	}
	if r.Underline {
		st = st.Underline(true)
	}
	return st
}

func (m *Model) renderContent() string {
	if m.el == nil {
		return ""
	}

	caret := textpos.FromOffset(m.el.Text(), m.caret())
	base := m.cfg.Style.Text
	if !m.w.Enabled() {
		base = m.cfg.Style.Disabled
	}

	rows := styledLines(m.el.Runs())
	out := make([]string, 0, len(rows))
	for row, clusters := range rows {
		var sb strings.Builder
		var pending strings.Builder
		var pendingStyle lipgloss.Style
		var pendingKey memdom.Run
		flush := func() {
			if pending.Len() > 0 {
				sb.WriteString(pendingStyle.Render(pending.String()))
				pending.Reset()
			}
		}

		col, cells := 0, 0
		caretDrawn := !m.focused || row != caret.Row
		for _, c := range clusters {
			w := cellWidth(c.text)
			if m.width > 0 && cells+w > m.width {
				break
			}
			s := c.text
			if s == "\t" {
				s = strings.Repeat(" ", tabWidth)
			}
			n := utf8.RuneCountInString(c.text)

			if !caretDrawn && caret.Col < col+n {
				flush()
				sb.WriteString(m.cfg.Style.Caret.Inherit(runStyle(base, c.run)).Render(s))
				caretDrawn = true
			} else {
				if pending.Len() == 0 || !pendingKey.SameStyle(c.run) {
					flush()
					pendingKey = c.run
					pendingStyle = runStyle(base, c.run)
				}
				pending.WriteString(s)
			}
			col += n
			cells += w
		}
		flush()
		if !caretDrawn && (m.width == 0 || cells < m.width) {
			sb.WriteString(m.cfg.Style.Caret.Render(" "))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) renderToolbar() string {
	tb := m.st.toolbar
	item := func(label string, on bool) string {
		if on {
			return m.cfg.Style.ToolbarActive.Render(label)
		}
		return m.cfg.Style.ToolbarInactive.Render(label)
	}

	mode := "READ"
	if tb.Enabled {
		mode = "EDIT"
	}
	return strings.Join([]string{
		item(" B ", tb.Bold),
		item(" I ", tb.Italic),
		item(" U ", tb.Underline),
		item(" undo ", tb.Undo),
		item(" redo ", tb.Redo),
		item(" "+mode+" ", tb.Enabled),
	}, " ")
}

func (m Model) renderStatus() string {
	h := m.w.History()
	d := m.st.last.Delta
	s := fmt.Sprintf("changes %d  history %d/%d  cursor %d  +%d -%d",
		m.st.changes, h.Len(), h.Limit(), h.Cursor(), d.Inserted, d.Deleted)
	return m.cfg.Style.Status.Render(s)
}

func joinLines(parts []string) string {
	return strings.Join(parts, "\n")
}
