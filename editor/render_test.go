package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/editable/dom/memdom"
)

func init() {
	// Plain output keeps expected strings readable.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRender_CaretUsesCaretStyle(t *testing.T) {
	m := New(Config{
		Content: "ab",
		Style:   Style{Text: lipgloss.NewStyle(), Caret: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})
	m.el.SetCaretOffset(0)

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected caret rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CaretAtLineEnd(t *testing.T) {
	m := New(Config{
		Content: "ab",
		Style:   Style{Caret: lipgloss.NewStyle().PaddingLeft(1)},
	})
	require.Equal(t, "ab  ", m.renderContent())
}

func TestRender_BlurredHidesCaret(t *testing.T) {
	m := New(Config{
		Content: "ab",
		Style:   Style{Caret: lipgloss.NewStyle().PaddingLeft(1)},
	}).Blur()
	require.Equal(t, "ab", m.renderContent())
}

func TestRender_MarkupRunsAndTabs(t *testing.T) {
	m := New(Config{Content: "<b>bo</b>\tld<br>"}).Blur()
	require.Equal(t, "bo    ld", m.renderContent())
}

func TestRender_ClipsToWidth(t *testing.T) {
	m := New(Config{Content: "abcdef\nxy"}).Blur()
	m = m.SetSize(3, 2)
	require.Equal(t, "abc\nxy", m.renderContent())
}

func TestStyledLines_SplitsRowsAndKeepsStyle(t *testing.T) {
	rows := styledLines([]memdom.Run{
		{Text: "a\nb", Bold: true},
		{Text: "c"},
	})
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 1)
	require.True(t, rows[0][0].run.Bold)
	require.Equal(t, "b", rows[1][0].text)
	require.True(t, rows[1][0].run.Bold)
	require.Equal(t, "c", rows[1][1].text)
	require.False(t, rows[1][1].run.Bold)
}

func TestRender_ToolbarReflectsMode(t *testing.T) {
	m := New(Config{Content: "a"})
	require.Contains(t, m.renderToolbar(), "EDIT")

	m.Widget().Disable()
	require.Contains(t, m.renderToolbar(), "READ")
}

func TestRender_StatusSummarizesHistory(t *testing.T) {
	m := New(Config{})
	require.Equal(t, "changes 0  history 1/100  cursor 0  +0 -0", m.renderStatus())

	m, _ = m.Update(keyRunes("a"))
	require.Equal(t, "changes 1  history 2/100  cursor 1  +1 -0", m.renderStatus())
}

func TestRender_DisabledUsesDisabledStyle(t *testing.T) {
	m := New(Config{
		Content:       "ab",
		StartDisabled: true,
		Style:         Style{Disabled: lipgloss.NewStyle().PaddingLeft(2)},
	}).Blur()
	require.True(t, strings.HasPrefix(m.renderContent(), "  a"))
}
