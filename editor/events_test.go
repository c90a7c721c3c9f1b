package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestOnChange_FiresForEditsOnly(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Content:  "abc",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	require.Empty(t, events, "moves and style toggles are state changes")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Len(t, events, 1)

	ev := events[0]
	require.Equal(t, "input", ev.Source)
	require.Equal(t, "ac", ev.Content)
	require.Equal(t, "ac", ev.Text)
	require.Equal(t, 1, ev.Caret)
	require.Equal(t, 2, ev.History)
	require.Equal(t, 0, ev.Delta.Inserted)
	require.Equal(t, 1, ev.Delta.Deleted)
	require.NotEmpty(t, ev.Delta.Patch)
}

func TestOnChange_NoopCommandDoesNotRecord(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Content:  "a",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	require.Empty(t, events, "forward delete at the end fails")
	require.Equal(t, 1, m.Widget().History().Len())
}

func TestToolbarState_FollowsUndoAvailability(t *testing.T) {
	m := New(Config{})
	require.False(t, m.Toolbar().Undo)

	m, _ = m.Update(keyRunes("a"))
	require.True(t, m.Toolbar().Undo)
	require.False(t, m.Toolbar().Redo)
}
