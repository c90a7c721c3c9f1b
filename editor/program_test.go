package editor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
)

// program wraps Model as a tea.Model that quits on esc.
type program struct{ m Model }

func (p program) Init() tea.Cmd { return p.m.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return p, tea.Quit
	}
	var cmd tea.Cmd
	p.m, cmd = p.m.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.m.View() }

func TestProgram_TypingUndoAndToggle(t *testing.T) {
	var changes int
	m := New(Config{
		ShowToolbar: true,
		ShowStatus:  true,
		OnChange:    func(ChangeEvent) { changes++ },
	})
	tm := teatest.NewTestModel(t, program{m: m}, teatest.WithInitialTermSize(60, 6))

	tm.Type("hi")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlB})
	tm.Type("!")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlZ})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlZ})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlT})
	tm.Type("ignored")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(program)
	require.True(t, ok)
	require.Equal(t, "hi", final.m.Widget().Contents())
	require.False(t, final.m.Widget().Enabled())
	require.Equal(t, 3, changes)
	require.Equal(t, 1, final.m.Widget().History().Cursor())
}
