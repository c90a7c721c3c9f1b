package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/editable"
	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/editor"
	"github.com/iw2rmb/editable/emitter"
	"github.com/iw2rmb/editable/internal/config"
	"github.com/iw2rmb/editable/internal/log"
)

// app is the demo program: the editor plus a footer showing the latest
// widget notification and log line.
type app struct {
	editor editor.Model

	ctx    context.Context
	cancel context.CancelFunc
	notes  <-chan emitter.Event[*dom.Event]
	logs   <-chan log.Entry

	lastNote string
	lastLog  string
	footer   lipgloss.Style
}

func newApp(cfg config.Config) app {
	ctx, cancel := context.WithCancel(context.Background())
	ed := editor.New(editor.Config{
		Content:       cfg.Content,
		StartDisabled: cfg.StartDisabled,
		ShowToolbar:   cfg.UI.ShowToolbar,
		ShowStatus:    cfg.UI.ShowStatus,
		ShowHelp:      cfg.UI.ShowHelp,
		Style:         styleFromTheme(cfg.Theme),
		KeyMap:        editor.DefaultKeyMap(),
		Clipboard:     editor.SystemClipboard{},
		HistoryLimit:  cfg.HistoryLimit,
	})

	return app{
		editor: ed,
		ctx:    ctx,
		cancel: cancel,
		notes: emitter.Subscribe(ctx, ed.Widget().Notifications(),
			editable.EventEnable, editable.EventDisable, editable.EventChange, editable.EventState),
		logs:   log.Subscribe(ctx),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Subtle)),
	}
}

// Close stops the notification subscriptions.
func (a app) Close() { a.cancel() }

func (a app) Init() tea.Cmd {
	cmds := []tea.Cmd{a.editor.Init(), emitter.ListenCmd(a.ctx, a.notes)}
	if a.logs != nil {
		cmds = append(cmds, emitter.ListenCmd(a.ctx, a.logs))
	}
	return tea.Batch(cmds...)
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case emitter.Event[*dom.Event]:
		a.lastNote = describe(msg)
		return a, emitter.ListenCmd(a.ctx, a.notes)
	case log.Entry:
		a.lastLog = msg.Payload
		return a, emitter.ListenCmd(a.ctx, a.logs)
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	footer := a.lastNote
	if a.lastLog != "" {
		footer += "  " + a.lastLog
	}
	return a.editor.View() + "\n" + a.footer.Render(footer)
}

// describe renders a notification and the host event that caused it.
func describe(ev emitter.Event[*dom.Event]) string {
	if ev.Payload == nil {
		return ev.Name
	}
	if ev.Payload.Key != "" {
		return fmt.Sprintf("%s (%s %q)", ev.Name, ev.Payload.Type, ev.Payload.Key)
	}
	return fmt.Sprintf("%s (%s)", ev.Name, ev.Payload.Type)
}
