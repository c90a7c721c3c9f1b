package editor

// Config configures the editor Model.
type Config struct {
	// Initial markup of the host element.
	Content string

	// StartDisabled leaves editing off until the toggle key is pressed.
	StartDisabled bool

	// Chrome around the content area.
	ShowToolbar bool
	ShowStatus  bool
	ShowHelp    bool

	Style  Style
	KeyMap KeyMap

	// Clipboard backs the paste key. Nil disables it; bracketed paste
	// from the terminal still works.
	Clipboard Clipboard

	// Forwarded to editable.WithHistoryLimit when positive.
	HistoryLimit int

	// OnChange is called after every recorded change.
	OnChange func(ChangeEvent)
}
