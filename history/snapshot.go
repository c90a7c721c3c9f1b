package history

// Snapshot is an immutable capture of host content, optionally tagged with
// the caret offset at capture time.
type Snapshot struct {
	content  string
	caret    int
	hasCaret bool
}

func NewSnapshot(content string) Snapshot {
	return Snapshot{content: content}
}

// WithCaret returns a copy of s tagged with caret offset off.
// Negative offsets clear the tag.
func (s Snapshot) WithCaret(off int) Snapshot {
	if off < 0 {
		s.caret, s.hasCaret = 0, false
		return s
	}
	s.caret, s.hasCaret = off, true
	return s
}

func (s Snapshot) Content() string { return s.content }

// Caret returns the tagged caret offset. ok is false for untagged snapshots.
func (s Snapshot) Caret() (off int, ok bool) {
	return s.caret, s.hasCaret
}

func (s Snapshot) String() string { return s.content }
