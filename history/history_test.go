package history

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func snaps(contents ...string) []Snapshot {
	out := make([]Snapshot, 0, len(contents))
	for _, c := range contents {
		out = append(out, NewSnapshot(c))
	}
	return out
}

func contentsOf(ss []Snapshot) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Content())
	}
	return out
}

func TestNew_CursorOnLastInitialEntry(t *testing.T) {
	h := New()
	require.Equal(t, -1, h.Cursor())
	require.Equal(t, DefaultLimit, h.Limit())

	h = New(snaps("a", "b", "c")...)
	require.Equal(t, 2, h.Cursor())
	require.Equal(t, 3, h.Len())
}

func TestNew_CopiesInitialSlice(t *testing.T) {
	initial := snaps("a", "b")
	h := New(initial...)
	initial[0] = NewSnapshot("x")

	require.Equal(t, []string{"a", "b"}, contentsOf(h.Snapshots()))
}

func TestPrevWalksBackwardIncludingCurrent(t *testing.T) {
	// Scenario A: capacity 2, add a, b, c.
	h := New()
	h.SetLimit(2)
	for _, c := range []string{"a", "b", "c"} {
		h.Add(NewSnapshot(c))
	}
	require.Equal(t, []string{"b", "c"}, contentsOf(h.Snapshots()))
	require.Equal(t, 1, h.Cursor())

	s, ok := h.Prev()
	require.True(t, ok)
	require.Equal(t, "c", s.Content())
	require.Equal(t, 0, h.Cursor())

	s, ok = h.Prev()
	require.True(t, ok)
	require.Equal(t, "b", s.Content())
	require.Equal(t, -1, h.Cursor())

	_, ok = h.Prev()
	require.False(t, ok)
	require.Equal(t, -1, h.Cursor())
}

func TestNextWalksForwardAfterPrev(t *testing.T) {
	h := New(snaps("a", "b", "c")...)

	_, ok := h.Next()
	require.False(t, ok, "next at the last entry")

	_, _ = h.Prev()
	_, _ = h.Prev()
	require.Equal(t, 0, h.Cursor())

	s, ok := h.Next()
	require.True(t, ok)
	require.Equal(t, "b", s.Content())

	s, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "c", s.Content())

	_, ok = h.Next()
	require.False(t, ok)
}

func TestNextFromExhaustedPrev(t *testing.T) {
	h := New(snaps("a")...)
	_, _ = h.Prev()
	require.Equal(t, -1, h.Cursor())

	s, ok := h.Next()
	require.True(t, ok)
	require.Equal(t, "a", s.Content())
}

func TestSetLimit_EvictsFromFrontAndResetsCursor(t *testing.T) {
	h := New(snaps("a", "b", "c", "d")...)
	_, _ = h.Prev()
	_, _ = h.Prev()

	h.SetLimit(2)
	require.Equal(t, []string{"c", "d"}, contentsOf(h.Snapshots()))
	require.Equal(t, 1, h.Cursor())
	require.Equal(t, 2, h.Limit())
}

func TestSetLimit_IgnoresNonPositive(t *testing.T) {
	h := New(snaps("a", "b")...)
	h.SetLimit(0)
	h.SetLimit(-3)
	require.Equal(t, DefaultLimit, h.Limit())
	require.Equal(t, 2, h.Len())
}

func TestAddAfterUndoKeepsLaterEntries(t *testing.T) {
	h := New(snaps("a", "b", "c")...)
	_, _ = h.Prev()
	_, _ = h.Prev()

	h.Add(NewSnapshot("d"))
	require.Equal(t, []string{"a", "b", "c", "d"}, contentsOf(h.Snapshots()))
	require.Equal(t, 3, h.Cursor())
}

func TestCanUndoCanRedo(t *testing.T) {
	h := New()
	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())

	h.Add(NewSnapshot("a"))
	require.False(t, h.CanUndo(), "single entry")

	h.Add(NewSnapshot("b"))
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())

	_, _ = h.Prev()
	require.False(t, h.CanUndo())
	require.True(t, h.CanRedo())
}

func TestSnapshotCaret(t *testing.T) {
	s := NewSnapshot("hello")
	_, ok := s.Caret()
	require.False(t, ok)

	s = s.WithCaret(3)
	off, ok := s.Caret()
	require.True(t, ok)
	require.Equal(t, 3, off)
	require.Equal(t, "hello", s.String())

	_, ok = s.WithCaret(-1).Caret()
	require.False(t, ok)
}

func TestProperty_EvictionKeepsMostRecent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(1, 20).Draw(t, "limit")
		added := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,4}`)).Draw(t, "added")

		h := New()
		h.SetLimit(limit)
		for _, c := range added {
			h.Add(NewSnapshot(c))
			if h.Len() > limit {
				t.Fatalf("len=%d exceeds limit %d", h.Len(), limit)
			}
			if got, want := h.Cursor(), h.Len()-1; got != want {
				t.Fatalf("cursor after add: got %d, want %d", got, want)
			}
		}

		want := added
		if len(want) > limit {
			want = want[len(want)-limit:]
		}
		got := contentsOf(h.Snapshots())
		if len(want) == 0 {
			want = []string{}
		}
		if len(got) != len(want) {
			t.Fatalf("retained: got %q, want %q", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("retained: got %q, want %q", got, want)
			}
		}
	})
}

func TestProperty_PrevReturnsLastToFirst(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		added := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,3}`), 1, 30).Draw(t, "added")
		h := New()
		for _, c := range added {
			h.Add(NewSnapshot(c))
		}

		for i := len(added) - 1; i >= 0; i-- {
			s, ok := h.Prev()
			if !ok {
				t.Fatalf("prev #%d: got none", len(added)-i)
			}
			if s.Content() != added[i] {
				t.Fatalf("prev #%d: got %q, want %q", len(added)-i, s.Content(), added[i])
			}
		}
		for range 3 {
			if _, ok := h.Prev(); ok {
				t.Fatalf("prev past start: expected none")
			}
		}
	})
}

func TestProperty_PrevNextRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 20).Draw(t, "n")
		steps := rapid.IntRange(0, n-2).Draw(t, "steps")

		h := New()
		for i := range n {
			h.Add(NewSnapshot(string(rune('a' + i))))
		}
		for range steps {
			_, _ = h.Prev()
		}

		before := h.Cursor()
		if _, ok := h.Prev(); !ok {
			t.Fatalf("prev at cursor %d: got none", before)
		}
		if _, ok := h.Next(); !ok {
			t.Fatalf("next after prev: got none")
		}
		if got := h.Cursor(); got != before {
			t.Fatalf("cursor after prev/next: got %d, want %d", got, before)
		}
	})
}
