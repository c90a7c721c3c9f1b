package textpos

import "testing"

func TestFromOffsetToOffset_RoundTrip(t *testing.T) {
	text := "ab\n\ncd\u00e9"
	cases := []struct {
		off  int
		want Pos
	}{
		{off: 0, want: Pos{Row: 0, Col: 0}},
		{off: 2, want: Pos{Row: 0, Col: 2}},
		{off: 3, want: Pos{Row: 1, Col: 0}},
		{off: 4, want: Pos{Row: 2, Col: 0}},
		{off: 7, want: Pos{Row: 2, Col: 3}},
		{off: 99, want: Pos{Row: 2, Col: 3}},
		{off: -1, want: Pos{Row: 0, Col: 0}},
	}
	for _, tc := range cases {
		got := FromOffset(text, tc.off)
		if got != tc.want {
			t.Fatalf("FromOffset(%d): got %v, want %v", tc.off, got, tc.want)
		}
		if tc.off >= 0 && tc.off <= 7 {
			if back := ToOffset(text, got); back != tc.off {
				t.Fatalf("ToOffset(%v): got %d, want %d", got, back, tc.off)
			}
		}
	}
}

func TestClampPos(t *testing.T) {
	lines := Lines("abc\nd")
	if got, want := ClampPos(Pos{Row: 5, Col: 5}, lines), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("clamp: got %v, want %v", got, want)
	}
	if got, want := ClampPos(Pos{Row: -1, Col: -1}, lines), (Pos{}); got != want {
		t.Fatalf("clamp: got %v, want %v", got, want)
	}
}

func TestVerticalAndLineBounds(t *testing.T) {
	text := "abcd\nx\nlonger"
	if got, want := Vertical(text, 3, 1), 6; got != want { // col 3 clamps to "x" end
		t.Fatalf("down: got %d, want %d", got, want)
	}
	if got, want := Vertical(text, 6, 1), 8; got != want {
		t.Fatalf("down again: got %d, want %d", got, want)
	}
	if got, want := Vertical(text, 1, -1), 1; got != want {
		t.Fatalf("up at top: got %d, want %d", got, want)
	}
	if got, want := LineStart(text, 10), 7; got != want {
		t.Fatalf("line start: got %d, want %d", got, want)
	}
	if got, want := LineEnd(text, 8), 13; got != want {
		t.Fatalf("line end: got %d, want %d", got, want)
	}
}
