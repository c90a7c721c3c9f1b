// Package textpos maps rune offsets in plain text to (row, col) positions
// and back. Rows split on '\n'; columns count runes.
package textpos

import "strings"

// Pos points into text by (row, col) in runes. Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Lines splits text into rows of runes. There is always at least one row.
func Lines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}

// ClampPos clamps p into the bounds of lines.
func ClampPos(p Pos, lines [][]rune) Pos {
	if len(lines) == 0 {
		return Pos{}
	}
	row := clampInt(p.Row, 0, len(lines)-1)
	col := clampInt(p.Col, 0, len(lines[row]))
	return Pos{Row: row, Col: col}
}

// FromOffset converts a rune offset into a position, clamping to the text.
func FromOffset(text string, off int) Pos {
	lines := Lines(text)
	if off < 0 {
		off = 0
	}
	for row, line := range lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1 // newline
	}
	last := len(lines) - 1
	return Pos{Row: last, Col: len(lines[last])}
}

// ToOffset converts p into a rune offset after clamping it to the text.
func ToOffset(text string, p Pos) int {
	lines := Lines(text)
	p = ClampPos(p, lines)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(lines[row]) + 1
	}
	return off + p.Col
}

// Vertical moves the offset delta rows up (negative) or down, keeping the
// column where the target row allows.
func Vertical(text string, off, delta int) int {
	p := FromOffset(text, off)
	p.Row += delta
	return ToOffset(text, p)
}

// LineStart returns the offset of the start of the row holding off.
func LineStart(text string, off int) int {
	p := FromOffset(text, off)
	return ToOffset(text, Pos{Row: p.Row})
}

// LineEnd returns the offset of the end of the row holding off.
func LineEnd(text string, off int) int {
	lines := Lines(text)
	p := FromOffset(text, off)
	return ToOffset(text, Pos{Row: p.Row, Col: len(lines[p.Row])})
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
