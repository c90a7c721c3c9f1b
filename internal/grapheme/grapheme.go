// Package grapheme provides grapheme-cluster helpers for caret movement and
// terminal rendering. Offsets are rune offsets into the text.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// boundaries returns the rune offsets at which clusters start, plus the
// total rune count.
func boundaries(text string) []int {
	out := []int{0}
	off := 0
	for _, c := range Split(text) {
		off += utf8.RuneCountInString(c)
		out = append(out, off)
	}
	return out
}

// Next returns the rune offset of the cluster boundary after off.
func Next(text string, off int) int {
	for _, b := range boundaries(text) {
		if b > off {
			return b
		}
	}
	return utf8.RuneCountInString(text)
}

// Prev returns the rune offset of the cluster boundary before off.
func Prev(text string, off int) int {
	bs := boundaries(text)
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i] < off {
			return bs[i]
		}
	}
	return 0
}

// WordNext returns the offset after the next word, skipping leading
// whitespace and punctuation.
func WordNext(text string, off int) int {
	clusters := Split(text)
	pos, i := 0, 0
	for ; i < len(clusters) && pos < off; i++ {
		pos += utf8.RuneCountInString(clusters[i])
	}
	for ; i < len(clusters) && !isWord(clusters[i]); i++ {
		pos += utf8.RuneCountInString(clusters[i])
	}
	for ; i < len(clusters) && isWord(clusters[i]); i++ {
		pos += utf8.RuneCountInString(clusters[i])
	}
	return pos
}

// WordPrev returns the offset at the start of the previous word.
func WordPrev(text string, off int) int {
	clusters := Split(text)
	starts := make([]int, len(clusters))
	pos, i := 0, 0
	for j, c := range clusters {
		starts[j] = pos
		pos += utf8.RuneCountInString(c)
		if starts[j] < off {
			i = j + 1
		}
	}
	for i > 0 && !isWord(clusters[i-1]) {
		i--
	}
	for i > 0 && isWord(clusters[i-1]) {
		i--
	}
	if i >= len(starts) {
		return pos
	}
	return starts[i]
}

func isWord(cluster string) bool { return !IsSpace(cluster) && !IsPunct(cluster) }

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// Width returns the terminal cell width of cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	return max(w, 0)
}
