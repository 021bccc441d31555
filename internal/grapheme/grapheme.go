// Package grapheme maps between rune offsets and grapheme cluster boundaries.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Boundaries returns the rune offsets where clusters start, followed by the
// rune length of text. "" yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Next returns the boundary after the rune offset col.
func Next(text string, col int) int {
	b := Boundaries(text)
	for _, off := range b {
		if off > col {
			return off
		}
	}
	return b[len(b)-1]
}

// Prev returns the boundary before the rune offset col.
func Prev(text string, col int) int {
	b := Boundaries(text)
	prev := 0
	for _, off := range b {
		if off >= col {
			return prev
		}
		prev = off
	}
	return prev
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// Some clusters (e.g. emoji sequences) are unknown to runewidth.
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}

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
