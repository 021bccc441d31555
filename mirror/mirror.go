// Package mirror keeps the hidden shadow element that sizes a multi-line
// widget.
//
// The shadow gets the visible widget's width and either a fixed number of
// blank rows or the widget's own lines. Its natural height is what the
// container gives the visible widget.
package mirror

import (
	"strings"

	"github.com/iw2rmb/textfield/native"
)

const (
	// LineBreak separates mirrored rows.
	LineBreak = "\n"
	// TrailingSpace keeps a trailing blank row from collapsing in layout.
	TrailingSpace = "\u00a0"
)

// Options is the part of the field configuration the mirror depends on.
type Options struct {
	Multiline bool
	// NumberOfLines > 0 fixes the row count; otherwise rows follow content.
	NumberOfLines int
	// Rows pads the mirrored rows up to a minimum. Zero disables padding.
	Rows int
}

// Tokens returns the rows to mirror.
func Tokens(opts Options, value, placeholder string) []string {
	if opts.NumberOfLines > 0 {
		return make([]string, opts.NumberOfLines)
	}
	if value == "" {
		value = placeholder
	}
	return strings.Split(value, "\n")
}

// Constrain pads tokens to rows without truncating, then joins them with
// LineBreak and appends TrailingSpace.
func Constrain(tokens []string, rows int) string {
	if len(tokens) == 0 {
		tokens = []string{""}
	}
	out := make([]string, len(tokens), max(len(tokens), rows))
	copy(out, tokens)
	for rows > 0 && len(out) < rows {
		out = append(out, "")
	}
	return strings.Join(out, LineBreak) + TrailingSpace
}

// Content builds the mirror content for the given widget state.
func Content(opts Options, value, placeholder string) string {
	return Constrain(Tokens(opts, value, placeholder), opts.Rows)
}

// Update re-syncs m with the visible widget h. Width is always read from h,
// never from m. It does nothing for single-line fields.
func Update(h native.Handle, m native.Mirror, opts Options) {
	if !opts.Multiline || h == nil || m == nil {
		return
	}
	m.SetWidth(h.Width())
	m.SetContent(Content(opts, h.Value(), h.Placeholder()))
}
