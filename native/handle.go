package native

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by widget kinds that cannot perform a selection
// read, selection write, or select-all request.
var ErrUnsupported = fmt.Errorf("native: %w", errors.ErrUnsupported)

// Selection is a live selection reported by a widget.
// Start <= End; Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Handle is a non-owning reference to an editable widget.
type Handle interface {
	Value() string
	// SetValue replaces the text without emitting a change event.
	SetValue(s string)
	Placeholder() string

	Selection() (Selection, error)
	SetSelectionRange(start, end int) error
	SelectAll() error

	// Focus and Blur emit EventFocus/EventBlur when the state changes.
	Focus()
	Blur()

	// Width is the measured width in terminal cells.
	Width() int
}

// Source is implemented by widgets that report native events.
type Source interface {
	// SetEventSink installs fn as the only event receiver. nil detaches.
	SetEventSink(fn func(*Event))
}

// Mirror is the hidden shadow element used to measure row height.
type Mirror interface {
	SetWidth(w int)
	SetContent(s string)
	// Height is the natural layout height of the current content.
	Height() int
}
