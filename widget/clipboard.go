package widget

import "github.com/atotto/clipboard"

// Clipboard is the paste source of a Line.
//
// Read errors are ignored; a failed paste inserts nothing.
type Clipboard interface {
	ReadText() (string, error)
}

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

// pasteMsg delivers clipboard text to the Line that asked for it.
type pasteMsg struct {
	target *Line
	text   string
}
