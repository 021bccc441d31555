// Package native defines the contract between the text input core and the
// widgets that actually store and render text.
//
// Offsets are 0-based rune offsets into the whole value, with '\n' counted as
// a single rune. Widgets report capability gaps by returning errors that wrap
// ErrUnsupported.
package native
