// Package widget provides the terminal editable widgets behind native.Handle.
//
// Line is a single-line input built on bubbles/textinput. Area is a
// multi-line editor rendered through a bubbles viewport. Shadow is the hidden
// mirror element that measures an Area's natural height with lipgloss.
//
// Widgets emit native events synchronously: key-press before the key's
// default action, then change and select when the action altered the value
// or the selection. Programmatic SetValue and SetSelectionRange emit nothing.
package widget
