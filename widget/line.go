package widget

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/textfield/internal/grapheme"
	"github.com/iw2rmb/textfield/native"
)

// Line is a single-line input backed by bubbles/textinput.
//
// textinput only knows a cursor, so Line keeps the selection anchor itself
// and replaces the selected text before forwarding edits.
type Line struct {
	emitter

	ti        textinput.Model
	keys      KeyMap
	style     Style
	props     native.Props
	clipboard Clipboard

	kind       native.InputKind
	readOnly   bool
	capitalize string

	// anchor is the fixed end of the selection; -1 when collapsed.
	anchor int
	width  int

	// pending holds the cursor blink started by Focus until the host
	// collects it.
	pending tea.Cmd
}

var (
	_ native.Handle = (*Line)(nil)
	_ native.Source = (*Line)(nil)
)

func NewLine(style Style) *Line {
	ti := textinput.New()
	ti.Prompt = ""
	ti.PromptStyle = style.Prompt
	ti.TextStyle = style.Text
	ti.PlaceholderStyle = style.Placeholder
	return &Line{
		ti:        ti,
		keys:      DefaultKeyMap(),
		style:     style,
		clipboard: SystemClipboard{},
		anchor:    -1,
	}
}

func (l *Line) SetPrompt(p string) {
	l.ti.Prompt = p
	l.SetWidth(l.width)
}

func (l *Line) SetClipboard(c Clipboard) { l.clipboard = c }

func (l *Line) Value() string { return l.ti.Value() }

func (l *Line) SetValue(s string) {
	l.ti.SetValue(s)
	l.anchor = -1
}

func (l *Line) Placeholder() string { return l.ti.Placeholder }

func (l *Line) Kind() native.InputKind { return l.kind }

// Props returns every attribute applied so far.
func (l *Line) Props() native.Props { return l.props }

func (l *Line) Selection() (native.Selection, error) {
	if !selectionSupported(l.kind) {
		return native.Selection{}, unsupported(l.kind, "selection read")
	}
	return l.selection(), nil
}

func (l *Line) SetSelectionRange(start, end int) error {
	if !selectionSupported(l.kind) {
		return unsupported(l.kind, "selection write")
	}
	n := l.runeLen()
	end = clamp(end, 0, n)
	start = clamp(start, 0, end)
	l.ti.SetCursor(end)
	l.anchor = start
	if start == end {
		l.anchor = -1
	}
	return nil
}

func (l *Line) SelectAll() error {
	l.ti.CursorEnd()
	l.anchor = -1
	if l.runeLen() > 0 {
		l.anchor = 0
	}
	l.emit(&native.Event{Type: native.EventSelect, Target: l})
	return nil
}

func (l *Line) Focus() {
	if l.ti.Focused() {
		return
	}
	l.pending = l.ti.Focus()
	l.emit(&native.Event{Type: native.EventFocus, Target: l})
}

func (l *Line) Blur() {
	if !l.ti.Focused() {
		return
	}
	l.ti.Blur()
	l.emit(&native.Event{Type: native.EventBlur, Target: l})
}

func (l *Line) Focused() bool { return l.ti.Focused() }

// Pending returns and clears the command queued by Focus.
func (l *Line) Pending() tea.Cmd {
	cmd := l.pending
	l.pending = nil
	return cmd
}

// SetWidth sets the rendered width in cells, prompt included.
func (l *Line) SetWidth(w int) {
	l.width = max(w, 0)
	if l.width == 0 {
		l.ti.Width = 0
		return
	}
	// One cell is kept for the cursor at the end of the text.
	l.ti.Width = max(l.width-ansi.StringWidth(l.ti.Prompt)-1, 1)
}

func (l *Line) Width() int {
	if l.width > 0 {
		return l.width
	}
	return ansi.StringWidth(l.View())
}

// Apply sets widget attributes; nil fields are ignored.
func (l *Line) Apply(p native.Props) {
	l.props = l.props.Merge(p)
	if p.Kind != nil {
		l.kind = *p.Kind
		l.ti.EchoMode = textinput.EchoNormal
		if l.kind == native.KindPassword {
			l.ti.EchoMode = textinput.EchoPassword
		}
	}
	if p.ReadOnly != nil {
		l.readOnly = *p.ReadOnly
	}
	if p.MaxLength != nil {
		l.ti.CharLimit = *p.MaxLength
	}
	if p.Placeholder != nil {
		l.ti.Placeholder = *p.Placeholder
	}
	if p.PlaceholderColor != nil {
		l.ti.PlaceholderStyle = placeholderStyle(l.style.Placeholder, *p.PlaceholderColor)
	}
	if p.AutoCapitalize != nil {
		l.capitalize = *p.AutoCapitalize
	}
}

func (l *Line) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = l.handleKey(msg)
	case pasteMsg:
		if msg.target == l {
			l.edit(func() tea.Cmd {
				l.insertText(msg.text)
				return nil
			})
		}
	default:
		cmd = l.edit(func() tea.Cmd {
			var c tea.Cmd
			l.ti, c = l.ti.Update(msg)
			return c
		})
	}
	return tea.Batch(l.Pending(), cmd)
}

func (l *Line) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !l.ti.Focused() {
		return nil
	}
	ev := &native.Event{Type: native.EventKeyPress, Target: l, Key: msg.String()}
	l.emit(ev)
	// A key-press handler may have blurred the widget (submit).
	if ev.DefaultPrevented() || !l.ti.Focused() {
		return nil
	}
	return l.edit(func() tea.Cmd { return l.apply(msg) })
}

// edit runs fn and emits change and select for what it altered.
func (l *Line) edit(fn func() tea.Cmd) tea.Cmd {
	prevValue, prevSel := l.ti.Value(), l.selection()
	cmd := fn()
	if l.ti.Value() != prevValue {
		l.emit(&native.Event{Type: native.EventChange, Target: l})
	}
	if l.selection() != prevSel {
		l.emit(&native.Event{Type: native.EventSelect, Target: l})
	}
	return cmd
}

func (l *Line) apply(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, l.keys.Enter):
		return nil
	case key.Matches(msg, l.keys.ShiftLeft):
		l.extend(grapheme.Prev(l.ti.Value(), l.ti.Position()))
		return nil
	case key.Matches(msg, l.keys.ShiftRight):
		l.extend(grapheme.Next(l.ti.Value(), l.ti.Position()))
		return nil
	}

	km := l.ti.KeyMap
	typing := msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	deleting := key.Matches(msg,
		km.DeleteWordBackward, km.DeleteWordForward,
		km.DeleteAfterCursor, km.DeleteBeforeCursor,
		km.DeleteCharacterBackward, km.DeleteCharacterForward,
	)
	if key.Matches(msg, km.Paste) {
		if l.readOnly {
			return nil
		}
		return l.paste()
	}

	if l.readOnly && (typing || deleting) {
		return nil
	}
	if typing {
		msg.Runes = filterRunes(l.kind, l.capitalize, msg.Runes)
		if len(msg.Runes) == 0 {
			return nil
		}
	}
	if l.anchor >= 0 && (typing || deleting) {
		l.deleteSelection()
		if deleting {
			return nil
		}
	}

	l.anchor = -1
	var cmd tea.Cmd
	l.ti, cmd = l.ti.Update(msg)
	return cmd
}

// paste reads the clipboard off the update loop; the text comes back as a
// pasteMsg.
func (l *Line) paste() tea.Cmd {
	cb := l.clipboard
	if cb == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := cb.ReadText()
		if err != nil || s == "" {
			return nil
		}
		return pasteMsg{target: l, text: s}
	}
}

// insertText inserts s at the cursor like typing, replacing the selection.
func (l *Line) insertText(s string) {
	if l.readOnly || !l.ti.Focused() {
		return
	}
	rs := filterRunes(l.kind, l.capitalize, []rune(s))
	if len(rs) == 0 {
		return
	}
	if l.anchor >= 0 {
		l.deleteSelection()
	}
	l.ti, _ = l.ti.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: rs, Paste: true})
}

func (l *Line) extend(pos int) {
	if l.anchor < 0 {
		l.anchor = l.ti.Position()
	}
	l.ti.SetCursor(pos)
	if l.anchor == pos {
		l.anchor = -1
	}
}

func (l *Line) deleteSelection() {
	sel := l.selection()
	rs := []rune(l.ti.Value())
	l.ti.SetValue(string(rs[:sel.Start]) + string(rs[sel.End:]))
	l.ti.SetCursor(sel.Start)
	l.anchor = -1
}

func (l *Line) selection() native.Selection {
	pos := l.ti.Position()
	if l.anchor < 0 {
		return native.Selection{Start: pos, End: pos}
	}
	start, end := ordered(l.anchor, pos)
	return native.Selection{Start: start, End: end}
}

func (l *Line) runeLen() int { return utf8.RuneCountInString(l.ti.Value()) }

func (l *Line) View() string {
	sel := l.selection()
	if sel.Start == sel.End || l.ti.EchoMode != textinput.EchoNormal {
		return l.ti.View()
	}
	rs := []rune(l.ti.Value())
	return l.ti.PromptStyle.Render(l.ti.Prompt) +
		l.ti.TextStyle.Render(string(rs[:sel.Start])) +
		l.style.Selection.Render(string(rs[sel.Start:sel.End])) +
		l.ti.TextStyle.Render(string(rs[sel.End:]))
}
