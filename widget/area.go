package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textfield/internal/grapheme"
	"github.com/iw2rmb/textfield/native"
)

// Area is a multi-line editor. Content soft-wraps at the widget width and
// scrolls inside a viewport once it is taller than the widget.
//
// Offsets are rune offsets into the value; "\n" counts as one rune.
type Area struct {
	emitter

	value  []rune
	cursor int
	// anchor is the fixed end of the selection; -1 when collapsed.
	anchor int

	focused     bool
	readOnly    bool
	maxLength   int
	capitalize  string
	placeholder string

	keys  KeyMap
	style Style
	props native.Props

	placeholderStyle lipgloss.Style

	width, height int
	viewport      viewport.Model
}

var (
	_ native.Handle = (*Area)(nil)
	_ native.Source = (*Area)(nil)
)

func NewArea(style Style) *Area {
	a := &Area{
		anchor:           -1,
		keys:             DefaultKeyMap(),
		style:            style,
		placeholderStyle: style.Placeholder,
		viewport:         viewport.New(0, 0),
	}
	a.rebuild()
	return a
}

func (a *Area) Value() string { return string(a.value) }

func (a *Area) SetValue(s string) {
	rs := []rune(s)
	if a.maxLength > 0 && len(rs) > a.maxLength {
		rs = rs[:a.maxLength]
	}
	a.value = rs
	a.cursor = len(rs)
	a.anchor = -1
	a.rebuild()
}

func (a *Area) Placeholder() string { return a.placeholder }

// Props returns every attribute applied so far.
func (a *Area) Props() native.Props { return a.props }

func (a *Area) Selection() (native.Selection, error) { return a.selection(), nil }

func (a *Area) SetSelectionRange(start, end int) error {
	end = clamp(end, 0, len(a.value))
	start = clamp(start, 0, end)
	a.cursor = end
	a.anchor = start
	if start == end {
		a.anchor = -1
	}
	a.rebuild()
	return nil
}

func (a *Area) SelectAll() error {
	a.cursor = len(a.value)
	a.anchor = -1
	if len(a.value) > 0 {
		a.anchor = 0
	}
	a.rebuild()
	a.emit(&native.Event{Type: native.EventSelect, Target: a})
	return nil
}

func (a *Area) Focus() {
	if a.focused {
		return
	}
	a.focused = true
	a.rebuild()
	a.emit(&native.Event{Type: native.EventFocus, Target: a})
}

func (a *Area) Blur() {
	if !a.focused {
		return
	}
	a.focused = false
	a.rebuild()
	a.emit(&native.Event{Type: native.EventBlur, Target: a})
}

func (a *Area) Focused() bool { return a.focused }

// Pending is always nil: Area draws its own steady cursor.
func (a *Area) Pending() tea.Cmd { return nil }

// Width is the set width, or the widest line when no width was set.
func (a *Area) Width() int {
	if a.width > 0 {
		return a.width
	}
	w := 0
	for _, line := range strings.Split(string(a.value), "\n") {
		w = max(w, grapheme.Width(line))
	}
	return w
}

func (a *Area) Height() int { return a.height }

// SetSize sets the widget size in cells. A height of 0 shows every row.
func (a *Area) SetSize(width, height int) {
	a.width = max(width, 0)
	a.height = max(height, 0)
	a.viewport.Width = a.width
	a.viewport.Height = a.height
	a.rebuild()
}

func (a *Area) SetWidth(w int) { a.SetSize(w, a.height) }

// SetHeight is the layout hook a Shadow reports measured heights to.
func (a *Area) SetHeight(h int) { a.SetSize(a.width, h) }

// Apply sets widget attributes; nil fields are ignored. Kind is recorded but
// does not restrict a multi-line editor.
func (a *Area) Apply(p native.Props) {
	a.props = a.props.Merge(p)
	if p.ReadOnly != nil {
		a.readOnly = *p.ReadOnly
	}
	if p.MaxLength != nil {
		a.maxLength = max(*p.MaxLength, 0)
	}
	if p.Placeholder != nil {
		a.placeholder = *p.Placeholder
	}
	if p.PlaceholderColor != nil {
		a.placeholderStyle = placeholderStyle(a.style.Placeholder, *p.PlaceholderColor)
	}
	if p.AutoCapitalize != nil {
		a.capitalize = *p.AutoCapitalize
	}
	a.rebuild()
}

func (a *Area) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.handleKey(msg)
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (a *Area) handleKey(msg tea.KeyMsg) {
	if !a.focused {
		return
	}
	ev := &native.Event{Type: native.EventKeyPress, Target: a, Key: msg.String()}
	a.emit(ev)
	if ev.DefaultPrevented() || !a.focused {
		return
	}

	prevValue, prevSel := string(a.value), a.selection()
	a.apply(msg)
	a.rebuild()
	a.follow()
	if string(a.value) != prevValue {
		a.emit(&native.Event{Type: native.EventChange, Target: a})
	}
	if a.selection() != prevSel {
		a.emit(&native.Event{Type: native.EventSelect, Target: a})
	}
}

func (a *Area) apply(msg tea.KeyMsg) {
	// Pasted text is always literal.
	if msg.Type == tea.KeyRunes && msg.Paste {
		a.insert(msg.Runes)
		return
	}

	km := a.keys
	switch {
	case key.Matches(msg, km.Left):
		a.moveTo(a.collapse(true, grapheme.Prev(string(a.value), a.cursor)), false)
	case key.Matches(msg, km.Right):
		a.moveTo(a.collapse(false, grapheme.Next(string(a.value), a.cursor)), false)
	case key.Matches(msg, km.Up):
		a.moveTo(a.vertical(-1), false)
	case key.Matches(msg, km.Down):
		a.moveTo(a.vertical(1), false)

	case key.Matches(msg, km.ShiftLeft):
		a.moveTo(grapheme.Prev(string(a.value), a.cursor), true)
	case key.Matches(msg, km.ShiftRight):
		a.moveTo(grapheme.Next(string(a.value), a.cursor), true)
	case key.Matches(msg, km.ShiftUp):
		a.moveTo(a.vertical(-1), true)
	case key.Matches(msg, km.ShiftDown):
		a.moveTo(a.vertical(1), true)

	case key.Matches(msg, km.WordLeft):
		a.moveTo(a.wordLeft(), false)
	case key.Matches(msg, km.WordRight):
		a.moveTo(a.wordRight(), false)

	case key.Matches(msg, km.Home):
		a.moveTo(a.lineStart(a.cursor), false)
	case key.Matches(msg, km.End):
		a.moveTo(a.lineEnd(a.cursor), false)

	case key.Matches(msg, km.Backspace):
		a.deleteBackward()
	case key.Matches(msg, km.Delete):
		a.deleteForward()
	case key.Matches(msg, km.Enter):
		a.insert([]rune{'\n'})

	default:
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
			a.insert(msg.Runes)
		}
	}
}

// collapse returns where a plain arrow lands: on the matching selection edge
// when a range is active, otherwise at next.
func (a *Area) collapse(left bool, next int) int {
	if a.anchor < 0 {
		return next
	}
	sel := a.selection()
	if left {
		return sel.Start
	}
	return sel.End
}

func (a *Area) moveTo(pos int, extend bool) {
	pos = clamp(pos, 0, len(a.value))
	if !extend {
		a.anchor = -1
		a.cursor = pos
		return
	}
	if a.anchor < 0 {
		a.anchor = a.cursor
	}
	a.cursor = pos
	if a.anchor == a.cursor {
		a.anchor = -1
	}
}

func (a *Area) insert(rs []rune) {
	if a.readOnly {
		return
	}
	rs = filterRunes(native.KindText, a.capitalize, rs)
	if len(rs) == 0 {
		return
	}
	a.deleteSelection()
	if a.maxLength > 0 {
		room := a.maxLength - len(a.value)
		if room <= 0 {
			return
		}
		if len(rs) > room {
			rs = rs[:room]
		}
	}
	out := make([]rune, 0, len(a.value)+len(rs))
	out = append(out, a.value[:a.cursor]...)
	out = append(out, rs...)
	out = append(out, a.value[a.cursor:]...)
	a.value = out
	a.cursor += len(rs)
}

func (a *Area) deleteBackward() {
	if a.readOnly {
		return
	}
	if a.deleteSelection() || a.cursor == 0 {
		return
	}
	a.remove(grapheme.Prev(string(a.value), a.cursor), a.cursor)
}

func (a *Area) deleteForward() {
	if a.readOnly {
		return
	}
	if a.deleteSelection() || a.cursor == len(a.value) {
		return
	}
	a.remove(a.cursor, grapheme.Next(string(a.value), a.cursor))
}

func (a *Area) deleteSelection() bool {
	sel := a.selection()
	if sel.Start == sel.End {
		a.anchor = -1
		return false
	}
	a.remove(sel.Start, sel.End)
	return true
}

func (a *Area) remove(start, end int) {
	a.value = append(a.value[:start:start], a.value[end:]...)
	a.cursor = start
	a.anchor = -1
}

func (a *Area) lineStart(pos int) int {
	for pos > 0 && a.value[pos-1] != '\n' {
		pos--
	}
	return pos
}

func (a *Area) lineEnd(pos int) int {
	for pos < len(a.value) && a.value[pos] != '\n' {
		pos++
	}
	return pos
}

// vertical moves dir logical lines keeping the rune column.
func (a *Area) vertical(dir int) int {
	start := a.lineStart(a.cursor)
	col := a.cursor - start
	switch {
	case dir < 0:
		if start == 0 {
			return 0
		}
		prev := a.lineStart(start - 1)
		return min(prev+col, start-1)
	default:
		end := a.lineEnd(a.cursor)
		if end == len(a.value) {
			return end
		}
		next := end + 1
		return min(next+col, a.lineEnd(next))
	}
}

func (a *Area) wordLeft() int {
	clusters, bounds := a.clusters()
	i := clusterIndex(bounds, a.cursor)
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return bounds[i]
}

func (a *Area) wordRight() int {
	clusters, bounds := a.clusters()
	i := clusterIndex(bounds, a.cursor)
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return bounds[i]
}

func (a *Area) clusters() ([]string, []int) {
	text := string(a.value)
	return grapheme.Split(text), grapheme.Boundaries(text)
}

// clusterIndex returns the number of clusters that end at or before pos.
func clusterIndex(bounds []int, pos int) int {
	for i, b := range bounds {
		if b >= pos {
			return i
		}
	}
	return len(bounds) - 1
}

func (a *Area) selection() native.Selection {
	if a.anchor < 0 {
		return native.Selection{Start: a.cursor, End: a.cursor}
	}
	start, end := ordered(a.anchor, a.cursor)
	return native.Selection{Start: start, End: end}
}

func (a *Area) View() string {
	if a.height == 0 {
		return a.wrap(a.renderContent())
	}
	return a.viewport.View()
}

func (a *Area) rebuild() {
	a.viewport.SetContent(a.wrap(a.renderContent()))
}

func (a *Area) wrap(s string) string {
	if a.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(a.width).Render(s)
}

// follow scrolls the viewport so the cursor row stays visible.
func (a *Area) follow() {
	h := a.viewport.Height - a.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := a.cursorRow()
	y := a.viewport.YOffset
	if row < y {
		a.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		a.viewport.SetYOffset(row - h + 1)
	}
}

// cursorRow is the wrapped row holding the cursor.
func (a *Area) cursorRow() int {
	prefix := string(a.value[:a.cursor]) + "_"
	return lipgloss.Height(a.wrap(prefix)) - 1
}

func (a *Area) renderContent() string {
	if len(a.value) == 0 && a.placeholder != "" {
		if !a.focused {
			return a.placeholderStyle.Render(a.placeholder)
		}
		first, rest := splitFirst(a.placeholder)
		return a.style.Cursor.Render(first) + a.placeholderStyle.Render(rest)
	}

	var b strings.Builder
	sel := a.selection()
	var run []rune
	runSelected := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		st := a.style.Text
		if runSelected {
			st = a.style.Selection
		}
		b.WriteString(st.Render(string(run)))
		run = run[:0]
	}

	for i := 0; i <= len(a.value); i++ {
		atCursor := a.focused && i == a.cursor
		if i == len(a.value) {
			flush()
			if atCursor {
				b.WriteString(a.style.Cursor.Render(" "))
			}
			break
		}
		r := a.value[i]
		if r == '\n' {
			flush()
			if atCursor {
				b.WriteString(a.style.Cursor.Render(" "))
			}
			b.WriteByte('\n')
			continue
		}
		if atCursor {
			flush()
			b.WriteString(a.style.Cursor.Render(string(r)))
			continue
		}
		selected := i >= sel.Start && i < sel.End
		if selected != runSelected {
			flush()
			runSelected = selected
		}
		run = append(run, r)
	}
	return b.String()
}

func splitFirst(s string) (string, string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
