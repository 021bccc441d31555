package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/textfield/native"
)

func focusedArea(t *testing.T, value string) (*Area, *recorder) {
	t.Helper()
	a := NewArea(DefaultStyle())
	a.SetValue(value)
	a.Focus()
	r := &recorder{}
	a.SetEventSink(r.sink)
	return a, r
}

func TestArea_EnterInsertsNewline(t *testing.T) {
	a, r := focusedArea(t, "ab")

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a.Update(runes("c"))

	require.Equal(t, "ab\nc", a.Value())
	sel, err := a.Selection()
	require.NoError(t, err)
	require.Equal(t, native.Selection{Start: 4, End: 4}, sel)
	require.Equal(t, []native.EventType{
		native.EventKeyPress, native.EventChange, native.EventSelect,
		native.EventKeyPress, native.EventChange, native.EventSelect,
	}, r.types())
}

func TestArea_VerticalMovesKeepColumn(t *testing.T) {
	a, _ := focusedArea(t, "abcd\nxy\nlmno")
	require.NoError(t, a.SetSelectionRange(3, 3))

	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, _ := a.Selection()
	require.Equal(t, 7, sel.Start, "clamped to the end of the short line")

	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, _ = a.Selection()
	require.Equal(t, 10, sel.Start)

	a.Update(tea.KeyMsg{Type: tea.KeyUp})
	a.Update(tea.KeyMsg{Type: tea.KeyUp})
	sel, _ = a.Selection()
	require.Equal(t, 2, sel.Start)
}

func TestArea_ShiftSelectionThenBackspace(t *testing.T) {
	a, r := focusedArea(t, "hello")

	a.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	a.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	sel, _ := a.Selection()
	require.Equal(t, native.Selection{Start: 3, End: 5}, sel)

	r.events = nil
	a.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	require.Equal(t, "hel", a.Value())
	require.Equal(t, []native.EventType{native.EventKeyPress, native.EventChange, native.EventSelect}, r.types())
}

func TestArea_ArrowCollapsesSelection(t *testing.T) {
	a, _ := focusedArea(t, "hello")
	require.NoError(t, a.SetSelectionRange(1, 4))

	a.Update(tea.KeyMsg{Type: tea.KeyLeft})

	sel, _ := a.Selection()
	require.Equal(t, native.Selection{Start: 1, End: 1}, sel)
}

func TestArea_HomeEndAndWords(t *testing.T) {
	a, _ := focusedArea(t, "one two\nthree")
	require.NoError(t, a.SetSelectionRange(5, 5))

	a.Update(tea.KeyMsg{Type: tea.KeyHome})
	sel, _ := a.Selection()
	require.Equal(t, 0, sel.Start)

	a.Update(tea.KeyMsg{Type: tea.KeyEnd})
	sel, _ = a.Selection()
	require.Equal(t, 7, sel.Start)

	a.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	sel, _ = a.Selection()
	require.Equal(t, 4, sel.Start)

	a.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	sel, _ = a.Selection()
	require.Equal(t, 7, sel.Start)
}

func TestArea_MaxLengthCapsInsert(t *testing.T) {
	a, _ := focusedArea(t, "")
	limit := 3
	a.Apply(native.Props{MaxLength: &limit})

	a.Update(runes("abcdef"))

	require.Equal(t, "abc", a.Value())
}

func TestArea_ReadOnlyIgnoresEdits(t *testing.T) {
	a, _ := focusedArea(t, "ab")
	readOnly := true
	a.Apply(native.Props{ReadOnly: &readOnly})

	a.Update(runes("x"))
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	require.Equal(t, "ab", a.Value())
}

func TestArea_SelectionAlwaysSupported(t *testing.T) {
	a, r := focusedArea(t, "abc")
	kind := native.KindEmail
	a.Apply(native.Props{Kind: &kind})

	require.NoError(t, a.SetSelectionRange(0, 2))
	sel, err := a.Selection()
	require.NoError(t, err)
	require.Equal(t, native.Selection{Start: 0, End: 2}, sel)
	require.Empty(t, r.events)

	require.NoError(t, a.SelectAll())
	sel, _ = a.Selection()
	require.Equal(t, native.Selection{Start: 0, End: 3}, sel)
	require.Equal(t, []native.EventType{native.EventSelect}, r.types())
}

func TestArea_PreventedKeyPressSkipsEdit(t *testing.T) {
	a, r := focusedArea(t, "")
	r.onKey = func(ev *native.Event) { ev.PreventDefault() }

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, "", a.Value())
	require.Equal(t, []native.EventType{native.EventKeyPress}, r.types())
}

func TestArea_ViewWrapsAtWidth(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	a := NewArea(DefaultStyle())
	a.SetSize(10, 0)
	a.SetValue("alpha beta gamma")

	view := a.View()
	require.Greater(t, lipgloss.Height(view), 1)
	require.Contains(t, view, "alpha")
	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 10)
	}
}

func TestArea_ViewShowsPlaceholderWhenEmpty(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	a := NewArea(DefaultStyle())
	placeholder := "Notes"
	a.Apply(native.Props{Placeholder: &placeholder})

	require.Equal(t, "Notes", a.Placeholder())
	require.Contains(t, a.View(), "Notes")
}

func TestArea_ViewportFollowsCursor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	a, _ := focusedArea(t, "")
	a.SetSize(10, 2)
	for _, s := range []string{"one", "two", "three"} {
		a.Update(runes(s))
		a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	a.Update(runes("four"))

	require.Contains(t, a.View(), "four")
	require.NotContains(t, a.View(), "one")
}
