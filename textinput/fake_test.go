package textinput

import (
	"strings"

	"github.com/iw2rmb/textfield/native"
)

// fakeWidget behaves like a minimal native widget: focus/blur emit events and
// selection may be marked unsupported.
type fakeWidget struct {
	value       string
	placeholder string
	sel         native.Selection
	width       int
	focused     bool

	unsupported bool
	selectAlls  int
	writes      [][2]int
	props       []native.Props

	sink func(*native.Event)
}

func (w *fakeWidget) Value() string       { return w.value }
func (w *fakeWidget) SetValue(s string)   { w.value = s }
func (w *fakeWidget) Placeholder() string { return w.placeholder }
func (w *fakeWidget) Width() int          { return w.width }

func (w *fakeWidget) Selection() (native.Selection, error) {
	if w.unsupported {
		return native.Selection{}, native.ErrUnsupported
	}
	return w.sel, nil
}

func (w *fakeWidget) SetSelectionRange(start, end int) error {
	if w.unsupported {
		return native.ErrUnsupported
	}
	w.writes = append(w.writes, [2]int{start, end})
	w.sel = native.Selection{Start: start, End: end}
	return nil
}

func (w *fakeWidget) SelectAll() error {
	w.selectAlls++
	n := len([]rune(w.value))
	w.sel = native.Selection{Start: 0, End: n}
	return nil
}

func (w *fakeWidget) Focus() {
	if w.focused {
		return
	}
	w.focused = true
	w.emit(&native.Event{Type: native.EventFocus, Target: w})
}

func (w *fakeWidget) Blur() {
	if !w.focused {
		return
	}
	w.focused = false
	w.emit(&native.Event{Type: native.EventBlur, Target: w})
}

func (w *fakeWidget) SetEventSink(fn func(*native.Event)) { w.sink = fn }

func (w *fakeWidget) emit(ev *native.Event) {
	if w.sink != nil {
		w.sink(ev)
	}
}

// typeText appends s like a keystroke would and emits change + select.
func (w *fakeWidget) typeText(s string) {
	w.value += s
	n := len([]rune(w.value))
	w.sel = native.Selection{Start: n, End: n}
	w.emit(&native.Event{Type: native.EventChange, Target: w})
	w.emit(&native.Event{Type: native.EventSelect, Target: w})
}

// press emits a key-press event and reports whether it was prevented.
func (w *fakeWidget) press(k string) bool {
	ev := &native.Event{Type: native.EventKeyPress, Target: w, Key: k}
	w.emit(ev)
	return ev.DefaultPrevented()
}

func (w *fakeWidget) UpdateView(h native.Handle, p native.Props) error {
	w.props = append(w.props, p)
	return nil
}

type fakeMirror struct {
	width   int
	content string
}

func (m *fakeMirror) SetWidth(v int)      { m.width = v }
func (m *fakeMirror) SetContent(s string) { m.content = s }
func (m *fakeMirror) Height() int         { return strings.Count(m.content, "\n") + 1 }
