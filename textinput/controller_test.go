package textinput

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/textfield/focus"
	"github.com/iw2rmb/textfield/mirror"
	"github.com/iw2rmb/textfield/native"
	"github.com/iw2rmb/textfield/selection"
)

func mount(t *testing.T, reg *focus.Registry, w *fakeWidget, cfg Config, opts ...Option) *Controller {
	t.Helper()
	c, err := New(reg, w, cfg, opts...)
	require.NoError(t, err)
	require.NoError(t, c.Mount())
	return c
}

func TestMount_AppliesDeclaredSelectionOnce(t *testing.T) {
	w := &fakeWidget{}
	span := selection.Span(2, 5)

	mount(t, focus.NewRegistry(), w, Config{DefaultValue: "hello world", Selection: &span})
	require.Equal(t, [][2]int{{2, 5}}, w.writes)
}

func TestUpdate_ReappliesOnlyWhenStale(t *testing.T) {
	w := &fakeWidget{}
	span := selection.Span(1, 3)
	c := mount(t, focus.NewRegistry(), w, Config{DefaultValue: "abcdef", Selection: &span})
	require.Len(t, w.writes, 1)

	require.NoError(t, c.Update(Config{DefaultValue: "abcdef", Selection: &span}))
	require.Len(t, w.writes, 1, "in-sync selection must not be rewritten")

	// Drift caused by the user.
	w.sel = native.Selection{Start: 6, End: 6}
	require.NoError(t, c.Update(Config{DefaultValue: "abcdef", Selection: &span}))
	require.Equal(t, [][2]int{{1, 3}, {1, 3}}, w.writes)

	caret := selection.At(4)
	require.NoError(t, c.Update(Config{DefaultValue: "abcdef", Selection: &caret}))
	require.Equal(t, [2]int{4, 4}, w.writes[len(w.writes)-1])
}

func TestMount_UnsupportedSelectionNeverSurfaces(t *testing.T) {
	var buf bytes.Buffer
	w := &fakeWidget{unsupported: true}
	span := selection.Span(0, 2)

	c, err := New(focus.NewRegistry(), w, Config{KeyboardType: KeyboardEmailAddress, Selection: &span},
		WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	require.NoError(t, c.Mount())
	require.NoError(t, c.Update(Config{KeyboardType: KeyboardEmailAddress, Selection: &span}))
	require.Empty(t, w.writes)
	require.Contains(t, buf.String(), "selection read rejected")
}

func TestMount_MultilineMirrorUsesFixedRows(t *testing.T) {
	w := &fakeWidget{width: 24}
	m := &fakeMirror{}

	mount(t, focus.NewRegistry(), w, Config{Multiline: true, NumberOfLines: 2, Value: String("hello")},
		WithMirror(m))
	require.Equal(t, "\n"+mirror.TrailingSpace, m.content)
	require.Equal(t, 24, m.width)
	require.Equal(t, 2, m.Height())
}

func TestMount_SingleLineLeavesMirrorAlone(t *testing.T) {
	w := &fakeWidget{width: 24}
	m := &fakeMirror{}

	mount(t, focus.NewRegistry(), w, Config{NumberOfLines: 2}, WithMirror(m))
	require.Empty(t, m.content)
	require.Zero(t, m.width)
}

func TestMount_InitialValue(t *testing.T) {
	w := &fakeWidget{}
	mount(t, focus.NewRegistry(), w, Config{DefaultValue: "draft"})
	require.Equal(t, "draft", w.value)

	w = &fakeWidget{}
	mount(t, focus.NewRegistry(), w, Config{DefaultValue: "draft", Value: String("fixed")})
	require.Equal(t, "fixed", w.value)
}

func TestUpdate_RestoresControlledValue(t *testing.T) {
	w := &fakeWidget{}
	c := mount(t, focus.NewRegistry(), w, Config{Value: String("abc")})

	w.typeText("d")
	require.Equal(t, "abcd", w.value)

	require.NoError(t, c.Update(Config{Value: String("abc")}))
	require.Equal(t, "abc", w.value)

	w.typeText("x")
	require.NoError(t, c.Update(Config{}))
	require.Equal(t, "abcx", w.value, "uncontrolled updates keep the typed value")
}

func TestFocusBlur_ThroughRegistry(t *testing.T) {
	reg := focus.NewRegistry()
	w1, w2 := &fakeWidget{}, &fakeWidget{}
	c1 := mount(t, reg, w1, Config{})
	c2 := mount(t, reg, w2, Config{})

	c1.Focus()
	require.True(t, c1.IsFocused())
	require.False(t, c2.IsFocused())

	c2.Focus()
	require.True(t, c2.IsFocused())
	require.False(t, c1.IsFocused())
	require.False(t, w1.focused)

	c1.Blur()
	require.True(t, c2.IsFocused(), "blurring a non-current field leaves the record")

	c2.Blur()
	require.Nil(t, reg.Current())
}

func TestMount_AutoFocus(t *testing.T) {
	reg := focus.NewRegistry()
	w := &fakeWidget{}
	c := mount(t, reg, w, Config{AutoFocus: true})
	require.True(t, c.IsFocused())
	require.True(t, w.focused)
}

func TestUnmount_ReleasesFocusAndDropsEvents(t *testing.T) {
	reg := focus.NewRegistry()
	w := &fakeWidget{}
	var changes int
	c := mount(t, reg, w, Config{OnChangeText: func(string) { changes++ }})

	c.Focus()
	c.Unmount()
	require.Nil(t, reg.Current())
	require.False(t, c.Mounted())

	w.typeText("x")
	c.HandleNative(&native.Event{Type: native.EventChange, Target: w})
	require.Zero(t, changes)
}

func TestClear_BypassesChangeEvents(t *testing.T) {
	w := &fakeWidget{}
	var changes int
	c := mount(t, focus.NewRegistry(), w, Config{DefaultValue: "abc", OnChangeText: func(string) { changes++ }})

	c.Clear()
	require.Empty(t, w.value)
	require.Zero(t, changes)
}

func TestRender_PropsReachUpdater(t *testing.T) {
	w := &fakeWidget{}
	c := mount(t, focus.NewRegistry(), w, Config{
		KeyboardType:    KeyboardEmailAddress,
		SecureTextEntry: true,
		Editable:        Bool(false),
		MaxLength:       12,
		Placeholder:     "secret",
	}, WithUpdater(w))

	require.Len(t, w.props, 1)
	p := w.props[0]
	require.Equal(t, native.KindPassword, *p.Kind)
	require.True(t, *p.ReadOnly)
	require.Equal(t, 12, *p.MaxLength)
	require.Equal(t, "secret", *p.Placeholder)
	require.True(t, *p.AutoCorrect)
	require.Equal(t, "sentences", *p.AutoCapitalize)
	require.Equal(t, native.KindPassword, c.InputKind())

	kind := native.KindURL
	require.NoError(t, c.SetNativeProps(native.Props{Kind: &kind}))
	require.Len(t, w.props, 2)
	require.Equal(t, native.KindURL, *w.props[1].Kind)
	require.Nil(t, w.props[1].ReadOnly)
}

type failingUpdater struct{}

func (failingUpdater) UpdateView(native.Handle, native.Props) error { return errors.New("boom") }

func TestSetNativeProps_WrapsUpdaterError(t *testing.T) {
	w := &fakeWidget{}
	c, err := New(focus.NewRegistry(), w, Config{}, WithUpdater(failingUpdater{}))
	require.NoError(t, err)
	require.ErrorContains(t, c.Mount(), "render widget: boom")
	require.ErrorContains(t, c.SetNativeProps(native.Props{}), "set native props: boom")
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	reg := focus.NewRegistry()
	cases := []Config{
		{KeyboardType: "dvorak"},
		{AutoCapitalize: "shout"},
		{NumberOfLines: -1},
		{Rows: -2},
		{MaxLength: -1},
		{Selection: &selection.Range{Start: -1}},
	}
	for _, cfg := range cases {
		_, err := New(reg, &fakeWidget{}, cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	}

	_, err := New(nil, &fakeWidget{}, Config{})
	require.Error(t, err)
	_, err = New(reg, nil, Config{})
	require.Error(t, err)
}

func TestRelayout_ResyncsWidth(t *testing.T) {
	w := &fakeWidget{width: 10, value: "a\nb\nc"}
	m := &fakeMirror{}
	c := mount(t, focus.NewRegistry(), w, Config{Multiline: true, DefaultValue: "a\nb\nc"}, WithMirror(m))
	require.Equal(t, 10, m.width)
	require.Equal(t, 3, m.Height())

	w.width = 30
	c.Relayout()
	require.Equal(t, 30, m.width)
}
