// Package field is a Bubble Tea component pairing a terminal widget with a
// textinput.Controller.
//
// Single-line fields render a widget.Line. Multi-line fields render a
// widget.Area whose height is driven by a widget.Shadow mirror.
package field

import (
	"fmt"
	"log"

	bubbletextinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textfield/focus"
	"github.com/iw2rmb/textfield/native"
	"github.com/iw2rmb/textfield/textinput"
	"github.com/iw2rmb/textfield/widget"
)

// editor is what field needs from a widget.
type editor interface {
	native.Handle
	native.Source
	widget.Applier

	Update(msg tea.Msg) tea.Cmd
	View() string
	SetWidth(w int)
	Focused() bool
	Pending() tea.Cmd
}

type options struct {
	style  widget.Style
	logger *log.Logger
	keys   *textinput.KeyMap
	prompt string
	width  int
}

// Option configures a Model.
type Option func(*options)

func WithStyle(s widget.Style) Option {
	return func(o *options) { o.style = s }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithKeyMap overrides the controller's submit binding.
func WithKeyMap(km textinput.KeyMap) Option {
	return func(o *options) { o.keys = &km }
}

// WithPrompt sets the prompt of a single-line field.
func WithPrompt(p string) Option {
	return func(o *options) { o.prompt = p }
}

// WithWidth sets the initial width in cells.
func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

// Model is a mounted text field.
type Model struct {
	ctrl      *textinput.Controller
	widget    editor
	shadow    *widget.Shadow
	multiline bool
}

// New builds the widget matching cfg.Multiline and mounts a controller on it.
func New(reg *focus.Registry, cfg textinput.Config, opts ...Option) (Model, error) {
	o := options{style: widget.DefaultStyle()}
	for _, opt := range opts {
		opt(&o)
	}

	m := Model{multiline: cfg.Multiline}
	ctrlOpts := []textinput.Option{textinput.WithUpdater(widget.Updater{})}

	if cfg.Multiline {
		area := widget.NewArea(o.style)
		area.SetWidth(o.width)
		m.shadow = widget.NewShadow(o.style)
		m.shadow.OnLayout = area.SetHeight
		m.widget = area
		ctrlOpts = append(ctrlOpts, textinput.WithMirror(m.shadow))
	} else {
		line := widget.NewLine(o.style)
		line.SetPrompt(o.prompt)
		line.SetWidth(o.width)
		m.widget = line
	}
	if o.logger != nil {
		ctrlOpts = append(ctrlOpts, textinput.WithLogger(o.logger))
	}
	if o.keys != nil {
		ctrlOpts = append(ctrlOpts, textinput.WithKeyMap(*o.keys))
	}

	ctrl, err := textinput.New(reg, m.widget, cfg, ctrlOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("field: %w", err)
	}
	if err := ctrl.Mount(); err != nil {
		return Model{}, fmt.Errorf("field: mount: %w", err)
	}
	m.ctrl = ctrl
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.multiline {
		return nil
	}
	return bubbletextinput.Blink
}

// Update routes key messages to the widget while it holds focus. Other
// messages (cursor blink, mouse) always reach it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !m.widget.Focused() {
		return m, nil
	}
	return m, m.widget.Update(msg)
}

func (m Model) View() string { return m.widget.View() }

func (m Model) Controller() *textinput.Controller { return m.ctrl }

func (m Model) Value() string { return m.widget.Value() }

func (m Model) Multiline() bool { return m.multiline }

// Height is the measured height of a multi-line field, or 1.
func (m Model) Height() int {
	if m.shadow == nil {
		return 1
	}
	return m.shadow.Height()
}

// Focus takes focus through the registry and returns the cursor blink, if
// the widget started one.
func (m Model) Focus() tea.Cmd {
	m.ctrl.Focus()
	return m.widget.Pending()
}

func (m Model) Blur() { m.ctrl.Blur() }

func (m Model) IsFocused() bool { return m.ctrl.IsFocused() }

func (m Model) Clear() { m.ctrl.Clear() }

func (m Model) SetNativeProps(p native.Props) error { return m.ctrl.SetNativeProps(p) }

// SetConfig replaces the field configuration. The widget is chosen by New,
// so Multiline cannot change.
func (m Model) SetConfig(cfg textinput.Config) error {
	if cfg.Multiline != m.multiline {
		return fmt.Errorf("%w: multiline cannot change after mount", textinput.ErrInvalidConfig)
	}
	return m.ctrl.Update(cfg)
}

// SetWidth resizes the widget and re-measures the mirror.
func (m Model) SetWidth(w int) {
	m.widget.SetWidth(w)
	m.ctrl.Relayout()
}

// Close unmounts the controller, releasing focus.
func (m Model) Close() { m.ctrl.Unmount() }
