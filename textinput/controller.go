package textinput

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/iw2rmb/textfield/focus"
	"github.com/iw2rmb/textfield/mirror"
	"github.com/iw2rmb/textfield/native"
	"github.com/iw2rmb/textfield/selection"
)

// Controller supervises one editable widget: focus through the shared
// registry, declared selection, mirror sizing, and event normalization.
//
// Controllers are not safe for concurrent use; the host serializes calls.
type Controller struct {
	id  string
	cfg Config

	reg     *focus.Registry
	handle  native.Handle
	mirror  native.Mirror
	updater native.Updater
	sync    *selection.Synchronizer
	keys    KeyMap
	logger  *log.Logger

	mounted bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithMirror sets the shadow element used for multi-line sizing.
func WithMirror(m native.Mirror) Option {
	return func(c *Controller) { c.mirror = m }
}

// WithUpdater sets the collaborator that applies widget attributes.
func WithUpdater(u native.Updater) Option {
	return func(c *Controller) { c.updater = u }
}

// WithLogger routes controller diagnostics to l; nil keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithKeyMap replaces the keys the controller interprets, such as submit.
func WithKeyMap(km KeyMap) Option {
	return func(c *Controller) { c.keys = km }
}

// New returns an unmounted controller for h.
func New(reg *focus.Registry, h native.Handle, cfg Config, opts ...Option) (*Controller, error) {
	if reg == nil {
		return nil, errors.New("textinput: nil focus registry")
	}
	if h == nil {
		return nil, errors.New("textinput: nil handle")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		id:     uuid.NewString(),
		cfg:    cfg.WithDefaults(),
		reg:    reg,
		handle: h,
		keys:   DefaultKeyMap(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sync = selection.NewSynchronizer(c.logger)
	return c, nil
}

func (c *Controller) ID() string            { return c.id }
func (c *Controller) Config() Config        { return c.cfg }
func (c *Controller) Handle() native.Handle { return c.handle }
func (c *Controller) Mounted() bool         { return c.mounted }

// InputKind is the widget kind the current config renders.
func (c *Controller) InputKind() native.InputKind {
	return KindFor(c.cfg.KeyboardType, c.cfg.SecureTextEntry)
}

// Mount renders the widget attributes, sets the initial text, subscribes to
// native events, applies the declared selection and sizes the mirror.
func (c *Controller) Mount() error {
	if c.mounted {
		return nil
	}
	if err := c.render(); err != nil {
		return err
	}
	c.handle.SetValue(c.cfg.initialValue())
	if src, ok := c.handle.(native.Source); ok {
		src.SetEventSink(c.HandleNative)
	}
	c.mounted = true

	c.applySelection()
	c.updateMirror()

	if c.cfg.AutoFocus {
		c.Focus()
	}
	c.logf("mounted kind=%s multiline=%t", c.InputKind(), c.cfg.Multiline)
	return nil
}

// Update swaps in a new configuration and re-synchronizes the widget.
// Mirror sizing is left to change events.
func (c *Controller) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg.WithDefaults()
	if !c.mounted {
		return nil
	}
	if err := c.render(); err != nil {
		return err
	}
	if c.cfg.Value != nil && c.handle.Value() != *c.cfg.Value {
		c.handle.SetValue(*c.cfg.Value)
	}
	c.applySelection()
	return nil
}

// Unmount releases focus and stops event delivery.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	if c.IsFocused() {
		c.reg.Blur(c.handle)
	}
	if src, ok := c.handle.(native.Source); ok {
		src.SetEventSink(nil)
	}
	c.mounted = false
	c.logf("unmounted")
}

func (c *Controller) Focus() { c.reg.Focus(c.handle) }

func (c *Controller) Blur() { c.reg.Blur(c.handle) }

func (c *Controller) IsFocused() bool { return c.reg.IsFocused(c.handle) }

// Clear empties the widget directly; no change event is produced.
func (c *Controller) Clear() { c.handle.SetValue("") }

// SelectAll asks the widget to select its whole content.
func (c *Controller) SelectAll() error { return c.handle.SelectAll() }

// SetNativeProps forwards a partial attribute update to the updater.
func (c *Controller) SetNativeProps(p native.Props) error {
	if c.updater == nil {
		return nil
	}
	if err := c.updater.UpdateView(c.handle, p); err != nil {
		return fmt.Errorf("set native props: %w", err)
	}
	return nil
}

// Relayout re-syncs the mirror after the container was resized.
func (c *Controller) Relayout() {
	if c.mounted {
		c.updateMirror()
	}
}

func (c *Controller) render() error {
	if c.updater == nil {
		return nil
	}
	if err := c.updater.UpdateView(c.handle, renderProps(c.cfg)); err != nil {
		return fmt.Errorf("render widget: %w", err)
	}
	return nil
}

func (c *Controller) applySelection() {
	c.sync.Apply(c.handle, c.cfg.Selection)
}

func (c *Controller) updateMirror() {
	mirror.Update(c.handle, c.mirror, c.cfg.mirrorOptions())
}

func (c *Controller) logf(format string, args ...any) {
	c.logger.Printf("textinput %s: "+format, append([]any{c.id}, args...)...)
}
