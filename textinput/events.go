package textinput

import (
	"github.com/iw2rmb/textfield/native"
	"github.com/iw2rmb/textfield/selection"
)

// Event is the unified event delivered to Config callbacks.
type Event struct {
	Type native.EventType
	// Text is the widget value when the event was dispatched.
	Text string
	// Key is set for key-press events.
	Key string
	// Selection is set for selection-change events.
	Selection *selection.Range
	// Target is the ID of the controller that dispatched the event.
	Target string

	Native *native.Event
}

// PreventDefault stops the widget's default action for key-press events and
// suppresses submit handling.
func (e *Event) PreventDefault() {
	if e.Native != nil {
		e.Native.PreventDefault()
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.Native != nil && e.Native.DefaultPrevented()
}

// HandleNative is the sink for the widget's native events.
//
// Events are dropped while the controller is not mounted.
func (c *Controller) HandleNative(ev *native.Event) {
	if ev == nil || !c.mounted {
		return
	}
	switch ev.Type {
	case native.EventBlur:
		c.handleBlur(ev)
	case native.EventChange:
		c.handleChange(ev)
	case native.EventFocus:
		c.handleFocus(ev)
	case native.EventKeyPress:
		c.handleKeyPress(ev)
	case native.EventSelect:
		c.handleSelectionChange(ev)
	}
}

func (c *Controller) normalize(ev *native.Event) *Event {
	target := ev.Target
	if target == nil {
		target = c.handle
	}
	return &Event{
		Type:   ev.Type,
		Text:   target.Value(),
		Key:    ev.Key,
		Target: c.id,
		Native: ev,
	}
}

func (c *Controller) handleBlur(ev *native.Event) {
	if fn := c.cfg.OnBlur; fn != nil {
		fn(c.normalize(ev))
	}
}

func (c *Controller) handleChange(ev *native.Event) {
	e := c.normalize(ev)
	c.updateMirror()
	if fn := c.cfg.OnChange; fn != nil {
		fn(e)
	}
	if fn := c.cfg.OnChangeText; fn != nil {
		fn(e.Text)
	}
}

func (c *Controller) handleFocus(ev *native.Event) {
	if fn := c.cfg.OnFocus; fn != nil {
		fn(c.normalize(ev))
	}
	if c.cfg.ClearTextOnFocus {
		c.Clear()
	}
	if c.cfg.SelectTextOnFocus {
		if err := c.handle.SelectAll(); err != nil {
			c.logf("select on focus rejected: %v", err)
		}
	}
}

func (c *Controller) handleKeyPress(ev *native.Event) {
	e := c.normalize(ev)
	if fn := c.cfg.OnKeyPress; fn != nil {
		fn(e)
	}
	if e.DefaultPrevented() || !matches(c.keys.Submit, ev.Key) {
		return
	}
	if fn := c.cfg.OnSubmitEditing; fn != nil {
		fn(e)
	}
	// Recomputed per key-press so a Multiline change applies without remount.
	if c.cfg.ShouldBlurOnSubmit() {
		c.Blur()
	}
}

func (c *Controller) handleSelectionChange(ev *native.Event) {
	fn := c.cfg.OnSelectionChange
	if fn == nil {
		return
	}
	target := ev.Target
	if target == nil {
		target = c.handle
	}
	live, err := target.Selection()
	if err != nil {
		c.logf("selection read rejected: %v", err)
		return
	}

	// Without a declared selection every live change is reported.
	if declared := c.cfg.Selection; declared != nil && !selection.IsStale(declared, live) {
		return
	}

	e := c.normalize(ev)
	r := selection.FromLive(live)
	e.Selection = &r
	fn(e)
}
