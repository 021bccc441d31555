package widget

import (
	"fmt"

	"github.com/iw2rmb/textfield/native"
)

// Applier is implemented by widgets that accept attribute updates.
type Applier interface {
	Apply(p native.Props)
}

// Updater applies attributes to Line and Area widgets.
type Updater struct{}

var _ native.Updater = Updater{}

func (Updater) UpdateView(h native.Handle, p native.Props) error {
	a, ok := h.(Applier)
	if !ok {
		return fmt.Errorf("widget: %T does not accept attributes: %w", h, native.ErrUnsupported)
	}
	a.Apply(p)
	return nil
}
