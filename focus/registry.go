// Package focus tracks which editable widget currently holds input focus.
package focus

import (
	"sync"

	"github.com/iw2rmb/textfield/native"
)

// Registry records the single focused handle.
//
// A Registry is shared by every controller of one program; the zero value is
// ready to use. Native focus/blur calls happen outside the lock so event
// handlers may query the registry.
type Registry struct {
	mu      sync.Mutex
	current native.Handle
}

// NewRegistry returns an empty registry with nothing focused.
func NewRegistry() *Registry {
	return &Registry{}
}

// Focus records h as focused and directs native focus to it.
//
// Focusing the current handle is a no-op. A previously recorded handle is
// replaced and natively blurred, so at most one widget shows focus.
func (r *Registry) Focus(h native.Handle) {
	if h == nil {
		return
	}
	r.mu.Lock()
	prev := r.current
	if prev == h {
		r.mu.Unlock()
		return
	}
	r.current = h
	r.mu.Unlock()

	if prev != nil {
		prev.Blur()
	}
	h.Focus()
}

// Blur directs native blur to h and clears the record when h is current.
func (r *Registry) Blur(h native.Handle) {
	if h == nil {
		return
	}
	r.mu.Lock()
	if r.current == h {
		r.current = nil
	}
	r.mu.Unlock()

	h.Blur()
}

// Current returns the focused handle, or nil.
func (r *Registry) Current() native.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// IsFocused reports whether h is the recorded focused handle.
func (r *Registry) IsFocused(h native.Handle) bool {
	return h != nil && r.Current() == h
}
