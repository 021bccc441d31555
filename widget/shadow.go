package widget

import "github.com/charmbracelet/lipgloss"

// Shadow is a hidden mirror of an Area. It is never drawn; it wraps its
// content at the visible widget's width and reports the resulting height.
type Shadow struct {
	style   lipgloss.Style
	width   int
	content string
	height  int

	// OnLayout is called with the new natural height whenever it changes.
	OnLayout func(height int)
}

func NewShadow(style Style) *Shadow {
	return &Shadow{style: style.Mirror}
}

func (s *Shadow) SetWidth(w int) {
	s.width = max(w, 0)
	s.measure()
}

func (s *Shadow) SetContent(c string) {
	s.content = c
	s.measure()
}

func (s *Shadow) Content() string { return s.content }

func (s *Shadow) Height() int { return s.height }

func (s *Shadow) measure() {
	st := s.style
	if s.width > 0 {
		st = st.Width(s.width)
	}
	h := lipgloss.Height(st.Render(s.content))
	if h == s.height {
		return
	}
	s.height = h
	if s.OnLayout != nil {
		s.OnLayout(h)
	}
}
