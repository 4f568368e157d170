package menus

import "github.com/Faultbox/midgard-nav/internal/nav"

// prompt is a yes/no question. It answers No when backed out of.
type prompt struct {
	nav.NopHooks
	m *Menus
	c *nav.Container

	yes, no nav.ElementID
}

// PromptClass is the yes/no prompt pushed with PushPromptWidget.
func (m *Menus) PromptClass() *nav.Class {
	return m.class("prompt", nav.ContainerOptions{FullscreenWhenSplitScreen: true}, func(c *nav.Container) screen {
		return &prompt{m: m, c: c}
	})
}

func (s *prompt) build(b *nav.Builder) {
	s.yes = s.m.button(b, "yes", "Yes")
	s.no = s.m.button(b, "no", "No")
	b.Selector(s.m.cfg.Selector)
}

func (s *prompt) layout() {
	x := (s.m.width - rowWidth(2)) / 2
	y := s.m.height/2 + sectionGap
	s.m.place([]nav.ElementID{s.yes, s.no}, row(x, y, 2))
}

func (s *prompt) PreSetup(bool) { s.layout() }

func (s *prompt) InitialFocusElement() (nav.ElementID, bool) {
	return s.no, true
}

func (s *prompt) OnSelect(e *nav.Element) {
	switch elementNamed(e) {
	case "yes":
		s.c.Decide(true)
	case "no":
		s.c.Decide(false)
	}
}

func (s *prompt) OnReturn() bool {
	s.m.back()
	s.c.Decide(false)
	return true
}
