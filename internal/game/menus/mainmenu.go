package menus

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/nav"
)

type mainMenu struct {
	nav.NopHooks
	m *Menus
	c *nav.Container

	buttons []nav.ElementID
}

// MainClass is the root menu: Play, Options and Quit.
func (m *Menus) MainClass() *nav.Class {
	return m.class("main_menu", nav.ContainerOptions{DisallowRemoveIfRoot: true}, func(c *nav.Container) screen {
		return &mainMenu{m: m, c: c}
	})
}

func (s *mainMenu) build(b *nav.Builder) {
	s.buttons = []nav.ElementID{
		s.m.button(b, "play", "Play"),
		s.m.button(b, "options", "Options"),
		s.m.button(b, "quit", "Quit"),
	}
	b.Selector(s.m.cfg.Selector)
}

func (s *mainMenu) layout() {
	n := len(s.buttons)
	x := (s.m.width - buttonWidth) / 2
	y := (s.m.height - columnHeight(n)) / 2
	s.m.place(s.buttons, column(x, y, n))
}

func (s *mainMenu) PreSetup(bool) { s.layout() }

func (s *mainMenu) OnSelect(e *nav.Element) {
	switch elementNamed(e) {
	case "play":
		if s.m.cfg.Play == nil {
			s.m.log.Info("play selected")
			return
		}
		s.m.cfg.Play()
	case "options":
		if _, err := s.c.PushWidget(s.m.OptionsClass(), true, false, ZMenu); err != nil {
			s.m.log.Error("open options", zap.Error(err))
		}
	case "quit":
		s.m.confirmQuit(s.c)
	}
}

// Back on the root menu asks before quitting.
func (s *mainMenu) OnReturn() bool {
	s.m.back()
	s.m.confirmQuit(s.c)
	return true
}

func (m *Menus) confirmQuit(from *nav.Container) {
	decided := func(accepted bool) {
		m.log.Info("quit prompt answered", zap.Bool("accepted", accepted))
		if accepted && m.cfg.Quit != nil {
			m.cfg.Quit()
		}
	}
	if _, err := from.PushPromptWidget(m.PromptClass(), decided, "Quit", "Leave the demo?", false, ZPrompt); err != nil {
		m.log.Error("open quit prompt", zap.Error(err))
	}
}
