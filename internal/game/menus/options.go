package menus

import (
	"math"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/nav"
)

// toggle is one options button: its label for the current settings and
// the edit selecting it makes.
type toggle struct {
	name  string
	text  func(m *Menus, cfg *config.Config) string
	apply func(m *Menus, cfg *config.Config)
}

var videoToggles = []toggle{
	{
		name: "fullscreen",
		text: func(m *Menus, cfg *config.Config) string { return m.printer.Sprintf("Fullscreen: %s", onOff(cfg.Window.Fullscreen)) },
		apply: func(_ *Menus, cfg *config.Config) {
			cfg.Window.Fullscreen = !cfg.Window.Fullscreen
		},
	},
	{
		name: "vsync",
		text: func(m *Menus, cfg *config.Config) string { return m.printer.Sprintf("VSync: %s", onOff(cfg.Window.VSync)) },
		apply: func(_ *Menus, cfg *config.Config) {
			cfg.Window.VSync = !cfg.Window.VSync
		},
	},
}

var audioToggles = []toggle{
	{
		name: "sound",
		text: func(m *Menus, cfg *config.Config) string { return m.printer.Sprintf("Sound: %s", onOff(!cfg.Audio.Muted)) },
		apply: func(m *Menus, cfg *config.Config) {
			cfg.Audio.Muted = !cfg.Audio.Muted
			if m.cfg.Sounds != nil {
				m.cfg.Sounds.SetMuted(cfg.Audio.Muted)
			}
		},
	},
	{
		name: "volume",
		text: func(m *Menus, cfg *config.Config) string {
			return m.printer.Sprintf("Volume: %d%%", int(math.Round(cfg.Audio.SFXVolume*100)))
		},
		apply: func(m *Menus, cfg *config.Config) {
			cfg.Audio.SFXVolume = stepVolume(cfg.Audio.SFXVolume)
			if m.cfg.Sounds != nil {
				m.cfg.Sounds.SetVolume(cfg.Audio.SFXVolume)
			}
		},
	},
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// stepVolume moves to the next quarter step, wrapping from full to silent.
func stepVolume(v float64) float64 {
	next := math.Floor(v*4+1e-6) + 1
	if next > 4 {
		return 0
	}
	return next / 4
}

// options holds the video and audio tabs side by side over a Back button.
// Next and Previous switch tabs.
type options struct {
	nav.NopHooks
	m *Menus
	c *nav.Container

	tabs   []*tab
	back   nav.ElementID
	edited bool
}

// tab is one nested column of toggles.
type tab struct {
	nav.NopHooks
	m *Menus
	c *nav.Container

	toggles []toggle
	buttons []nav.ElementID
}

// OptionsClass is the options screen.
func (m *Menus) OptionsClass() *nav.Class {
	return m.class("options", nav.ContainerOptions{}, func(c *nav.Container) screen {
		return &options{m: m, c: c}
	})
}

func (m *Menus) tabClass(name string, toggles []toggle, created func(*tab)) *nav.Class {
	return m.class(name, nav.ContainerOptions{}, func(c *nav.Container) screen {
		t := &tab{m: m, c: c, toggles: toggles}
		created(t)
		return t
	})
}

func (s *options) build(b *nav.Builder) {
	add := func(t *tab) { s.tabs = append(s.tabs, t) }
	b.Child(s.m.tabClass("video_tab", videoToggles, add))
	b.Child(s.m.tabClass("audio_tab", audioToggles, add))
	s.back = s.m.button(b, "back", "Back")
	b.Selector(s.m.cfg.Selector)
}

func (t *tab) build(b *nav.Builder) {
	for _, tg := range t.toggles {
		t.buttons = append(t.buttons, t.m.button(b, tg.name, tg.text(t.m, t.m.cfg.Settings)))
	}
}

// Tabs are placed by the options screen that holds them.
func (t *tab) layout() {}

func (s *options) layout() {
	const columnGap = 40
	rows := 0
	for _, t := range s.tabs {
		rows = max(rows, len(t.buttons))
	}
	width := float32(len(s.tabs))*buttonWidth + float32(len(s.tabs)-1)*columnGap
	height := columnHeight(rows) + sectionGap + buttonHeight

	x := (s.m.width - width) / 2
	y := (s.m.height - height) / 2
	for i, t := range s.tabs {
		s.m.place(t.buttons, column(x+float32(i)*(buttonWidth+columnGap), y, len(t.buttons)))
	}
	s.m.place([]nav.ElementID{s.back}, column((s.m.width-buttonWidth)/2, y+columnHeight(rows)+sectionGap, 1))
}

func (s *options) PreSetup(bool) { s.layout() }

// The first toggle of the first tab takes focus on open.
func (s *options) InitialFocusElement() (nav.ElementID, bool) {
	if len(s.tabs) == 0 || len(s.tabs[0].buttons) == 0 {
		return nav.ElementID{}, false
	}
	return s.tabs[0].buttons[0], true
}

func (s *options) OnSelect(e *nav.Element) {
	name := elementNamed(e)
	if name == "back" {
		s.leave()
		return
	}
	for _, t := range s.tabs {
		for _, tg := range t.toggles {
			if tg.name != name {
				continue
			}
			tg.apply(s.m, s.m.cfg.Settings)
			e.SetText(tg.text(s.m, s.m.cfg.Settings))
			s.edited = true
			return
		}
	}
}

func (s *options) OnReturn() bool {
	s.leave()
	return true
}

func (s *options) OnNext() bool     { return s.switchTab(1) }
func (s *options) OnPrevious() bool { return s.switchTab(-1) }

// switchTab focuses the first toggle of the tab step places away from the
// one holding the current element.
func (s *options) switchTab(step int) bool {
	if len(s.tabs) == 0 {
		return false
	}
	i := s.tabOf(s.c.Current())
	switch {
	case i >= 0:
		i = (i + step + len(s.tabs)) % len(s.tabs)
	case step > 0:
		i = 0
	default:
		i = len(s.tabs) - 1
	}

	if t := s.tabs[i]; len(t.buttons) > 0 {
		if e := s.m.cfg.Nav.Element(t.buttons[0]); e != nil {
			e.SetFocus()
		}
	}
	return true
}

func (s *options) tabOf(id nav.ElementID) int {
	for i, t := range s.tabs {
		for _, b := range t.buttons {
			if b == id {
				return i
			}
		}
	}
	return -1
}

func (s *options) leave() {
	s.m.back()
	if s.edited && s.m.cfg.Changed != nil {
		s.m.cfg.Changed(s.m.cfg.Settings)
	}
	s.edited = false
	s.c.ReturnToParent(false, ZMenu)
}
