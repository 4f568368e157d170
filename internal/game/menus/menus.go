// Package menus defines the demo's navigable screens: the main menu, the
// options screen with its video and audio tabs, and the yes/no prompt.
package menus

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// Display orders.
const (
	ZMenu   = 0
	ZPrompt = 10
)

// Button palette.
var (
	colorNormal    = nav.Color{R: 0.15, G: 0.15, B: 0.2, A: 1}
	colorHovered   = nav.Color{R: 0.25, G: 0.25, B: 0.35, A: 1}
	colorPressed   = nav.Color{R: 0.1, G: 0.3, B: 0.5, A: 1}
	colorText      = nav.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	colorNavigated = nav.Color{R: 0.95, G: 0.75, B: 0.2, A: 1}
)

// Layout receives element rectangles. *viewport.Viewport implements it.
type Layout interface {
	SetGeometry(e nav.ElementID, r math.Rect)
}

// Sounds plays UI cues. *audio.Player implements it.
type Sounds interface {
	Bind(e *nav.Element)
	PlayBack() bool
	SetMuted(muted bool)
	SetVolume(vol float64)
}

// Config wires the menus to the rest of the demo.
type Config struct {
	Nav      *nav.Navigator
	Layout   Layout
	Sounds   Sounds // may be nil
	Selector nav.SelectorOptions
	Settings *config.Config // edited by the options screen
	Width    int
	Height   int
	Language language.Tag // labels are formatted for it; zero is English

	// Play runs when Play is selected. Quit runs when the quit prompt is
	// accepted. Changed runs when the options screen is left after an edit.
	Play    func()
	Quit    func()
	Changed func(cfg *config.Config)

	Logger *zap.Logger
}

// Menus builds and lays out the demo screens.
type Menus struct {
	cfg     Config
	log     *zap.Logger
	printer *message.Printer

	width, height float32

	screens map[nav.ContainerID]screen
}

// screen is the per-instance state of a menu container.
type screen interface {
	nav.Hooks
	build(b *nav.Builder)
	layout()
}

// New returns the demo menus. A nil Settings uses the defaults.
func New(cfg Config) *Menus {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Settings == nil {
		cfg.Settings = config.Default()
	}
	if cfg.Language == language.Und {
		cfg.Language = language.English
	}
	return &Menus{
		cfg:     cfg,
		log:     log,
		printer: message.NewPrinter(cfg.Language),
		width:   float32(cfg.Width),
		height:  float32(cfg.Height),
		screens: make(map[nav.ContainerID]screen),
	}
}

// OpenMain displays the main menu.
func (m *Menus) OpenMain() (*nav.Container, error) {
	return m.cfg.Nav.Open(m.MainClass(), ZMenu)
}

// Settings returns the settings edited by the options screen.
func (m *Menus) Settings() *config.Config {
	return m.cfg.Settings
}

// Resize lays out every live screen for the new size.
func (m *Menus) Resize(width, height int) {
	m.width, m.height = float32(width), float32(height)
	m.prune()
	for _, s := range m.screens {
		s.layout()
	}
}

// class returns a container class whose instances are built by newScreen.
func (m *Menus) class(name string, opts nav.ContainerOptions, newScreen func(c *nav.Container) screen) *nav.Class {
	return &nav.Class{
		Name:    name,
		Options: opts,
		Hooks: func(c *nav.Container) nav.Hooks {
			m.prune()
			s := newScreen(c)
			m.screens[c.ID()] = s
			return s
		},
		Build: func(b *nav.Builder) {
			if s, ok := m.screens[b.Container().ID()]; ok {
				s.build(b)
			}
		},
	}
}

// prune forgets destroyed containers.
func (m *Menus) prune() {
	for id := range m.screens {
		if m.cfg.Nav.Container(id) == nil {
			delete(m.screens, id)
		}
	}
}

// button registers a styled element and gives it the UI cues.
func (m *Menus) button(b *nav.Builder, name, text string) nav.ElementID {
	id := b.Element(nav.ElementOptions{
		Name:               name,
		Text:               text,
		DefaultTextColor:   colorText,
		NavigatedTextColor: colorNavigated,
		UseTextColor:       true,
		Styles:             [3]nav.Color{colorNormal, colorHovered, colorPressed},
		Animation:          nav.NewAnimation(0.12),
	})
	if m.cfg.Sounds != nil {
		m.cfg.Sounds.Bind(m.cfg.Nav.Element(id))
	}
	return id
}

func (m *Menus) place(ids []nav.ElementID, rects []math.Rect) {
	if m.cfg.Layout == nil {
		return
	}
	for i, id := range ids {
		if i < len(rects) {
			m.cfg.Layout.SetGeometry(id, rects[i])
		}
	}
}

func (m *Menus) back() {
	if m.cfg.Sounds != nil {
		m.cfg.Sounds.PlayBack()
	}
}

// elementNamed returns the name of e, or "" for nil.
func elementNamed(e *nav.Element) string {
	if e == nil {
		return ""
	}
	return e.Name()
}
