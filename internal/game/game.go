// Package game implements the demo's main loop: it wires the window,
// input, navigation, sounds and menus together and runs them each frame.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/engine/audio"
	"github.com/Faultbox/midgard-nav/internal/engine/input"
	"github.com/Faultbox/midgard-nav/internal/engine/ui2d"
	"github.com/Faultbox/midgard-nav/internal/engine/viewport"
	"github.com/Faultbox/midgard-nav/internal/engine/window"
	"github.com/Faultbox/midgard-nav/internal/game/menus"
	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/internal/navpc"
)

// Game is the demo instance.
type Game struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *ui2d.Renderer
	input    *input.Input
	router   *input.Router

	viewport   *viewport.Viewport
	nav        *nav.Navigator
	controller *navpc.Controller
	sounds     *audio.Player
	menus      *menus.Menus
	drawer     *ui2d.Drawer
}

// New creates the demo and opens the main menu.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(cfg.Window, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = ui2d.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.viewport = viewport.New(logger.Named("viewport"), cfg.Window.SplitScreen)
	g.nav, err = nav.New(nav.Config{
		Settings: cfg.Navigation.Settings(),
		Host:     g.viewport,
		Logger:   logger.Named("nav"),
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create navigator: %w", err)
	}
	g.viewport.Bind(g.nav)
	g.controller = navpc.New(logger.Named("navpc"))
	g.controller.Bind(g.nav)

	g.sounds = audio.New(cfg.Audio, logger.Named("audio"))
	if err := g.sounds.Init(); err != nil {
		g.log.Warn("sounds disabled", zap.Error(err))
	} else if err := g.sounds.Load(); err != nil {
		g.log.Warn("failed to load sounds", zap.Error(err))
	}

	g.menus = menus.New(menus.Config{
		Nav:      g.nav,
		Layout:   g.viewport,
		Sounds:   g.sounds,
		Selector: cfg.Selector.Options(),
		Settings: cfg,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Quit:     g.Stop,
		Changed:  g.applySettings,
		Logger:   logger.Named("menus"),
	})

	g.input = input.New(logger.Named("input"))
	bindings, err := input.NewBindings(cfg.Input)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to bind input: %w", err)
	}
	g.router = &input.Router{
		Bindings: bindings,
		Nav:      g.nav,
		Pointer:  g.viewport,
		Devices:  g.controller,
	}

	g.drawer = ui2d.NewDrawer(g.nav, g.viewport, ui2d.DefaultTheme())

	if _, err := g.menus.OpenMain(); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to open main menu: %w", err)
	}

	g.log.Info("initialized successfully")
	return g, nil
}

// Run starts the main loop. It returns once the window is closed or the
// quit prompt is accepted.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(event.Width, event.Height)
				g.menus.Resize(event.Width, event.Height)
				continue
			}
			g.router.Dispatch(event)
		}

		// 2. Deliver focus and advance animations
		g.viewport.Update(float32(dt))

		// 3. Render
		g.render()

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Stop ends the main loop after the current frame.
func (g *Game) Stop() {
	g.running = false
}

// Close cleans up resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.sounds != nil {
		g.sounds.Close()
	}
	if g.input != nil {
		g.input.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// applySettings applies and persists settings edited in the options screen.
func (g *Game) applySettings(cfg *config.Config) {
	if err := g.window.SetFullscreen(cfg.Window.Fullscreen); err != nil {
		g.log.Warn("failed to change fullscreen", zap.Error(err))
	}
	if err := g.window.SetVSync(cfg.Window.VSync); err != nil {
		g.log.Warn("failed to change vsync", zap.Error(err))
	}
	if err := cfg.Save(); err != nil {
		g.log.Warn("failed to save settings", zap.Error(err))
		return
	}
	g.log.Info("settings saved")
}

func (g *Game) render() {
	width, height := g.renderer.GetScreenSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.05, 0.05, 0.08, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	g.renderer.Begin()
	g.drawer.Draw(g.renderer)
	g.renderer.End()
}
