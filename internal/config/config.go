// Package config handles navigation demo configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/internal/nav"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Navigation NavigationConfig `yaml:"navigation"`
	Selector   SelectorConfig   `yaml:"selector"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`

	source string
}

// Source returns the file the config was loaded from, if any.
func (c *Config) Source() string { return c.source }

// WindowConfig holds display settings.
type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	SplitScreen bool   `yaml:"split_screen"`
}

// NavigationConfig holds the global navigation flags.
type NavigationConfig struct {
	// Keep navigation visuals on even while the mouse is in control.
	ForceNavigation bool `yaml:"force_navigation"`
	// Disabled elements can still receive navigation.
	IgnoreDisabled bool `yaml:"ignore_disabled"`
	// Next/Previous stop at the first container that handles them.
	StopNextPreviousPropagation bool `yaml:"stop_next_previous_propagation"`
	// Back returns to the parent widget unless a hook handles it.
	RemoveWidgetOnReturn bool `yaml:"remove_widget_on_return"`
}

// SelectorConfig holds selector cursor settings.
type SelectorConfig struct {
	MoveTime time.Duration `yaml:"move_time"` // 0 = snap
	Position string        `yaml:"position"`  // center, top, bottom, left, right, top_left, ...
	OffsetX  float32       `yaml:"offset_x"`
	OffsetY  float32       `yaml:"offset_y"`
}

// InputConfig maps navigation inputs to SDL scancode names.
type InputConfig struct {
	Up       []string `yaml:"up"`
	Down     []string `yaml:"down"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Next     []string `yaml:"next"`
	Previous []string `yaml:"previous"`
	Accept   []string `yaml:"accept"`
	Back     []string `yaml:"back"`
}

// AudioConfig holds UI sound settings.
type AudioConfig struct {
	SFXVolume     float64 `yaml:"sfx_volume"`
	Muted         bool    `yaml:"muted"`
	NavigateSound string  `yaml:"navigate_sound"` // WAV file paths, empty = silent
	SelectSound   string  `yaml:"select_sound"`
	BackSound     string  `yaml:"back_sound"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	// Levels for single subsystems ("nav", "navpc", "input"), over Level.
	Subsystems map[string]string `yaml:"subsystems,omitempty"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Midgard Navigation",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Navigation: NavigationConfig{
			ForceNavigation:      true,
			RemoveWidgetOnReturn: true,
		},
		Selector: SelectorConfig{
			MoveTime: 150 * time.Millisecond,
			Position: "left",
			OffsetX:  -12,
		},
		Input: InputConfig{
			Up:       []string{"Up", "W"},
			Down:     []string{"Down", "S"},
			Left:     []string{"Left", "A"},
			Right:    []string{"Right", "D"},
			Next:     []string{"E", "PageDown"},
			Previous: []string{"Q", "PageUp"},
			Accept:   []string{"Return", "Space"},
			Back:     []string{"Escape", "Backspace"},
		},
		Audio: AudioConfig{
			SFXVolume: 0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the navigation section into the core settings struct.
func (n NavigationConfig) Settings() nav.Settings {
	return nav.Settings{
		ForceNavigation:             n.ForceNavigation,
		IgnoreDisabled:              n.IgnoreDisabled,
		StopNextPreviousPropagation: n.StopNextPreviousPropagation,
		RemoveWidgetOnReturn:        n.RemoveWidgetOnReturn,
	}
}

// Options converts the selector section into selector options. An unknown
// position name falls back to center.
func (s SelectorConfig) Options() nav.SelectorOptions {
	pos, ok := nav.ParseSelectorPosition(s.Position)
	if !ok {
		pos = nav.SelectorCenter
	}
	opts := nav.SelectorOptions{
		Position: pos,
		Offset:   math.Vec2{X: s.OffsetX, Y: s.OffsetY},
	}
	if s.MoveTime > 0 {
		opts.MoveCurve = nav.LinearCurve(float32(s.MoveTime.Seconds()))
	}
	return opts
}

// Options converts the logging section into logger options. Console output
// is always on; the file is rotated with the default limits.
func (l LoggingConfig) Options() logger.Options {
	opts := logger.Options{
		Level:      l.Level,
		Subsystems: l.Subsystems,
		Console:    true,
	}
	if l.LogFile != "" {
		opts.File = logger.DefaultFileConfig(l.LogFile)
	}
	return opts
}
