package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/internal/nav"
)

// Save writes the config back to the file it was loaded from, or to the
// user's config directory when it came from defaults only.
func (c *Config) Save() error {
	path := c.source
	if path == "" {
		path = filepath.Join(ConfigDir(), configFile)
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports settings that cannot be used as-is.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Selector.MoveTime < 0 {
		return fmt.Errorf("negative selector move_time %v", c.Selector.MoveTime)
	}
	if c.Selector.Position != "" {
		if _, ok := nav.ParseSelectorPosition(c.Selector.Position); !ok {
			return fmt.Errorf("unknown selector position %q", c.Selector.Position)
		}
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		return fmt.Errorf("sfx_volume %v out of range [0,1]", c.Audio.SFXVolume)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	for name, lvl := range c.Logging.Subsystems {
		if _, err := logger.ParseLevel(lvl); err != nil {
			return fmt.Errorf("logging subsystem %s: %w", name, err)
		}
	}
	return nil
}
