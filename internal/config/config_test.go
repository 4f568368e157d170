package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/midgard-nav/internal/nav"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Window.SplitScreen {
		t.Error("expected split screen to be false by default")
	}

	// Test navigation defaults
	if !cfg.Navigation.ForceNavigation {
		t.Error("expected force_navigation to be true by default")
	}
	if cfg.Navigation.IgnoreDisabled {
		t.Error("expected ignore_disabled to be false by default")
	}
	if !cfg.Navigation.RemoveWidgetOnReturn {
		t.Error("expected remove_widget_on_return to be true by default")
	}

	// Test input defaults
	if len(cfg.Input.Accept) == 0 || cfg.Input.Accept[0] != "Return" {
		t.Errorf("expected accept bound to Return, got %v", cfg.Input.Accept)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  split_screen: true

navigation:
  force_navigation: false
  ignore_disabled: true
  stop_next_previous_propagation: true

selector:
  move_time: 250ms
  position: top_right
  offset_x: 4

input:
  accept: ["Space"]

audio:
  sfx_volume: 0.5
  muted: true

logging:
  level: "debug"
  log_file: "nav.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.SplitScreen {
		t.Error("expected split_screen to be true")
	}
	if cfg.Navigation.ForceNavigation {
		t.Error("expected force_navigation to be false")
	}
	// Fields absent from the file keep their defaults.
	if !cfg.Navigation.RemoveWidgetOnReturn {
		t.Error("expected remove_widget_on_return to keep its default")
	}
	if cfg.Selector.MoveTime != 250*time.Millisecond {
		t.Errorf("expected move_time 250ms, got %v", cfg.Selector.MoveTime)
	}
	if len(cfg.Input.Accept) != 1 || cfg.Input.Accept[0] != "Space" {
		t.Errorf("expected accept [Space], got %v", cfg.Input.Accept)
	}
	if len(cfg.Input.Back) == 0 {
		t.Error("expected back bindings to keep their defaults")
	}
	if !cfg.Audio.Muted {
		t.Error("expected muted to be true")
	}
	if cfg.Logging.LogFile != "nav.log" {
		t.Errorf("expected log file 'nav.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "pointer mode flag",
			setup: func() { *flagPointerMode = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Navigation.ForceNavigation {
					t.Error("expected force_navigation to be false in pointer mode")
				}
			},
			teardown: func() { *flagPointerMode = false },
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Audio.Muted {
					t.Error("expected audio to be muted")
				}
			},
			teardown: func() { *flagMute = false },
		},
		{
			name:  "trace nav flag",
			setup: func() { *flagTraceNav = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Subsystems["nav"] != "debug" || cfg.Logging.Subsystems["navpc"] != "debug" {
					t.Errorf("expected nav and navpc at debug, got %v", cfg.Logging.Subsystems)
				}
				if cfg.Logging.Level != "info" {
					t.Errorf("expected root level to stay info, got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagTraceNav = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("selector:\n  position: sideways\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected unknown selector position to be rejected")
	}
}

func TestLoadFromFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("input:\n  acept: [\"Return\"]\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected misspelled key to be rejected")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("empty file changed width to %d", cfg.Window.Width)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 1024\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv(EnvConfig, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("expected width 1024 from env file, got %d", cfg.Window.Width)
	}
	if cfg.Source() != path {
		t.Errorf("Source = %q, want %q", cfg.Source(), path)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected a missing explicit config to fail")
	}
}

func TestSaveWritesBackToSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("audio:\n  muted: false\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	*flagConfig = path
	defer func() { *flagConfig = "" }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Audio.Muted = true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if !loaded.Audio.Muted {
		t.Error("expected muted to be written back to the loaded file")
	}
}

func TestValidateLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logging LoggingConfig
		wantErr bool
	}{
		{"default", Default().Logging, false},
		{"subsystem debug", LoggingConfig{Level: "warn", Subsystems: map[string]string{"nav": "debug"}}, false},
		{"bad root", LoggingConfig{Level: "loud"}, true},
		{"bad subsystem", LoggingConfig{Level: "info", Subsystems: map[string]string{"nav": "loud"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging = tt.logging
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoggingOptions(t *testing.T) {
	l := LoggingConfig{Level: "warn", LogFile: "nav.log", Subsystems: map[string]string{"nav": "debug"}}
	opts := l.Options()

	if opts.Level != "warn" || !opts.Console {
		t.Errorf("options = %+v", opts)
	}
	if opts.File.Path != "nav.log" || opts.File.MaxSizeMB == 0 {
		t.Errorf("file config = %+v, want rotated nav.log", opts.File)
	}
	if opts.Subsystems["nav"] != "debug" {
		t.Errorf("subsystems = %v", opts.Subsystems)
	}
	if (LoggingConfig{}).Options().File.Path != "" {
		t.Error("expected no file output without log_file")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Navigation.IgnoreDisabled = true
	cfg.Selector.Position = "bottom"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if !loaded.Navigation.IgnoreDisabled {
		t.Error("expected ignore_disabled to survive save")
	}
	if loaded.Selector.Position != "bottom" {
		t.Errorf("expected position bottom, got %s", loaded.Selector.Position)
	}
}

func TestNavigationSettings(t *testing.T) {
	n := NavigationConfig{ForceNavigation: true, StopNextPreviousPropagation: true}
	s := n.Settings()
	if !s.ForceNavigation || !s.StopNextPreviousPropagation {
		t.Errorf("flags not carried over: %+v", s)
	}
	if s.IgnoreDisabled || s.RemoveWidgetOnReturn {
		t.Errorf("unexpected flags set: %+v", s)
	}
}

func TestSelectorOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      SelectorConfig
		wantPos  nav.SelectorPosition
		wantAnim bool
	}{
		{"snap center", SelectorConfig{Position: "center"}, nav.SelectorCenter, false},
		{"animated left", SelectorConfig{Position: "left", MoveTime: 100 * time.Millisecond}, nav.SelectorLeft, true},
		{"unknown falls back", SelectorConfig{Position: "nowhere"}, nav.SelectorCenter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.cfg.Options()
			if opts.Position != tt.wantPos {
				t.Errorf("position = %v, want %v", opts.Position, tt.wantPos)
			}
			if (opts.MoveCurve != nil) != tt.wantAnim {
				t.Errorf("animated = %v, want %v", opts.MoveCurve != nil, tt.wantAnim)
			}
		})
	}
}
