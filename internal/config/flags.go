package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagPointerMode = flag.Bool("pointer-mode", false, "Hide navigation visuals while the mouse is in control")
	flagMute        = flag.Bool("mute", false, "Disable UI sounds")
	flagTraceNav    = flag.Bool("trace-nav", false, "Log focus changes and widget transfers at debug level")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagPointerMode {
		cfg.Navigation.ForceNavigation = false
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
	if *flagTraceNav {
		if cfg.Logging.Subsystems == nil {
			cfg.Logging.Subsystems = make(map[string]string)
		}
		cfg.Logging.Subsystems["nav"] = "debug"
		cfg.Logging.Subsystems["navpc"] = "debug"
	}
}
