// Package logger sets up the demo's zap loggers. Each subsystem ("nav",
// "navpc", "input", ...) gets a named child whose level can be raised or
// lowered on its own, so focus traces can run at debug while the rest of
// the demo stays at info.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the root logger. It stays nil until Init runs; packages go through
// Named instead of touching it directly.
var Log *zap.Logger

var (
	levels = map[string]zapcore.Level{}
	base   = zapcore.InfoLevel
)

// FileConfig holds rotating file output settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation settings sized for navigation traces.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Options configures Init.
type Options struct {
	Level      string
	Subsystems map[string]string
	File       FileConfig
	Console    bool
}

// ParseLevel parses a level name. The empty string means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return lvl, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// Init builds the root logger. Cores are opened at the most verbose level
// any subsystem asks for; Named narrows each child back down.
func Init(opts Options) error {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	subs := make(map[string]zapcore.Level, len(opts.Subsystems))
	floor := lvl
	for name, s := range opts.Subsystems {
		l, err := ParseLevel(s)
		if err != nil {
			return fmt.Errorf("subsystem %s: %w", name, err)
		}
		subs[name] = l
		floor = min(floor, l)
	}

	var cores []zapcore.Core
	if opts.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(true)),
			zapcore.AddSync(os.Stdout),
			floor,
		))
	}
	if opts.File.Path != "" {
		w := &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(false)),
			zapcore.AddSync(w),
			floor,
		))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	base = lvl
	levels = subs
	return nil
}

func encoderConfig(console bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
	if console {
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// Named returns the logger for a subsystem at its configured level. Before
// Init it returns a no-op logger so packages built in tests stay quiet.
func Named(name string) *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	lvl, ok := levels[name]
	if !ok {
		lvl = base
	}
	l := Log.Named(name)
	if !l.Core().Enabled(lvl) {
		return l
	}
	return l.WithOptions(zap.IncreaseLevel(lvl))
}

// Sync flushes any buffered log entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
