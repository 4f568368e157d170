// Package main is the entry point for the navigation demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/game"
	"github.com/Faultbox/midgard-nav/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Options()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Named("main")
	log.Info("=== Midgard Navigation Demo ===", zap.String("config", cfg.Source()))
	log.Sugar().Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		log.Error("failed to create demo", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		log.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("demo closed normally")
}
