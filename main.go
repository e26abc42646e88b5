package main

import (
	"flag"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/soocke/region-clip-go/app"
	"github.com/soocke/region-clip-go/config"
)

func main() {
	cfgPath := flag.String("config", filepath.Join(xdg.ConfigHome, "region-clip", "config.json"), "path to the config file")
	imgPath := flag.String("image", "", "page image to open on startup")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	application := app.NewApp("Region Clip", cfg, logger)
	application.Start(*imgPath)
}
