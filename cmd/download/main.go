// Command download fetches the dataset's raw input files into the raw/
// directory. The files to fetch are listed under dataset.downloads in the
// configuration; with no entries configured the command fails and the raw
// files must be placed by hand.
//
// Flags:
//
//	--config  path to YAML config file (overrides CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cldf-datasets/antipassives/internal/app"
	"github.com/cldf-datasets/antipassives/internal/app/downloader"
	"github.com/cldf-datasets/antipassives/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if *configFlag != "" {
		os.Setenv("CONFIG_PATH", *configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("download starting", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	d := downloader.New(logger, cfg.Dataset.RawDir)
	if err := d.Fetch(ctx, cfg.Dataset.Downloads); err != nil {
		logger.Error("download failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("download completed", slog.Int("files", len(cfg.Dataset.Downloads)))
}
