package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"solarsync/internal/api"
	"solarsync/internal/config"
	"solarsync/internal/logging"
	"solarsync/internal/models"
	"solarsync/internal/store"
	"solarsync/internal/sync"
)

// maskSiteID keeps only the last four digits for log output.
func maskSiteID(id int64) string {
	s := fmt.Sprintf("%d", id)
	if len(s) > 4 {
		s = s[len(s)-4:]
	}
	return "***" + s
}

func main() {
	var (
		configPath string
		siteID     int64
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.Int64Var(&siteID, "site", 0, "Only export this energy site ID")
	debug := flag.Bool("debug", false, "Enable debug output")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	cfg.Debug = *debug

	client := api.NewClient(cfg)
	syncer := sync.New(client, store.New(cfg.Download.Dir), cfg, logger)

	ctx := context.Background()
	// Capture now once: every site's bucket boundaries agree within a run.
	now := time.Now()

	products, err := client.Products(ctx)
	if err != nil {
		logger.Fatal("Failed to list products", zap.Error(err))
	}

	var sites []models.Product
	for _, p := range products {
		if !p.IsEnergySite() {
			continue
		}
		if siteID != 0 && p.EnergySiteID != siteID {
			continue
		}
		sites = append(sites, p)
	}
	if len(sites) == 0 {
		logger.Fatal("No energy sites found")
	}

	exitCode := 0
	for _, site := range sites {
		logger.Info("exporting site",
			zap.String("site", maskSiteID(site.EnergySiteID)),
			zap.String("resource_type", site.ResourceType))

		res, err := syncer.Run(ctx, now, site)
		if err != nil {
			// Site-fatal: skip to the next site rather than aborting the run.
			logger.Error("site export aborted",
				zap.String("site", maskSiteID(site.EnergySiteID)),
				zap.Error(err))
			exitCode = 1
			continue
		}
		if res.Failed > 0 {
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}
