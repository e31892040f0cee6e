package main

import (
	"context"
	"fmt"

	"github.com/rcldesign/asset-manager-sub006/internal/config"
	"github.com/rcldesign/asset-manager-sub006/internal/gateway"
	"github.com/rcldesign/asset-manager-sub006/internal/handler"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/server"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/internal/sync"
	"github.com/rcldesign/asset-manager-sub006/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// Standalone deployments serve entity data from the in-memory gateway
	// with no extra permission checks. Embedded deployments replace both
	// with adapters over the host application's stores and ACLs.
	entityGateway := gateway.NewMemoryGateway()
	oracle := &gateway.AllowAllOracle{}

	var notifier sync.Notifier
	if cfg.Sync.WebhookURL != "" {
		webhookNotifier := sync.NewWebhookNotifier(cfg.Sync.WebhookURL, log)
		defer webhookNotifier.Close()
		notifier = webhookNotifier
	}

	engine := sync.NewEngine(storages, entityGateway, oracle, notifier, cfg.Sync, log)

	handlers, err := handler.NewHandlers(engine, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating servers")
	}

	retention := workers.NewRetentionWorker(engine, cfg.Sync, log)
	defer retention.Stop()
	workers.NewWorkers(retention).Run()

	servers.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
