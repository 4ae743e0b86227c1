package main

import (
	"context"
	"log"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	mcpserver "github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/mcp"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	userSvc := services.NewUserService(db, logger)
	waterSvc := services.NewWaterService(db, nil)
	stepSvc := services.NewStepService(db, nil)
	healthSvc := services.NewHealthService(db)
	summarySvc := services.NewSummaryService(waterSvc, stepSvc, healthSvc)
	tipSvc := services.NewTipService(db, logger, cfg.ShareBaseURL)
	wellnessSvc := services.NewWellnessService(cfg.WellnessBaseURL, logger)

	srv := mcpserver.NewServer(cfg, userSvc, waterSvc, stepSvc, healthSvc, summarySvc, tipSvc, wellnessSvc)

	logger.Info("starting health assistant MCP server",
		zap.String("owner_phone", cfg.OwnerPhone))

	if err := srv.Serve(context.Background()); err != nil {
		logger.Fatal("mcp server exited", zap.Error(err))
	}
}
