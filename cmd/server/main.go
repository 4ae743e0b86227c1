package main

import (
	"log"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/routes"

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

	r := routes.SetupRouter(db, cfg, logger)
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
