package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/logging"
)

// Creates the recipes table on the configured database without starting the
// API. An existing table is left untouched.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}
	logger.Info("schema is up to date")
}
