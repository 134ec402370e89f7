package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/logging"
	"github.com/pageza/recipes/backend/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := command().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func command() *cli.Command {
	return &cli.Command{
		Name:  "seed_recipes",
		Usage: "Load recipes, including preset view counts, from a YAML file",
		Description: `Reads a YAML document of the form

  recipes:
    - name: Borscht
      cooking_time: "01:30:00"
      list_of_ingredients: beets, cabbage
      description: Hearty beet soup.
      views: 200

and inserts every recipe in one transaction using the same database
settings as the API (DB_DRIVER, DB_PATH, DB_HOST, ...).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to the YAML seed file",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Validate the seed file without touching the database",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env.IsDevelopment())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	path := cmd.String("file")
	recipes, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Info("loaded seed file", zap.String("file", path), zap.Int("recipes", len(recipes)))

	if cmd.Bool("dry-run") {
		logger.Info("dry run, nothing written")
		return nil
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return seed.Insert(ctx, db, logger, recipes)
}
