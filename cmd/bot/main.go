package main

import (
	"context"
	"log/slog"
	"os"

	"prefbot/internal/adapters/discord"
	"prefbot/internal/config"
	"prefbot/internal/infrastructure/database"
	"prefbot/internal/infrastructure/i18n"
	"prefbot/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ configuration invalid", "error", err)
		os.Exit(1)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger, closeLog, err := logging.Open(level, cfg.LogColored, cfg.LogFile)
	if err != nil {
		slog.Error("❌ log file unavailable", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	catalog, err := i18n.LoadDefault(logger)
	if err != nil {
		logger.Error("❌ message catalog failed to load", "error", err)
		os.Exit(1)
	}
	catalog.Audit()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("❌ migrations failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("❌ database initialisation failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	prefRepo := database.NewPreferenceRepository(pool)

	bot, err := discord.NewBot(cfg, catalog, prefRepo, logger)
	if err != nil {
		logger.Error("❌ bot creation failed", "error", err)
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		logger.Error("❌ bot start failed", "error", err)
		os.Exit(1)
	}
}
