package main

import (
	"context"
	"embed"

	"baskettracker/internal/ai"
	"baskettracker/internal/application"
	"baskettracker/internal/delivery/discord"
	"baskettracker/internal/delivery/rest"
	"baskettracker/internal/delivery/telegram"
	"baskettracker/internal/repository"
	"baskettracker/pkg/config"
	"baskettracker/pkg/logger"
	service "baskettracker/pkg/services"
	"baskettracker/pkg/sheets"

	"github.com/joho/godotenv"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := repository.NewRepository(&cfg.Repo, migrationFS)
	if err != nil {
		log.Error("failed to init snapshot store: %s", err.Error())
		return
	}
	defer repos.Close()
	log.Info("Snapshot store ready (driver=%s)", cfg.Repo.Driver)

	var coach application.AIProvider
	if cfg.GeminiKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiKey)
		if err != nil {
			log.Error("failed to init gemini: %s", err.Error())
			return
		}
		defer gemini.Close()
		coach = gemini
	} else {
		log.Warn("GEMINI_KEY is not set, coach reports are disabled")
	}

	var sheetsClient sheets.Client
	if cfg.GoogleCredentialsFile != "" {
		client, err := sheets.NewGoogleSheetsClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Error("failed to init google sheets: %s", err.Error())
			return
		}
		sheetsClient = client
	}

	services := application.NewService(repos, application.Options{
		SnapshotKey:    cfg.Repo.SnapshotKey,
		FeedbackWindow: cfg.FeedbackWindow,
		SpreadsheetID:  cfg.SpreadsheetID,
		OwnerEmail:     cfg.GoogleOwnerEmail,
	}, coach, sheetsClient, log)

	if !services.Session.Restore() {
		log.Info("No saved match, starting with an empty setup")
	}

	manager := service.NewManager(log)
	manager.AddService(application.NewAutosaveWorker(services.Session, cfg.AutosaveInterval, log))

	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(&cfg, services, log)
		if err != nil {
			log.Error("failed to init discord bot: %s", err.Error())
			return
		}
		manager.AddService(bot)
	}

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAdminIDs, services, log)
		if err != nil {
			log.Error("failed to init telegram bot: %s", err.Error())
			return
		}
		manager.AddService(bot)
	}

	if cfg.HTTPAddr != "" {
		manager.AddService(rest.NewServer(cfg.HTTPAddr, cfg.AllowedOrigins, services, log))
	}

	if err := manager.Run(ctx); err != nil {
		log.Error("service manager: %s", err.Error())
	}

	if err := services.Session.Flush(); err != nil {
		log.Warn("final snapshot flush failed: %s", err.Error())
	}
	log.Info("Stopped")
}
