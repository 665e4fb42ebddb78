package config

import (
	"time"

	"baskettracker/internal/repository"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo     repository.Config `envPrefix:"REPO_"`
	LogLevel string            `env:"LOGGER_LEVEL" envDefault:"debug"`

	DiscordToken     string   `env:"DISCORD_TOKEN" envDefault:""`
	DiscordGuildID   string   `env:"DISCORD_GUILD_ID" envDefault:""`
	AllowedChannelID string   `env:"ALLOWED_CHANNEL_ID" envDefault:""`
	AdminUserIDs     []string `env:"ADMIN_USER_IDS" envSeparator:"," envDefault:""`

	TelegramToken    string  `env:"TELEGRAM_TOKEN" envDefault:""`
	TelegramAdminIDs []int64 `env:"TELEGRAM_ADMIN_IDS" envSeparator:"," envDefault:""`

	HTTPAddr       string   `env:"HTTP_ADDR" envDefault:""`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	GeminiKey             string `env:"GEMINI_KEY" envDefault:""`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:""`
	SpreadsheetID         string `env:"SPREADSHEET_ID" envDefault:""`
	GoogleOwnerEmail      string `env:"GOOGLE_OWNER_EMAIL" envDefault:""`

	FeedbackWindow   time.Duration `env:"FEEDBACK_WINDOW" envDefault:"800ms"`
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL" envDefault:"30s"`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
