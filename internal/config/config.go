package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName:      getEnvOr("DB_NAME", "wordle.db"),
		Port:        getEnvOr("PORT", "3000"),
		Environment: getEnvOr("NODE_ENV", "local"),
		Discord: DiscordConfig{
			BotToken:      getEnv("BOT_TOKEN"),
			ChannelID:     getEnv("TARGET_CHANNEL_ID"),
			CommandPrefix: getEnvOr("COMMAND_PREFIX", "!"),
			UserTagging:   getEnvOr("USER_TAGGING_ENABLED", "false") == "true",
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_DATABASE_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
	}
	if cfg.IsProduction() && cfg.Turso.PrimaryURL == "" {
		log.Fatalf("Error: TURSO_DATABASE_URL is required when NODE_ENV=production")
	}
	return cfg
}
