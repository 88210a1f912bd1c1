package config

// Config holds all configuration for the application.
type Config struct {
	DBName      string
	Port        string
	Environment string
	Discord     DiscordConfig
	Turso       TursoConfig
}

// DiscordConfig holds everything needed to talk to the Discord gateway.
// UserTagging switches winner announcements between <@id> mentions and
// plain display names.
type DiscordConfig struct {
	BotToken      string
	ChannelID     string
	CommandPrefix string
	UserTagging   bool
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// IsProduction reports whether the app targets the remote Turso database
// instead of a local file.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
