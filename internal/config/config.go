package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix              = "SUZI"
	defaultDatabasePath    = "suzi.db"
	defaultDataDir         = "data"
	defaultLogLevel        = "info"
	defaultOpenAIMaxTokens = 400
	defaultOpenAITemp      = 0.7
)

// Config captures runtime configuration for the bot.
type Config struct {
	DiscordToken string
	GuildID      string

	OpenAIToken       string
	OpenAIMaxTokens   int
	OpenAITemperature float64

	SteamAPIKey string

	// DatabasePath is the SQLite file; empty disables the relational
	// backend and the bot runs file-only.
	DatabasePath string
	DataDir      string

	LogLevel string
}

// NewViper returns a viper instance with defaults and env bindings set.
func NewViper() *viper.Viper {
	v := viper.New()
	ApplyDefaults(v)
	return v
}

// ApplyDefaults configures defaults and env bindings on the given instance.
func ApplyDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", defaultDatabasePath)
	v.SetDefault("data.dir", defaultDataDir)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("openai.max_tokens", defaultOpenAIMaxTokens)
	v.SetDefault("openai.temperature", defaultOpenAITemp)
}

// Load parses runtime configuration from viper.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DiscordToken:      v.GetString("discord.token"),
		GuildID:           v.GetString("guild.id"),
		OpenAIToken:       v.GetString("openai.token"),
		OpenAIMaxTokens:   v.GetInt("openai.max_tokens"),
		OpenAITemperature: v.GetFloat64("openai.temperature"),
		SteamAPIKey:       v.GetString("steam.api_key"),
		DatabasePath:      v.GetString("database.path"),
		DataDir:           v.GetString("data.dir"),
		LogLevel:          v.GetString("log.level"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields the bot cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("discord.token is required (SUZI_DISCORD_TOKEN)")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data.dir is required (SUZI_DATA_DIR)")
	}
	return nil
}
