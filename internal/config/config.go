package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Storage StorageConfig
	Timers  TimerConfig
	Serper  SerperConfig

	// AdminIDs are the user IDs allowed to manage command locks
	AdminIDs []string
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// DataDir is where the JSON state files live
	DataDir string
}

// TimerConfig holds the timeouts and refresh intervals for the
// background loops and interactive sessions. The view and spawn idle
// timeouts differ by design: a spawned character should stay claimable
// far longer than a casual /view carousel stays navigable.
type TimerConfig struct {
	ViewIdleTimeout  time.Duration // /view pagination sessions
	SpawnIdleTimeout time.Duration // hunting-ground and /spawn sessions
	ReplyTimeout     time.Duration // interactive text-reply flows
	SpawnTick        time.Duration // hunting-ground scan granularity
	GraveyardRefresh time.Duration
	RosterRefresh    time.Duration
	PageSize         int // items per listing page
}

// SerperConfig holds image-search API configuration
type SerperConfig struct {
	APIKey  string
	BaseURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Storage: StorageConfig{
			DataDir: getEnvOrDefault("DATA_DIR", "data"),
		},
		Timers: TimerConfig{
			ViewIdleTimeout:  getEnvAsDurationOrDefault("VIEW_IDLE_TIMEOUT", 60*time.Second),
			SpawnIdleTimeout: getEnvAsDurationOrDefault("SPAWN_IDLE_TIMEOUT", 60000*time.Second),
			ReplyTimeout:     getEnvAsDurationOrDefault("REPLY_TIMEOUT", 30*time.Second),
			SpawnTick:        getEnvAsDurationOrDefault("SPAWN_TICK", time.Second),
			GraveyardRefresh: getEnvAsDurationOrDefault("GRAVEYARD_REFRESH", 7*time.Second),
			RosterRefresh:    getEnvAsDurationOrDefault("ROSTER_REFRESH", 10*time.Second),
			PageSize:         getEnvAsIntOrDefault("LIST_PAGE_SIZE", 50),
		},
		Serper: SerperConfig{
			APIKey:  os.Getenv("SERPAPI_API_KEY"),
			BaseURL: getEnvOrDefault("SERPAPI_URL", "https://google.serper.dev/images"),
		},
		AdminIDs: splitIDs(os.Getenv("ADMIN_IDS")),
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if cfg.Timers.PageSize < 1 {
		return nil, fmt.Errorf("LIST_PAGE_SIZE must be at least 1")
	}

	return cfg, nil
}

// IsAdmin reports whether the given user ID is a configured admin
func (c *Config) IsAdmin(userID string) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
