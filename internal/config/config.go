package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string
	Version     string

	StoreDriver string `validate:"oneof=postgres sqlite memory"`

	DBUser     string `validate:"required_if=StoreDriver postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=StoreDriver postgres"`
	DBPort     string `validate:"required_if=StoreDriver postgres"`
	DBName     string `validate:"required_if=StoreDriver postgres"`

	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	SQLitePath string `validate:"required_if=StoreDriver sqlite"`

	APIKey string `validate:"required"`

	// AppAddress is the ledger address of the application
	AppAddress string `validate:"required"`
	RulesPath  string `validate:"required"`

	GenesisTime   time.Time
	RoundDuration time.Duration `validate:"gt=0"`

	CacheSize int `validate:"min=1"`
	CacheTTL  time.Duration

	EventMaxRetries int `validate:"min=0"`
	EventRetryDelay time.Duration
	DeadLetterPath  string `validate:"required"`

	EventRetention  time.Duration `validate:"gt=0"`
	CleanupInterval time.Duration `validate:"gt=0"`
	StatsInterval   time.Duration `validate:"gt=0"`

	WorkerCount     int `validate:"min=1"`
	WorkerQueueSize int `validate:"min=1"`

	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"min=1"`

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real env vars may be set instead
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvAsInt("PORT", DefaultPort),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		StoreDriver: getEnv("STORE_DRIVER", StoreDriverSQLite),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "growpod"),

		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		SQLitePath: getEnv("SQLITE_PATH", ConfigPathSQLite),

		APIKey:     getEnv("API_KEY", ""),
		AppAddress: getEnv("APP_ADDRESS", ""),
		RulesPath:  getEnv("RULES_PATH", ConfigPathRules),

		RoundDuration: getEnvAsDuration("ROUND_DURATION", DefaultRoundDuration),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),

		EventMaxRetries: getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay: getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		DeadLetterPath:  getEnv("DEAD_LETTER_PATH", ConfigPathDeadLetter),

		EventRetention:  getEnvAsDuration("EVENT_RETENTION", DefaultEventRetention),
		CleanupInterval: getEnvAsDuration("CLEANUP_INTERVAL", DefaultCleanupInterval),
		StatsInterval:   getEnvAsDuration("STATS_INTERVAL", DefaultStatsInterval),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	genesis, err := getEnvAsTime("GENESIS_TIME", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	cfg.GenesisTime = genesis

	if cfg.APIKey == "" {
		return nil, errors.New("API_KEY environment variable must be set for security")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStore reads only the store settings. Offline tools use it where the
// server's required API settings are absent.
func LoadStore() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StoreDriver:       getEnv("STORE_DRIVER", StoreDriverSQLite),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "growpod"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:        getEnv("SQLITE_PATH", ConfigPathSQLite),
		RulesPath:         getEnv("RULES_PATH", ConfigPathRules),
	}

	if err := validator.New().StructPartial(cfg, "StoreDriver", "DBUser", "DBHost", "DBPort", "DBName", "DBMaxConns", "SQLitePath"); err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid configuration: %s failed %q", f.Field(), f.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated value, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsTime parses an RFC 3339 timestamp. Unlike the other helpers a
// malformed value is an error, since it would silently shift every round.
func getEnvAsTime(key string, defaultValue time.Time) (time.Time, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return t, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordConfig holds the bot configuration
type DiscordConfig struct {
	Token      string `validate:"required"`
	AppID      string `validate:"required"`
	GuildID    string
	APIBaseURL string `validate:"required,url"`
	APIKey     string `validate:"required"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFormat  string `validate:"oneof=text json"`

	// WebhookPort serves the bot's health and announce endpoints
	WebhookPort           string `validate:"required,numeric"`
	NotificationChannelID string
	ForceCommandUpdate    bool
}

// LoadDiscord loads the bot configuration from environment variables
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	cfg := &DiscordConfig{
		Token:      getEnv("DISCORD_TOKEN", ""),
		AppID:      getEnv("DISCORD_APP_ID", ""),
		GuildID:    getEnv("DISCORD_GUILD_ID", ""),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		APIKey:     getEnv("API_KEY", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),

		WebhookPort:           getEnv("DISCORD_WEBHOOK_PORT", DefaultDiscordWebhookPort),
		NotificationChannelID: getEnv("DISCORD_NOTIFICATION_CHANNEL_ID", ""),
		ForceCommandUpdate:    getEnv("DISCORD_FORCE_COMMAND_UPDATE", "") == "true",
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid discord configuration: %w", err)
	}
	return cfg, nil
}
