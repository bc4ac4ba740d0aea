package config

import "time"

// Configuration file paths
const (
	ConfigPathRules      = "configs/rules.yaml"
	ConfigPathDeadLetter = "logs/deadletter.jsonl"
	ConfigPathSQLite     = "data/growpod.db"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRoundDuration = 3 * time.Second

	// DefaultDiscordWebhookPort serves the bot's internal endpoints
	DefaultDiscordWebhookPort = "8082"

	DefaultCacheSize = 4096
	DefaultCacheTTL  = 5 * time.Minute

	DefaultEventMaxRetries = 5
	DefaultEventRetryDelay = 2 * time.Second

	DefaultEventRetention  = 30 * 24 * time.Hour
	DefaultCleanupInterval = time.Hour
	DefaultStatsInterval   = 30 * time.Second

	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 32

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
)
