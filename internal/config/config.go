package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	StorageBackend    string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// DiceSeed makes every roll reproducible when set
	DiceSeed *int64

	MaxAttackCount     int
	RedeliveryInterval time.Duration
	RedeliveryAfter    time.Duration
	CharacterCacheSize int
	CharacterCacheTTL  time.Duration

	EventDeadLetterPath string
	EventMaxRetries     int
	EventRetryDelay     time.Duration

	WorkerCount     int
	WorkerQueueSize int

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		MaxAttackCount:     getEnvAsInt("MAX_ATTACK_COUNT", DefaultMaxAttackCount),
		RedeliveryInterval: getEnvAsDuration("REDELIVERY_INTERVAL", DefaultRedeliveryInterval),
		RedeliveryAfter:    getEnvAsDuration("REDELIVERY_AFTER", DefaultRedeliveryAfter),
		CharacterCacheSize: getEnvAsInt("CHARACTER_CACHE_SIZE", DefaultCharacterCacheSize),
		CharacterCacheTTL:  getEnvAsDuration("CHARACTER_CACHE_TTL", DefaultCharacterCacheTTL),

		EventDeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if raw := getEnv("DICE_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DICE_SEED value: %w", err)
		}
		cfg.DiceSeed = &seed
	}

	return cfg, nil
}

// Validate checks that loaded values are usable. Load does not call it so
// callers can inspect a partially valid configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < MinPort || c.Port > MaxPort {
		errs = append(errs, fmt.Errorf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}
	if !slices.Contains([]string{StorageMemory, StoragePostgres}, c.StorageBackend) {
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageMemory, StoragePostgres, c.StorageBackend))
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.MaxAttackCount < 1 || c.MaxAttackCount > MaxAttackCountCap {
		errs = append(errs, fmt.Errorf("MAX_ATTACK_COUNT must be between 1 and %d, got %d", MaxAttackCountCap, c.MaxAttackCount))
	}
	if c.RedeliveryInterval <= 0 {
		errs = append(errs, fmt.Errorf("REDELIVERY_INTERVAL must be positive"))
	}
	if c.RedeliveryAfter <= 0 {
		errs = append(errs, fmt.Errorf("REDELIVERY_AFTER must be positive"))
	}
	if c.CharacterCacheSize < 0 {
		errs = append(errs, fmt.Errorf("CHARACTER_CACHE_SIZE must not be negative"))
	}
	if c.WorkerCount < 1 || c.WorkerQueueSize < 1 {
		errs = append(errs, fmt.Errorf("WORKER_COUNT and WORKER_QUEUE_SIZE must be at least 1"))
	}
	if c.StorageBackend == StoragePostgres && c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be at least 1"))
	}

	return errors.Join(errs...)
}

// UsesPostgres reports whether character and confirmed-grant storage live in Postgres
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StoragePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration falls back to defaultValue when the variable is unset or not a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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
