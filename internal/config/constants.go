package config

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort               = "8080"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "stormsheet"
	DefaultVersion            = "dev"
	DefaultDBName             = "stormsheet"
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdleTime  = 5 * time.Minute
	DefaultDBMaxConnLifetime  = 30 * time.Minute
	DefaultMaxAttackCount     = 100
	DefaultRedeliveryInterval = 30 * time.Second
	DefaultRedeliveryAfter    = 60 * time.Second
	DefaultCharacterCacheSize = 1000
	DefaultCharacterCacheTTL  = 5 * time.Minute
	DefaultDeadLetterPath     = "logs/event_deadletter.jsonl"
	DefaultEventMaxRetries    = 5
	DefaultEventRetryDelay    = 2 * time.Second
	DefaultWorkerCount        = 2
	DefaultWorkerQueueSize    = 64
)

// Limits checked by Validate
const (
	MinPort           = 1
	MaxPort           = 65535
	MaxAttackCountCap = 10000
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
)
