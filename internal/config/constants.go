package config

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Random source modes
const (
	RNGModeMath   = "math"
	RNGModeCrypto = "crypto"
	RNGModeFair   = "fair"
)

// Defaults
const (
	DefaultServiceName      = "caseforge"
	DefaultDBMaxConns       = 10
	DefaultDBMaxConnIdle    = 5 * time.Minute
	DefaultDBMaxConnLife    = 30 * time.Minute
	DefaultStartingBalance  = 1723.0
	DefaultSessionCacheSize = 1000
	DefaultSessionCacheTTL  = 10 * time.Minute
	DefaultFairClientSeed   = "caseforge"
)
