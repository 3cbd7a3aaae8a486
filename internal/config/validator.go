package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

var validBackends = map[string]bool{
	StorageMemory:   true,
	StoragePostgres: true,
	StorageRedis:    true,
}

var validRNGModes = map[string]bool{
	RNGModeMath:   true,
	RNGModeCrypto: true,
	RNGModeFair:   true,
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}
	if !validBackends[c.StorageBackend] {
		problems = append(problems, fmt.Sprintf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}
	if !validRNGModes[c.RNGMode] {
		problems = append(problems, fmt.Sprintf("unknown RNG_MODE %q", c.RNGMode))
	}
	if c.RNGMode == RNGModeFair && c.FairServerSeed == "" {
		problems = append(problems, "FAIR_SERVER_SEED must be set when RNG_MODE=fair")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		problems = append(problems, fmt.Sprintf("unknown LOG_FORMAT %q", c.LogFormat))
	}
	if c.StartingBalance < 0 {
		problems = append(problems, "STARTING_BALANCE must not be negative")
	}
	if c.SessionCacheSize <= 0 {
		problems = append(problems, "SESSION_CACHE_SIZE must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// RequiredEnvVars returns the environment variables the selected backend needs
func RequiredEnvVars(backend string) []string {
	switch backend {
	case StoragePostgres:
		return []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}
	case StorageRedis:
		return []string{"REDIS_ADDR"}
	default:
		return nil
	}
}

// ValidateEnv checks that the schema version matches expectations and that
// every variable the configured storage backend needs is set
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(os.Getenv("STORAGE_BACKEND"))
	var missing []string
	for _, envVar := range RequiredEnvVars(backend) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if strings.EqualFold(os.Getenv("RNG_MODE"), RNGModeFair) && len(os.Getenv("FAIR_SERVER_SEED")) < 32 {
		warnings = append(warnings, "FAIR_SERVER_SEED is short - generate one with: openssl rand -hex 32")
	}

	return warnings, nil
}
