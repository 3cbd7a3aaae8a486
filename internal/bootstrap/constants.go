package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCaseForge   = "Starting CaseForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// StoragePingTimeout bounds connection checks at startup
	StoragePingTimeout = 10 * time.Second
)

const (
	LogMsgStorageReady       = "Session storage ready"
	LogMsgMigrationsApplied  = "Database migrations applied"
	ErrMsgUnknownBackend     = "unknown storage backend %q"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgFailedConnectRedis = "failed to connect to redis"
)

// =============================================================================
// Randomness
// =============================================================================

const (
	LogMsgRandomSource        = "Random source selected"
	LogMsgGeneratedServerSeed = "No FAIR_SERVER_SEED set, generated a master seed for this process"
	LogMsgFairEpochStarted    = "Fair seed epoch started"
	LogMsgFairSeedRotated     = "Fair server seed rotated"
	ErrMsgUnknownRNGMode      = "unknown RNG mode %q"
	ErrMsgFailedGenerateSeed  = "failed to generate server seed"
	ErrMsgFairModeDisabled    = "seed rotation needs RNG_MODE=fair"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgLiveFeedRegistered         = "Live feed subscriber registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingLiveFeed     = "Stopping live feed..."
	LogMsgClosingStorage       = "Closing session storage..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStorageCloseFailed   = "Session storage close failed"
)
