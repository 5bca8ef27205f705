package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Log file rotation
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older session logs kept on startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting diet diary"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Service wiring
const (
	LogMsgProviderDisabled = "Nutrition provider credentials missing, food imports disabled"
	LogMsgServicesReady    = "Services initialized"
)

// Shutdown
const (
	DefaultShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
