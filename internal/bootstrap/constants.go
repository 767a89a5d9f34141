package bootstrap

const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Session logs are named session_<timestamp>.log. Once LogFileRetentionLimit
// files exist the oldest are deleted down to LogFileRetentionCount, leaving
// room for the file about to be created.
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionLimit  = 10
	LogFileRetentionCount  = 9
)

const (
	LogMsgLoggingInitialized    = "Logging initialized"
	LogMsgStartingArcPlanner    = "Starting ArcPlanner"
	LogMsgConfigurationLoaded   = "Configuration loaded"
	LogMsgCatalogSourceSelected = "Catalog source selected"

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgRefresherShutdown    = "Catalog refresh worker shutdown failed"
)

const (
	ErrMsgCreateLogsDir        = "failed to create logs directory"
	ErrMsgOpenLogFile          = "failed to open log file"
	ErrMsgDeleteOldLog         = "Failed to delete old log file %s: %v\n"
	ErrMsgUnknownCatalogSource = "unknown catalog source %q"
)
