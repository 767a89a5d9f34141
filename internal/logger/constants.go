package logger

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "arc-planner"
	DefaultVersion     = "dev"

	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys shared by every package that logs, so log queries stay stable
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"

	AttrKeyItemID    = "item_id"
	AttrKeyLoadoutID = "loadout_id"
	AttrKeySource    = "source"
	AttrKeyOrigin    = "origin"
)
