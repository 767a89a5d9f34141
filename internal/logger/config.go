package logger

import (
	"log/slog"
	"strings"
)

var levels = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// Config describes how the process logs
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ProductionConfig logs JSON at info level without source positions
func ProductionConfig() Config {
	cfg := DefaultConfig()
	cfg.Format = LogFormatJSON
	cfg.Environment = EnvironmentProduction
	return cfg
}

// DevelopmentConfig logs text at debug level with source positions
func DevelopmentConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = LogLevelDebug
	cfg.AddSource = true
	return cfg
}

// LogLevel maps Level onto slog, case-insensitively. Unknown names log at info.
func (c Config) LogLevel() slog.Level {
	if level, ok := levels[strings.ToLower(c.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}

// DefaultConfig is used until the process has loaded its own settings
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev, false)
}
