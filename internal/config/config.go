package config

import (
	"fmt"
	"os"
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
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// AdminAPIKey guards /api/v1/admin; admin routes reject everything when empty
	AdminAPIKey    string
	TrustedProxies []string

	// Catalog acquisition
	CatalogSource          string
	CatalogPath            string
	RepoOwner              string
	RepoName               string
	RepoPath               string
	RepoBranch             string
	GitHubAPIURL           string
	GitHubRawURL           string
	GitHubToken            string
	FetchBatchSize         int
	FetchTimeout           time.Duration
	CatalogRefreshInterval time.Duration

	// Planning and caches
	MaxTreeDepth     int
	IndexCacheSize   int
	IndexCacheTTL    time.Duration
	LoadoutCacheSize int
	LoadoutTTL       time.Duration

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		CatalogSource:          strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceRemote)),
		CatalogPath:            getEnv("CATALOG_PATH", ConfigPathCatalog),
		RepoOwner:              getEnv("CATALOG_REPO_OWNER", DefaultRepoOwner),
		RepoName:               getEnv("CATALOG_REPO_NAME", DefaultRepoName),
		RepoPath:               getEnv("CATALOG_REPO_PATH", DefaultRepoPath),
		RepoBranch:             getEnv("CATALOG_REPO_BRANCH", DefaultRepoBranch),
		GitHubAPIURL:           getEnv("GITHUB_API_URL", DefaultGitHubAPIURL),
		GitHubRawURL:           getEnv("GITHUB_RAW_URL", DefaultGitHubRawURL),
		GitHubToken:            getEnv("GITHUB_TOKEN", ""),
		FetchBatchSize:         getEnvAsInt("FETCH_BATCH_SIZE", DefaultFetchBatchSize),
		FetchTimeout:           getEnvAsDuration("FETCH_TIMEOUT", DefaultFetchTimeout),
		CatalogRefreshInterval: getEnvAsDuration("CATALOG_REFRESH_INTERVAL", 0),

		MaxTreeDepth:     getEnvAsInt("MAX_TREE_DEPTH", DefaultMaxTreeDepth),
		IndexCacheSize:   getEnvAsInt("INDEX_CACHE_SIZE", DefaultIndexCacheSize),
		IndexCacheTTL:    getEnvAsDuration("INDEX_CACHE_TTL", DefaultIndexCacheTTL),
		LoadoutCacheSize: getEnvAsInt("LOADOUT_CACHE_SIZE", DefaultLoadoutCacheSize),
		LoadoutTTL:       getEnvAsDuration("LOADOUT_TTL", DefaultLoadoutTTL),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Validate checks the loaded values are usable
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	switch c.CatalogSource {
	case CatalogSourceFile, CatalogSourceRemote, CatalogSourceFallback:
	default:
		problems = append(problems, fmt.Sprintf("CATALOG_SOURCE must be one of %s, %s, %s; got %q",
			CatalogSourceFile, CatalogSourceRemote, CatalogSourceFallback, c.CatalogSource))
	}
	if c.CatalogSource == CatalogSourceFile && c.CatalogPath == "" {
		problems = append(problems, "CATALOG_PATH is required when CATALOG_SOURCE=file")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.FetchBatchSize < 1 {
		problems = append(problems, "FETCH_BATCH_SIZE must be positive")
	}
	if c.MaxTreeDepth < 1 {
		problems = append(problems, "MAX_TREE_DEPTH must be positive")
	}
	if c.LoadoutCacheSize < 1 || c.IndexCacheSize < 1 {
		problems = append(problems, "cache sizes must be positive")
	}
	if c.CatalogRefreshInterval < 0 {
		problems = append(problems, "CATALOG_REFRESH_INTERVAL must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "prod" || env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("30s", "1h"), falling back to defaultValue
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
