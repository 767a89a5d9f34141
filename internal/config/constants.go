package config

import "time"

// ConfigPathCatalog is the default item directory for CATALOG_SOURCE=file
const ConfigPathCatalog = "configs/items"

// Catalog sources
const (
	CatalogSourceFile     = "file"
	CatalogSourceRemote   = "remote"
	CatalogSourceFallback = "fallback"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "arc-planner"
	DefaultVersion     = "dev"

	DefaultRepoOwner      = "Android65"
	DefaultRepoName       = "arcraiders-data"
	DefaultRepoPath       = "items"
	DefaultRepoBranch     = "main"
	DefaultGitHubAPIURL   = "https://api.github.com"
	DefaultGitHubRawURL   = "https://raw.githubusercontent.com"
	DefaultFetchBatchSize = 15
	DefaultFetchTimeout   = 30 * time.Second

	DefaultMaxTreeDepth     = 64
	DefaultIndexCacheSize   = 4
	DefaultIndexCacheTTL    = 24 * time.Hour
	DefaultLoadoutCacheSize = 1024
	DefaultLoadoutTTL       = 24 * time.Hour

	DefaultShutdownTimeout = 10 * time.Second
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAdminAPIKey = "generate_with_openssl_rand_hex_32"
)
