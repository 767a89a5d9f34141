package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion must match ENV_SCHEMA_VERSION. Bump it whenever a
// variable is renamed or becomes mandatory so stale .env files fail loudly.
const ExpectedEnvSchemaVersion = "1.0"

// envRequirement names a variable that must be non-empty whenever applies reports true
type envRequirement struct {
	name    string
	applies func() bool
}

var envRequirements = []envRequirement{
	{name: "CATALOG_PATH", applies: func() bool {
		return strings.EqualFold(os.Getenv("CATALOG_SOURCE"), CatalogSourceFile)
	}},
}

// envWarnings run in order; each returns an empty string when there is nothing to report
var envWarnings = []func() string{
	func() string {
		switch os.Getenv("ADMIN_API_KEY") {
		case "":
			return "ADMIN_API_KEY is not set - admin routes (catalog refresh) are disabled"
		case ExampleAdminAPIKey:
			return "ADMIN_API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
		}
		return ""
	},
	func() string {
		source := strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceRemote))
		if source == CatalogSourceRemote && os.Getenv("GITHUB_TOKEN") == "" {
			return "GITHUB_TOKEN is not set - unauthenticated GitHub API requests are heavily rate limited"
		}
		return ""
	},
}

// ValidateEnv checks the env schema version and the variables the chosen
// catalog source depends on
func ValidateEnv() error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, req := range envRequirements {
		if req.applies() && os.Getenv(req.name) == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then collects non-fatal findings
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, check := range envWarnings {
		if msg := check(); msg != "" {
			warnings = append(warnings, msg)
		}
	}
	return warnings, nil
}
