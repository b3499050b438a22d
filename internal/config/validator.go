package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"BADGER_APP_ID",
	"BADGER_APP_SECRET",
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
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

	if strings.HasPrefix(os.Getenv("BADGER_APP_ID"), "app_demo") {
		warnings = append(warnings, "BADGER_APP_ID appears to be the demo app - badge data is shared with everyone else using it")
	}

	return warnings, nil
}
