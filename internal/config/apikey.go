package config

import (
	"fmt"
	"os"
)

// ResolveAPIKey resolves an API key based on the given source.
// Supported sources: "env" (from environment variable, also the default for
// an empty source) and "config" (from the config value). The "env" source
// returns the variable's current value even when unset: a missing credential
// is the service boundary's authentication fault to report on the first
// call, not a startup failure.
func ResolveAPIKey(source, configValue, envVar string) (string, error) {
	switch source {
	case "env", "":
		return os.Getenv(envVar), nil
	case "config":
		if configValue == "" {
			return "", fmt.Errorf("api_key_source is 'config' but no api_key value provided")
		}
		return configValue, nil
	default:
		return "", fmt.Errorf("unknown api_key_source: %q", source)
	}
}
