package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// EnvFileVar names the variable that selects the env file to load.
const EnvFileVar = "ENV_FILE"

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsEnvSet reports whether key holds a non-empty value.
func IsEnvSet(key string) bool {
	return os.Getenv(key) != ""
}

// GetEnvAsBool parses key with strconv.ParseBool. Unset or unparsable values
// yield fallback.
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// EnvFile picks the env file to load: ENV_FILE when set, fallback otherwise.
// explicit reports whether ENV_FILE made the choice.
func EnvFile(fallback string) (path string, explicit bool) {
	if IsEnvSet(EnvFileVar) {
		return os.Getenv(EnvFileVar), true
	}
	return fallback, false
}

// LoadEnvFile loads the file EnvFile selects. A file named through ENV_FILE
// must exist; the fallback may be missing, in which case the process
// environment and struct defaults apply.
func LoadEnvFile(fallback string) (*App, error) {
	path, explicit := EnvFile(fallback)
	slog.Default().Info("Environment file selected", "path", path, "explicit", explicit)
	if explicit {
		if _, err := FindEnvTest(path); err != nil {
			return nil, fmt.Errorf("%s=%s: %w", EnvFileVar, path, err)
		}
	}
	return Load(path)
}
