package utils

import (
	"os"
	"strings"
)

// EnvOrDefault returns the trimmed value of an environment variable, or def
// when unset or blank.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
