package utils

import (
	"os"
	"strings"
)

// EnvOrDefault returns the environment value for key, or def when unset
// or blank.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
