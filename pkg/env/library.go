// pkg/env/library.go
package env

import (
	"log/slog"
	"strings"

	"github.com/arc-language/getargv/pkg/core"
)

// Get returns the value of key, or "" if unset
func Get(e core.Environment, key string) string {
	v, _ := e.Lookup(key)
	return v
}

// IsSet reports whether key is present, even if empty
func IsSet(e core.Environment, key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// Enabled reports whether key is set to "1" or "true"
func Enabled(e core.Environment, key string) bool {
	switch strings.ToLower(strings.TrimSpace(Get(e, key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// Dump logs every variable at warning level
func Dump(e core.Environment, logger *slog.Logger) {
	for _, kv := range e.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		logger.Warn("environment", "key", key, "value", value)
	}
}
