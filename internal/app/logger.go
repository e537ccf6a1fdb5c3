// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/pinecut/quote-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from LOG_LEVEL and
// LOG_PRETTY. An unset level defaults to info so production deploys log
// request and pricing activity without extra configuration.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
