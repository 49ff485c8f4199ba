package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads variables from a local .env file into the process
// environment. Missing files are not an error; the OS environment wins.
func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Warn("[Config] No .env file found, using OS environment")
	}
}
