package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads environment variables for the given deployment environment.
// Missing .env files are fine; the OS environment is used as-is.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}
