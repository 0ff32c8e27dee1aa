// Package config loads runtime options from the environment. All keys use
// the FLOORPLAN_ prefix. A .env file in the working directory is applied
// first when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
	// Labeler selects the default region labeler ("bfs" or "graph").
	Labeler string
	// ViewerAddr is the listen address for the viewer server.
	ViewerAddr string
}

func defaults() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "console",
		Labeler:    "bfs",
		ViewerAddr: ":8080",
	}
}

// Load reads configuration from .env (if present) and the environment.
// Missing keys keep their defaults; a missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	c := defaults()
	if v := os.Getenv("FLOORPLAN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("FLOORPLAN_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("FLOORPLAN_LABELER"); v != "" {
		c.Labeler = v
	}
	if v := os.Getenv("FLOORPLAN_VIEWER_ADDR"); v != "" {
		c.ViewerAddr = v
	}
	return c
}
