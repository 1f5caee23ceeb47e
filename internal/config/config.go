// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr      string
	DBPath          string
	DockerHost      string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and returns a validated
// Config. All variables are optional and carry defaults:
// DOCKHAND_LISTEN_ADDR (127.0.0.1:8080), DOCKHAND_DB_PATH (dockhand.db),
// DOCKHAND_DOCKER_HOST (unix:///var/run/docker.sock),
// DOCKHAND_SHUTDOWN_TIMEOUT (10s).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("DOCKHAND_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "dockhand.db"
	if v, ok := os.LookupEnv("DOCKHAND_DB_PATH"); ok {
		dbPath = v
	}

	dockerHost := "unix:///var/run/docker.sock"
	if v, ok := os.LookupEnv("DOCKHAND_DOCKER_HOST"); ok {
		dockerHost = v
	}

	shutdownTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("DOCKHAND_SHUTDOWN_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("DOCKHAND_SHUTDOWN_TIMEOUT has invalid duration %q: %w", v, err)
		}
		shutdownTimeout = parsed
	}

	return &Config{
		ListenAddr:      listenAddr,
		DBPath:          dbPath,
		DockerHost:      dockerHost,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
