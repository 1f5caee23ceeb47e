package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "dockhand.db", cfg.DBPath)
	assert.Equal(t, "unix:///var/run/docker.sock", cfg.DockerHost)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DOCKHAND_LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("DOCKHAND_DB_PATH", "/var/lib/dockhand/panel.db")
	t.Setenv("DOCKHAND_DOCKER_HOST", "tcp://127.0.0.1:2375")
	t.Setenv("DOCKHAND_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr)
	assert.Equal(t, "/var/lib/dockhand/panel.db", cfg.DBPath)
	assert.Equal(t, "tcp://127.0.0.1:2375", cfg.DockerHost)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("DOCKHAND_SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCKHAND_SHUTDOWN_TIMEOUT")
}
