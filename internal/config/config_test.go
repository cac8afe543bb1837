package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("UPCOMING_DAYS", "")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 7, cfg.UpcomingDays)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/tasks.db")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("UPCOMING_DAYS", "14")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/tasks.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 14, cfg.UpcomingDays)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("UPCOMING_DAYS", "-3")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 7, cfg.UpcomingDays)
}
