package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
	assert.Equal(t, 10, cfg.River.MaxWorkers)
	assert.Equal(t, 100, cfg.Worker.GeneralPoolSize)
	assert.Equal(t, 20, cfg.Worker.NotificationPoolSize)

	// Missing secret must be auto-generated, never empty.
	assert.GreaterOrEqual(t, len(cfg.Security.JWTSecret), 32)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SECURITY_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.Security.JWTSecret)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db.internal", Port: 5433, User: "flow", Password: "pw",
		Database: "expenses", SSLMode: "require",
	}
	assert.Equal(t, "postgres://flow:pw@db.internal:5433/expenses?sslmode=require", c.DSN())

	c.URL = "postgres://override"
	assert.Equal(t, "postgres://override", c.DSN())

	c = DatabaseConfig{Host: "h", Port: 1, User: "u", Database: "d"}
	assert.Contains(t, c.DSN(), "sslmode=disable")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080},
		Security: SecurityConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Security.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}
