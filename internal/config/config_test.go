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

	assert.Equal(t, "recipe-directory-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "recipedir", cfg.Mongo.Database)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "recipes_test")
	t.Setenv("MONGO_CONNECT_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "recipes_test", cfg.Mongo.Database)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout())
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("MONGO_CONNECT_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Mongo.ConnectTimeoutSeconds)
}
