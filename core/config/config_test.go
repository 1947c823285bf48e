package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "sentiment-data", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "model", cfg.Model.Dir)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "override-bucket")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "override-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "debug", cfg.Log.Level)
}
