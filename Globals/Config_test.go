package Globals

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {

	t.Setenv("CONFIG_FILE", "")

	Loaded, ErrorLoading := LoadConfig()
	require.NoError(t, ErrorLoading)

	assert.Equal(t, "w!", Loaded.Prefix)
	assert.Equal(t, 8080, Loaded.Port)
	assert.Equal(t, 5*time.Second, Loaded.Cooldown)
	assert.Equal(t, 100, Loaded.QueueLimit)
	assert.Equal(t, 30*time.Minute, Loaded.QueueIdle)

	Retry := Loaded.RetryConfig()

	assert.Equal(t, 3, Retry.MaxRetries)
	assert.Equal(t, 2*time.Second, Retry.BaseDelay)
	assert.Equal(t, 30*time.Second, Retry.MaxDelay)
	assert.Equal(t, 2.0, Retry.BackoffFactor)

}

func TestLoadConfigEnvironment(t *testing.T) {

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("COOLDOWN", "10s")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("BACKOFF_FACTOR", "1.5")
	t.Setenv("PREFIX", "!")

	Loaded, ErrorLoading := LoadConfig()
	require.NoError(t, ErrorLoading)

	assert.Equal(t, 10*time.Second, Loaded.Cooldown)
	assert.Equal(t, 5, Loaded.MaxRetries)
	assert.Equal(t, 1.5, Loaded.BackoffFactor)
	assert.Equal(t, "!", Loaded.Prefix)

}

func TestLoadConfigFile(t *testing.T) {

	Path := filepath.Join(t.TempDir(), "encore.yaml")

	require.NoError(t, os.WriteFile(Path, []byte("cooldown: 3s\nmax_delay: 10s\nredis_url: redis://localhost:6379/0\n"), 0o600))

	t.Setenv("CONFIG_FILE", Path)

	Loaded, ErrorLoading := LoadConfig()
	require.NoError(t, ErrorLoading)

	assert.Equal(t, 3*time.Second, Loaded.Cooldown)
	assert.Equal(t, 10*time.Second, Loaded.MaxDelay)
	assert.Equal(t, "redis://localhost:6379/0", Loaded.RedisURL)

}

func TestLoadConfigRejectsInvalidRetry(t *testing.T) {

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("BACKOFF_FACTOR", "1")

	_, ErrorLoading := LoadConfig()

	assert.Error(t, ErrorLoading)

}
