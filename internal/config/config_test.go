package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, SourceStatic, cfg.Portfolio.Source)
	assert.Equal(t, 500*time.Millisecond, cfg.Portfolio.LoadDelay)
	assert.Equal(t, float64(100), cfg.Portfolio.HeaderOffset)
	assert.Equal(t, "/static/placeholder.svg", cfg.Portfolio.PlaceholderImage)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifespan)
	assert.Equal(t, float64(10), cfg.Auth.LoginPerMinute)
	assert.Equal(t, 5, cfg.Auth.LoginBurst)
	assert.Equal(t, "5 0 0 * * *", cfg.Redis.ResumeWarmCron)
	assert.False(t, cfg.CloudinaryEnabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
app:
  port: "9090"
portfolio:
  source: postgres
  load_delay: 50ms
redis:
  addr: localhost:6379
kafka:
  brokers: ["localhost:9092"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("APP_PORT", "7070")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, SourcePostgres, cfg.Portfolio.Source)
	assert.Equal(t, 50*time.Millisecond, cfg.Portfolio.LoadDelay)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.CloudinaryEnabled())
}
