package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  baseUrl: https://owner-api.example.com
  accessToken: secret
  timeoutSeconds: 20
download:
  dir: /var/lib/solarsync
export:
  excludedColumns:
    - raw_timestamp
  requestDelaySeconds: 2
  retryAttempts: 3
  retryDelaySeconds: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://owner-api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "secret", cfg.API.AccessToken)
	assert.Equal(t, 20, cfg.API.TimeoutSeconds)
	assert.Equal(t, "/var/lib/solarsync", cfg.Download.Dir)
	assert.Equal(t, []string{"raw_timestamp"}, cfg.Export.ExcludedColumns)
	assert.Equal(t, 2*time.Second, cfg.RequestDelay())
	assert.Equal(t, 3, cfg.Export.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.RetryDelay())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  baseUrl: https://owner-api.example.com
  accessToken: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, "download", cfg.Download.Dir)
	assert.Equal(t, time.Second, cfg.RequestDelay())
	assert.Equal(t, 2, cfg.Export.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryDelay())
	assert.Empty(t, cfg.Export.ExcludedColumns)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "api: [not: a: mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
