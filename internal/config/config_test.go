package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geocode-microservice/internal/geocode"
	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("GEOCODE_PROXY_URL", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, geocode.DefaultBaseURL, cfg.Geocode.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Geocode.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)

	_, err = cfg.APIKey()
	assert.ErrorIs(t, err, apperrors.ErrMissingCredential)
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", " env-key ")
	t.Setenv("API_PORT", "9090")
	t.Setenv("GEOCODE_REQUEST_TIMEOUT", "3")
	t.Setenv("GEOCODE_PROXY_URL", "http://proxy.local:3128")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	key, err := cfg.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTPClientConfig().Timeout)
	assert.Equal(t, "http://proxy.local:3128", cfg.HTTPClientConfig().ProxyURL)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_MAPS_API_KEY=file-key\nLOG_LEVEL=debug\nGEOCODE_BASE_URL=http://localhost:9999/json\n"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	key, err := cfg.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "file-key", key)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://localhost:9999/json", cfg.ClientConfig().BaseURL)
}
