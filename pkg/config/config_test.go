package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty dir so a developer's local .env cannot
// leak into the assertions.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "http://localhost:8000", cfg.APIBase)
	assert.NotEmpty(t, cfg.Session.TokenPath)
	assert.Zero(t, cfg.HTTP.Timeout, "no request timeout unless configured")
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("API_BASE_URL", "https://sched.example.com/")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://sched.example.com", cfg.APIBase, "trailing slash trimmed")
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestBadDurationFallsBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.HTTP.Timeout)
}
