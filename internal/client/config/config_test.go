package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"admincli"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:5222", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "admincli.db", cfg.DatabasePath)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	setArgs(t, "-a", "http://api.example.com", "-t", "30", "-d", "/tmp/creds.db", "-p", "25")

	cfg := LoadConfig()
	assert.Equal(t, "http://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/creds.db", cfg.DatabasePath)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://json.example.com",
		"request_timeout": "45s",
		"page_size": 50
	}`), 0o600))

	setArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "http://json.example.com", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "admincli.db", cfg.DatabasePath, "fields absent from the file keep their defaults")
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "http://json.example.com"}`), 0o600))

	setArgs(t, "-c", path, "-a", "http://flag.example.com")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example.com", cfg.APIBaseURL)
}
