package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TECHSOUTH_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 480, cfg.TokenTTLMinutes)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "default", cfg.Source("port"))
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	content := "port: 8080\ndatabase_url: sqlite://blog.db\nsite_url: https://techsouth.example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	t.Setenv("TECHSOUTH_CONFIG_PATH", dir)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	// env wins over file, file wins over default
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "environment", cfg.Source("port"))
	assert.Equal(t, "sqlite://blog.db", cfg.DatabaseURL)
	assert.Equal(t, "file", cfg.Source("database_url"))
	assert.Equal(t, "https://techsouth.example.com", cfg.SiteURL)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: [oops"), 0o644))
	t.Setenv("TECHSOUTH_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestAttributesRedactSecrets(t *testing.T) {
	t.Setenv("TECHSOUTH_CONFIG_PATH", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TECHSOUTH_JWT_SECRET", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	for _, attr := range cfg.Attributes() {
		switch attr.Name {
		case "openai_api_key", "jwt_secret":
			assert.Equal(t, "(redacted)", attr.Value)
			assert.Equal(t, "environment", attr.Source)
		}
	}
}

func TestReloadRefreshesGlobal(t *testing.T) {
	t.Setenv("TECHSOUTH_CONFIG_PATH", t.TempDir())

	t.Setenv("PORT", "7001")
	require.NoError(t, Reload())
	assert.Equal(t, 7001, Get().Port)

	t.Setenv("PORT", "7002")
	require.NoError(t, Reload())
	assert.Equal(t, 7002, Get().Port)
}

func TestFormatText(t *testing.T) {
	t.Setenv("TECHSOUTH_CONFIG_PATH", t.TempDir())
	t.Setenv("TECHSOUTH_JWT_SECRET", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	assert.Contains(t, text, "Config file: "+cfg.ConfigFilePath())
	assert.Contains(t, text, "port")
	assert.Contains(t, text, "jwt_secret")
	assert.Contains(t, text, "(redacted)")
	assert.Contains(t, text, "(not set)")
	assert.NotContains(t, text, "hunter2")
}

func TestFormatJSON(t *testing.T) {
	t.Setenv("TECHSOUTH_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.FormatJSON()
	require.NoError(t, err)

	var parsed struct {
		ConfigFile string      `json:"config_file"`
		Attributes []Attribute `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, cfg.ConfigFilePath(), parsed.ConfigFile)
	assert.Len(t, parsed.Attributes, len(attributeNames()))
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	assert.NoError(t, cfg.Validate())

	cfg.Port = -1
	assert.Error(t, cfg.Validate())
}
