package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BRAPI_TOKEN", "env-token")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "stockfolio", cfg.Database.Name)
	assert.Equal(t, "env-token", cfg.Brapi.Token)
	assert.Equal(t, 10*time.Second, cfg.Brapi.Timeout)
}

func TestLoad_MissingToken(t *testing.T) {
	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "brapi token is required")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
http_addr: ":9090"
database:
  host: db.internal
  name: portfolio
brapi:
  token: file-token
  timeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "portfolio", cfg.Database.Name)
	// Fields absent from the file keep their defaults
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "file-token", cfg.Brapi.Token)
	assert.Equal(t, 3*time.Second, cfg.Brapi.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
brapi:
  token: file-token
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BRAPI_TOKEN", "env-token")
	t.Setenv("DB_HOST", "override.internal")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Brapi.Token)
	assert.Equal(t, "override.internal", cfg.Database.Host)
}

func TestConnString(t *testing.T) {
	db := Database{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		Name:     "stockfolio",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=stockfolio sslmode=disable",
		db.ConnString())
}
