package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("CATALOG_API_KEY", "test-api-key")
}

func TestNew_RequiredFieldMissing(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "")
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("CATALOG_API_KEY", "")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config")
	assert.Contains(t, err.Error(), "DATABASE_FILE_PATH (database_file_path)")
	assert.Contains(t, err.Error(), "CATALOG_API_KEY (catalog_api_key)")
	assert.NotContains(t, err.Error(), "JWT_SECRET")
}

func TestNew_WithEnvVar(t *testing.T) {
	setRequired(t)
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DatabaseFilePath)
	assert.Equal(t, "test-api-key", cfg.CatalogAPIKey)
}

func TestNew_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
database_file_path: /data/marquee.db
server_port: 8080
database_debug: true
jwt_secret: test-secret-from-file
catalog_api_key: key-from-file
catalog_cache_ttl: 30m
movie_embed_url: https://embed.example.com/movie
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", configPath)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/marquee.db", cfg.DatabaseFilePath)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.DatabaseDebug)
	assert.Equal(t, 30*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, "https://embed.example.com/movie", cfg.MovieEmbedURL)
}

func TestNew_EnvVarOverridesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
database_file_path: /data/from-file.db
server_port: 8080
jwt_secret: test-secret-from-file
catalog_api_key: key-from-file
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("DATABASE_FILE_PATH", "/data/from-env.db")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-env.db", cfg.DatabaseFilePath)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "key-from-file", cfg.CatalogAPIKey)
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.DatabaseConnectRetryCount)
	assert.Equal(t, 2*time.Second, cfg.DatabaseConnectRetryDelay)
	assert.False(t, cfg.DatabaseDebug)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 3689, cfg.ServerPort)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.CatalogAPIURL)
	assert.Equal(t, time.Hour, cfg.CatalogCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 10000, cfg.SessionCapacity)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNew_DurationFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.CatalogCacheTTL)
}

func TestNewForTest(t *testing.T) {
	cfg := NewForTest()
	assert.Equal(t, ":memory:", cfg.DatabaseFilePath)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, time.Hour, cfg.CatalogCacheTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "database_file_path", toSnakeCase("DatabaseFilePath"))
	assert.Equal(t, "server_port", toSnakeCase("ServerPort"))
	assert.Equal(t, "jwt_secret", toSnakeCase("JWTSecret"))
}
