package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: development\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3180, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "revpilot")
	assert.Contains(t, cfg.RedisURL, "localhost:6379")
	assert.Equal(t, 7, cfg.Backup.KeepLocalCopies)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: production
database:
  host: db.internal
  name: revpilot_prod
redis:
  host: cache.internal
  db: 2
backup:
  enable: true
  keep_local_copies: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "db.internal")
	assert.Contains(t, cfg.DSN, "revpilot_prod")
	assert.Contains(t, cfg.RedisURL, "cache.internal")
	assert.True(t, cfg.Backup.Enable)
	assert.Equal(t, 3, cfg.Backup.KeepLocalCopies)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "listen_port: 8080\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestJWTSecretEnvOverride(t *testing.T) {
	t.Setenv("REVPILOT_JWT_SECRET", "from-env")
	path := writeConfig(t, "jwt_secret: from-file\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}
