package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONFIG_FILE", "PORT", "SERVICE_PREFIX", "PUBLIC_ANON_KEY", "CORS_ORIGINS",
		"KV_DRIVER", "DATABASE_URL", "SQLITE_PATH", "REDIS_ADDR", "REDIS_PASSWORD",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH",
		"SESSION_TTL", "SESSION_SWEEP_INTERVAL", "YOUTUBE_API_KEY",
		"YOUTUBE_CHANNEL_HANDLE", "YOUTUBE_MAX_RESULTS", "SYNC_WRITE_DELAY", "FAQ_SEED_DELAY",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api", cfg.ServicePrefix)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 50*time.Millisecond, cfg.Queue.SyncWriteDelay)
	assert.Equal(t, "@planbmusickr", cfg.YouTube.ChannelHandle)

	assert.EqualError(t, cfg.Validate(), "DATABASE_URL is not set")
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "planb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
service_prefix: make-server/
public_anon_key: from-file
store:
  driver: SQLite
  sqlite_path: /tmp/kv.db
admin:
  password: file-pw
  session_ttl: 2h
youtube:
  channel_handle: somechannel
queue:
  sync_write_delay: 5ms
`), 0o644))

	t.Setenv("PUBLIC_ANON_KEY", "from-env")
	t.Setenv("CORS_ORIGINS", "https://a.kr, https://b.kr")
	t.Setenv("SYNC_WRITE_DELAY", "75ms")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/make-server", cfg.ServicePrefix)
	assert.Equal(t, "from-env", cfg.PublicAnonKey)
	assert.Equal(t, []string{"https://a.kr", "https://b.kr"}, cfg.CORSOrigins)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 75*time.Millisecond, cfg.Queue.SyncWriteDelay)
	assert.Equal(t, "@somechannel", cfg.YouTube.ChannelHandle)
	require.NoError(t, cfg.ValidateServer())
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("SESSION_TTL", "forever")
	_, err := Load("")
	require.ErrorContains(t, err, "SESSION_TTL")

	clearEnv(t)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateServer(t *testing.T) {
	clearEnv(t)
	t.Setenv("KV_DRIVER", "memory")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.EqualError(t, cfg.ValidateServer(), "PUBLIC_ANON_KEY is not set")

	cfg.PublicAnonKey = "k"
	require.ErrorContains(t, cfg.ValidateServer(), "ADMIN_PASSWORD")

	cfg.Admin.PasswordHash = "$2a$10$abc"
	require.NoError(t, cfg.ValidateServer())

	cfg.Store.Driver = "mongo"
	require.ErrorContains(t, cfg.Validate(), "unknown KV_DRIVER")
}
