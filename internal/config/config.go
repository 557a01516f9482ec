// Package config resolves runtime settings: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Store struct {
	Driver      string `yaml:"driver"`
	DatabaseURL string `yaml:"database_url"`
	SQLitePath  string `yaml:"sqlite_path"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type Admin struct {
	Username      string        `yaml:"username"`
	Password      string        `yaml:"password"`
	PasswordHash  string        `yaml:"password_hash"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type YouTube struct {
	APIKey        string `yaml:"api_key"`
	ChannelHandle string `yaml:"channel_handle"`
	MaxResults    int    `yaml:"max_results"`
}

type Queue struct {
	SyncWriteDelay time.Duration `yaml:"sync_write_delay"`
	FAQSeedDelay   time.Duration `yaml:"faq_seed_delay"`
}

type Config struct {
	Port          string   `yaml:"port"`
	ServicePrefix string   `yaml:"service_prefix"`
	PublicAnonKey string   `yaml:"public_anon_key"`
	CORSOrigins   []string `yaml:"cors_origins"`

	Store   Store   `yaml:"store"`
	Redis   Redis   `yaml:"redis"`
	Admin   Admin   `yaml:"admin"`
	YouTube YouTube `yaml:"youtube"`
	Queue   Queue   `yaml:"queue"`
}

func Default() Config {
	return Config{
		Port:          "8080",
		ServicePrefix: "/api",
		CORSOrigins:   []string{"*"},
		Store: Store{
			Driver:     DriverPostgres,
			SQLitePath: "planb.db",
		},
		Admin: Admin{
			Username:      "admin",
			SessionTTL:    24 * time.Hour,
			SweepInterval: time.Hour,
		},
		YouTube: YouTube{
			ChannelHandle: "@planbmusickr",
			MaxResults:    50,
		},
		Queue: Queue{
			SyncWriteDelay: 50 * time.Millisecond,
			FAQSeedDelay:   10 * time.Millisecond,
		},
	}
}

// Load builds the config. path may be empty, in which case CONFIG_FILE is
// consulted; a missing file is only an error when one was named.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = d
		return nil
	}

	str("PORT", &c.Port)
	str("SERVICE_PREFIX", &c.ServicePrefix)
	str("PUBLIC_ANON_KEY", &c.PublicAnonKey)
	if v := os.Getenv("CORS_ORIGINS"); strings.TrimSpace(v) != "" {
		c.CORSOrigins = splitList(v)
	}

	str("KV_DRIVER", &c.Store.Driver)
	str("DATABASE_URL", &c.Store.DatabaseURL)
	str("SQLITE_PATH", &c.Store.SQLitePath)

	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)

	str("ADMIN_USERNAME", &c.Admin.Username)
	str("ADMIN_PASSWORD", &c.Admin.Password)
	str("ADMIN_PASSWORD_HASH", &c.Admin.PasswordHash)

	str("YOUTUBE_API_KEY", &c.YouTube.APIKey)
	str("YOUTUBE_CHANNEL_HANDLE", &c.YouTube.ChannelHandle)
	if v := strings.TrimSpace(os.Getenv("YOUTUBE_MAX_RESULTS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("YOUTUBE_MAX_RESULTS: %w", err)
		}
		c.YouTube.MaxResults = n
	}

	return errors.Join(
		dur("SESSION_TTL", &c.Admin.SessionTTL),
		dur("SESSION_SWEEP_INTERVAL", &c.Admin.SweepInterval),
		dur("SYNC_WRITE_DELAY", &c.Queue.SyncWriteDelay),
		dur("FAQ_SEED_DELAY", &c.Queue.FAQSeedDelay),
	)
}

func (c *Config) normalize() {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.ServicePrefix = "/" + strings.Trim(strings.TrimSpace(c.ServicePrefix), "/")
	if c.YouTube.ChannelHandle != "" && !strings.HasPrefix(c.YouTube.ChannelHandle, "@") {
		c.YouTube.ChannelHandle = "@" + c.YouTube.ChannelHandle
	}
}

// Validate checks what every command needs: a usable store.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("SQLITE_PATH is not set")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown KV_DRIVER %q", c.Store.Driver)
	}
	if c.YouTube.MaxResults <= 0 {
		return errors.New("youtube max results must be positive")
	}
	return nil
}

// ValidateServer adds the checks only the HTTP server needs.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.PublicAnonKey == "" {
		return errors.New("PUBLIC_ANON_KEY is not set")
	}
	if c.Admin.Username == "" {
		return errors.New("ADMIN_USERNAME is not set")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
