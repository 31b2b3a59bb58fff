package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings
type Config struct {
	Env      string         `yaml:"-"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig holds storage settings. Driver selects the engine:
// "sqlite" (default, Path is the database file or ":memory:") or "mysql".
type DatabaseConfig struct {
	Driver          string `yaml:"driver"`
	Path            string `yaml:"path"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// RedisConfig holds optional Redis settings. Enabled=false runs the server
// without caching or rate limiting.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// Load reads the YAML config file, then applies environment-variable
// overrides and defaults. A missing file is not an error: the defaults plus
// env vars are a complete configuration, as in env-only deployments.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.Env = envString("APP_ENV", "local")
	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	return cfg, nil
}

// IsDevelopment reports whether the server runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "local" || c.Env == "dev" || c.Env == "development"
}

// DSN builds the MySQL DSN from the database settings
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

func (c *Config) applyEnvOverrides() {
	c.Server.Port = envInt("PORT", c.Server.Port)
	c.Database.Driver = envString("DB_DRIVER", c.Database.Driver)
	c.Database.Path = envString("SQLITE_PATH", c.Database.Path)
	c.Database.Host = envString("DB_HOST", c.Database.Host)
	c.Database.Port = envInt("DB_PORT", c.Database.Port)
	c.Database.User = envString("DB_USER", c.Database.User)
	c.Database.Password = envString("DB_PASSWORD", c.Database.Password)
	c.Database.Name = envString("DB_NAME", c.Database.Name)
	c.Redis.Host = envString("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = envInt("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = envString("REDIS_PASSWORD", c.Redis.Password)
	c.CORS.AllowOrigins = envString("CORS_ALLOW_ORIGINS", c.CORS.AllowOrigins)

	if v := strings.TrimSpace(os.Getenv("REDIS_ENABLED")); v != "" {
		c.Redis.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "lifeline.db"
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
