package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/adjutant-mcp/adjutant/internal/common"
)

// Config represents the configuration shared by all Adjutant server binaries.
// Each binary reads its own backend section plus server and logging.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Database DatabaseConfig       `toml:"database"`
	Docker   DockerConfig         `toml:"docker"`
	KV       KVConfig             `toml:"kv"`
	Git      GitConfig            `toml:"git"`
	Logging  common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// DatabaseConfig contains relational backend settings.
type DatabaseConfig struct {
	Driver      string         `toml:"driver"` // "postgres" or "sqlite"
	AllowWrites bool           `toml:"allow_writes"`
	Postgres    PostgresConfig `toml:"postgres"`
	SQLite      SQLiteConfig   `toml:"sqlite"`
}

// PostgresConfig contains Postgres-specific settings.
type PostgresConfig struct {
	URL string `toml:"url"`
}

// SQLiteConfig contains SQLite-specific settings.
type SQLiteConfig struct {
	Path string `toml:"path"`
}

// DockerConfig contains container runtime settings.
// An empty host falls back to DOCKER_HOST / the platform default socket.
type DockerConfig struct {
	Host string `toml:"host"`
}

// KVConfig contains key-value backend settings.
type KVConfig struct {
	Driver string      `toml:"driver"` // "redis" or "bolt"
	Redis  RedisConfig `toml:"redis"`
	Bolt   BoltConfig  `toml:"bolt"`
}

// RedisConfig contains Redis-specific settings.
type RedisConfig struct {
	URL string `toml:"url"`
}

// BoltConfig contains bbolt-specific settings.
type BoltConfig struct {
	Path string `toml:"path"`
}

// GitConfig contains version-control backend settings.
type GitConfig struct {
	RepoPath string `toml:"repo_path"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing file is not an error; defaults and env still apply.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies ADJUTANT_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("ADJUTANT_PORT"); port != "" {
		config.Server.Port = port
	}
	if driver := os.Getenv("ADJUTANT_DATABASE_DRIVER"); driver != "" {
		config.Database.Driver = driver
	}
	if url := os.Getenv("ADJUTANT_POSTGRES_URL"); url != "" {
		config.Database.Postgres.URL = url
	}
	if path := os.Getenv("ADJUTANT_SQLITE_PATH"); path != "" {
		config.Database.SQLite.Path = path
	}
	if writes := os.Getenv("ADJUTANT_ALLOW_WRITES"); writes != "" {
		if b, err := strconv.ParseBool(writes); err == nil {
			config.Database.AllowWrites = b
		}
	}
	if host := os.Getenv("ADJUTANT_DOCKER_HOST"); host != "" {
		config.Docker.Host = host
	}
	if driver := os.Getenv("ADJUTANT_KV_DRIVER"); driver != "" {
		config.KV.Driver = driver
	}
	if url := os.Getenv("ADJUTANT_REDIS_URL"); url != "" {
		config.KV.Redis.URL = url
	}
	if path := os.Getenv("ADJUTANT_BOLT_PATH"); path != "" {
		config.KV.Bolt.Path = path
	}
	if repo := os.Getenv("ADJUTANT_GIT_REPO"); repo != "" {
		config.Git.RepoPath = repo
	}
	if level := os.Getenv("ADJUTANT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if file := os.Getenv("ADJUTANT_LOG_FILE"); file != "" {
		config.Logging.FilePath = file
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port string, name string) {
	if port != "" {
		config.Server.Port = port
	}
	if name != "" {
		config.Server.Name = name
	}
}
