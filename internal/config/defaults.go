package config

import "github.com/adjutant-mcp/adjutant/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "4280",
		},
		Database: DatabaseConfig{
			Driver:      "postgres",
			AllowWrites: false,
			Postgres: PostgresConfig{
				URL: "postgres://localhost:5432/postgres",
			},
			SQLite: SQLiteConfig{
				Path: "./data/adjutant.db",
			},
		},
		Docker: DockerConfig{
			Host: "",
		},
		KV: KVConfig{
			Driver: "redis",
			Redis: RedisConfig{
				URL: "redis://localhost:6379/0",
			},
			Bolt: BoltConfig{
				Path: "./data/adjutant-kv.db",
			},
		},
		Git: GitConfig{
			RepoPath: ".",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/adjutant.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
