package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	JWT     JWTConfig     `yaml:"jwt"`
	Redis   RedisConfig   `yaml:"redis"`
	Session SessionConfig `yaml:"session"`
	Field   FieldConfig   `yaml:"field"`
	Store   StoreConfig   `yaml:"store"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// JWTConfig holds JWT authentication settings
type JWTConfig struct {
	Issuer              string `yaml:"issuer"`
	PublicKeyURL        string `yaml:"public_key_url"`
	PublicKeyRefreshHrs int    `yaml:"public_key_refresh_hours"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Address         string `yaml:"address"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	BlacklistPrefix string `yaml:"blacklist_prefix"`
}

// SessionConfig holds query session settings
type SessionConfig struct {
	MaxClients int `yaml:"max_clients"`
}

// FieldConfig holds terrain field settings
type FieldConfig struct {
	ChunkRadius int   `yaml:"chunk_radius"` // chunk-grid rings around origin
	CellRadius  int   `yaml:"cell_radius"`  // cell rings per chunk
	Seed        int64 `yaml:"seed"`         // 0 picks a random seed
}

// StoreConfig holds chunk persistence settings
type StoreConfig struct {
	Path string `yaml:"path"` // empty disables persistence
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.JWT.PublicKeyRefreshHrs == 0 {
		cfg.JWT.PublicKeyRefreshHrs = 24
	}
	if cfg.Session.MaxClients == 0 {
		cfg.Session.MaxClients = 100
	}
	if cfg.Field.ChunkRadius == 0 {
		cfg.Field.ChunkRadius = 2
	}
	if cfg.Field.CellRadius == 0 {
		cfg.Field.CellRadius = 9
	}

	return &cfg, nil
}
