// Package config loads the plugin's TOML configuration file.
package config

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/genart-dev/plugin-shapes/pkg/errors"
	"github.com/genart-dev/plugin-shapes/pkg/layer"
)

// Transport names for the MCP server.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Store backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the root configuration document.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Render RenderConfig `toml:"render"`
}

// ServerConfig selects the MCP transport.
type ServerConfig struct {
	Transport string `toml:"transport"` // stdio or sse
	Listen    string `toml:"listen"`    // sse only, host:port
}

// StoreConfig selects and configures the layer store backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // memory, file, redis, or mongo

	// file backend
	Path string `toml:"path"`

	// redis backend
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`

	// mongo backend
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// RenderConfig sets the preview document defaults.
type RenderConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Transport: TransportStdio,
			Listen:    "127.0.0.1:8722",
		},
		Store: StoreConfig{
			Backend: BackendMemory,
		},
		Render: RenderConfig{
			Width:  800,
			Height: 600,
		},
	}
}

// Load reads a TOML config file on top of the defaults. A missing file is
// not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportSSE:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown transport %q", c.Server.Transport)
	}
	switch c.Store.Backend {
	case BackendMemory, BackendRedis, BackendMongo:
	case BackendFile:
		if c.Store.Path == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "file backend requires store.path")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// OpenStore constructs the configured layer store backend.
func OpenStore(ctx context.Context, cfg StoreConfig) (layer.Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return layer.NewMemoryStore(), nil
	case BackendFile:
		return layer.NewFileStore(cfg.Path)
	case BackendRedis:
		return layer.NewRedisStore(ctx, layer.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case BackendMongo:
		return layer.NewMongoStore(ctx, layer.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
}
