package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/lukhatek/Fsociety/internal/models"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	envPrefix = "FORUM"
)

// Config holds all application configuration.
type Config struct {
	Port  string      `mapstructure:"port"`
	Log   LogConfig   `mapstructure:"log"`
	Store StoreConfig `mapstructure:"store"`
	Auth  AuthConfig  `mapstructure:"auth"`
	Users UsersConfig `mapstructure:"users"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	Driver string       `mapstructure:"driver"` // sqlite | mongo
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type AuthConfig struct {
	SigningKey     string        `mapstructure:"signing_key"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"` // 0 = tokens never expire
	BootstrapAdmin string        `mapstructure:"bootstrap_admin"`
	BcryptCost     int           `mapstructure:"bcrypt_cost"`
}

type UsersConfig struct {
	DefaultAvatar string `mapstructure:"default_avatar"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite.path", "forum.db")
	v.SetDefault("store.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo.database", "forum")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", "0s")
	v.SetDefault("auth.bootstrap_admin", "")
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("users.default_avatar", models.DefaultAvatar)
}

// Load reads config.yml from dir, then environment overrides such as
// FORUM_AUTH_SIGNING_KEY. A .env file in the working directory is loaded
// first when present. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.signing_key must be set")
	}
	if c.Auth.TokenTTL < 0 {
		return errors.New("auth.token_ttl must not be negative")
	}
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.SQLite.Path == "" {
			return errors.New("store.sqlite.path must be set")
		}
	case DriverMongo:
		if c.Store.Mongo.URI == "" || c.Store.Mongo.Database == "" {
			return errors.New("store.mongo.uri and store.mongo.database must be set")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	return nil
}
