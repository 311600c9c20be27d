package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "LIBRARY"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "library.db")
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "password")
	v.SetDefault("auth.secret", "local_dev_secret")
	v.SetDefault("auth.token_ttl", time.Duration(0))
	v.SetDefault("auth.token_store", "memory")
	v.SetDefault("auth.sweep_interval", 10*time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load reads defaults, then the optional config file at path, then LIBRARY_*
// environment variables (LIBRARY_DATABASE_URL, LIBRARY_AUTH_SECRET, ...). A
// bare PORT variable wins over everything for the listen port.
func Load(path string) (App, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return App{}, err
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	if cfg.Env != "dev" && cfg.Auth.Secret == "local_dev_secret" {
		slog.Warn("using default auth secret outside dev", "env", cfg.Env)
	}
	return cfg, nil
}

func (c App) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return &ConfigError{Field: "database.driver", Message: "must be sqlite or postgres"}
	}
	if c.Database.URL == "" {
		return &ConfigError{Field: "database.url", Message: "required"}
	}
	switch c.Auth.TokenStore {
	case "memory", "database":
	default:
		return &ConfigError{Field: "auth.token_store", Message: "must be memory or database"}
	}
	if c.Auth.Username == "" {
		return &ConfigError{Field: "auth.username", Message: "required"}
	}
	if c.Auth.TokenTTL < 0 {
		return &ConfigError{Field: "auth.token_ttl", Message: "must not be negative"}
	}
	if c.Auth.TokenTTL > 0 && c.Auth.SweepInterval <= 0 {
		return &ConfigError{Field: "auth.sweep_interval", Message: "must be positive when auth.token_ttl is set"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// IsConfigError reports whether err is a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// SlogLevel parses the configured log level, defaulting to info.
func (c App) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
