package config

import "time"

type App struct {
	Port     string   `mapstructure:"port"`
	Env      string   `mapstructure:"env"`
	Log      Log      `mapstructure:"log"`
	Database Database `mapstructure:"database"`
	Auth     Auth     `mapstructure:"auth"`
	Server   Server   `mapstructure:"server"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Database struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	URL    string `mapstructure:"url"`
}

type Auth struct {
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	Secret     string        `mapstructure:"secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	TokenStore string        `mapstructure:"token_store"` // memory | database
	// SweepInterval is how often expired tokens are purged when TokenTTL > 0.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type Server struct {
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}
