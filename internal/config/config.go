package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything main() needs to wire the application.
type Config struct {
	Port        string
	LogLevel    string
	DatabaseDSN string

	SessionSecret string
	SessionTTL    time.Duration
}

const defaultSessionTTLSeconds = 60

// Load reads configs/config.yml if present and lets environment variables
// override it. SESSION_SECRET is mandatory; everything else has a default.
func Load() (*Config, error) {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("db.dsn", "blog.db")
	viper.SetDefault("session.ttl_seconds", defaultSessionTTLSeconds)

	_ = viper.BindEnv("port", "PORT")
	_ = viper.BindEnv("log.level", "LOG_LEVEL")
	_ = viper.BindEnv("db.dsn", "DATABASE_DSN")
	_ = viper.BindEnv("session.secret", "SESSION_SECRET")
	_ = viper.BindEnv("session.ttl_seconds", "SESSION_TTL_SECONDS")

	secret := viper.GetString("session.secret")
	if secret == "" {
		return nil, errors.New("session secret is not set (SESSION_SECRET)")
	}

	ttlSeconds := viper.GetInt("session.ttl_seconds")
	if ttlSeconds <= 0 {
		ttlSeconds = defaultSessionTTLSeconds
	}

	return &Config{
		Port:          viper.GetString("port"),
		LogLevel:      viper.GetString("log.level"),
		DatabaseDSN:   viper.GetString("db.dsn"),
		SessionSecret: secret,
		SessionTTL:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}
