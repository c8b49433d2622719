package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all client settings resolved from .env and the environment.
type Config struct {
	Env     string
	APIBase string

	Session SessionConfig
	HTTP    HTTPConfig
	Booking BookingConfig
	Export  ExportConfig
	Log     LogConfig
}

// SessionConfig controls where the auth token is persisted between runs.
type SessionConfig struct {
	TokenPath string
}

// HTTPConfig tunes outbound request behaviour. A zero Timeout means no
// request timeout at all; a hung request simply stays in flight.
type HTTPConfig struct {
	Timeout time.Duration
}

// BookingConfig carries the public origin used when displaying the
// per-user meeting booking link.
type BookingConfig struct {
	Origin string
}

// ExportConfig controls where rendered agenda exports are written.
type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load resolves configuration from .env (when present) and the process
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.APIBase = strings.TrimRight(v.GetString("API_BASE_URL"), "/")

	cfg.Session = SessionConfig{TokenPath: v.GetString("TOKEN_PATH")}
	cfg.HTTP = HTTPConfig{Timeout: parseDuration(v.GetString("HTTP_TIMEOUT"), 0)}
	cfg.Booking = BookingConfig{Origin: strings.TrimRight(v.GetString("BOOKING_ORIGIN"), "/")}
	cfg.Export = ExportConfig{Dir: v.GetString("EXPORT_DIR")}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("API_BASE_URL", "http://localhost:8000")
	v.SetDefault("TOKEN_PATH", defaultTokenPath())
	v.SetDefault("HTTP_TIMEOUT", "0")
	v.SetDefault("BOOKING_ORIGIN", "http://localhost:8000")
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".schedassist-token"
	}
	return filepath.Join(home, ".schedassist", "token")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
