// Package config loads runtime settings from the environment and an optional .env file.
// File: config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultMaxUploadBytes is the per-file attachment ceiling (10 MiB).
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

// Config holds every runtime setting of the portal.
type Config struct {
	Port           string
	Env            string
	StaticDir      string
	SessionSecret  string
	SessionBackend string
	SessionSecure  bool
	MaxUploadBytes int64
	ApplicationURL string
	GeminiAPIKey   string
	GeminiModel    string
	LogDir         string
	MetricsEnabled bool
	AWSRegion      string
	TracingEnabled bool
}

// Load reads dotEnvPath when it exists, then resolves each key from the
// environment with its default.
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, errors.Wrapf(err, "config: load %s", dotEnvPath)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "config: stat %s", dotEnvPath)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STATIC_DIR", "dist")
	v.SetDefault("SESSION_SECRET", "rpe-portal-dev-secret")
	v.SetDefault("SESSION_BACKEND", "cookie")
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	v.SetDefault("APPLICATION_URL", "http://localhost:3000")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("METRICS_ENABLED", false)
	v.SetDefault("AWS_REGION", "ap-southeast-1")
	v.SetDefault("TRACING_ENABLED", false)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("APP_ENV"),
		StaticDir:      v.GetString("STATIC_DIR"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		SessionBackend: v.GetString("SESSION_BACKEND"),
		SessionSecure:  v.GetBool("SESSION_SECURE"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		ApplicationURL: v.GetString("APPLICATION_URL"),
		GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		GeminiModel:    v.GetString("GEMINI_MODEL"),
		LogDir:         v.GetString("LOG_DIR"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
		AWSRegion:      v.GetString("AWS_REGION"),
		TracingEnabled: v.GetBool("TRACING_ENABLED"),
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, errors.Errorf("config: MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	if cfg.SessionBackend != "cookie" && cfg.SessionBackend != "memory" {
		return nil, errors.Errorf("config: unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
