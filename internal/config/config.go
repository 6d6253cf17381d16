package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the catalog service.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
	HTTP    HTTPConfig
}

// AppConfig holds service identity and listen port.
type AppConfig struct {
	Name    string
	Version string
	Port    string
}

// LoggerConfig maps onto kit.LogConfig.
type LoggerConfig struct {
	Level      string
	Format     string
	OutputPath string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type HTTPConfig struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

// Load reads app.env from path if present, then the environment. Environment
// values win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("SERVICE_NAME"),
			Version: v.GetString("APP_VERSION"),
			Port:    v.GetString("PORT"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Format:     v.GetString("LOG_FORMAT"),
			OutputPath: v.GetString("LOG_OUTPUT_PATH"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Token:   v.GetString("METRICS_TOKEN"),
		},
		HTTP: HTTPConfig{
			RateLimitPerMin: v.GetInt("RATE_LIMIT_PER_MIN"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "catalog")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("PORT", "8080")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_TOKEN", "")

	v.SetDefault("RATE_LIMIT_PER_MIN", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func (c *Config) validate() error {
	if c.App.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.HTTP.RateLimitPerMin < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MIN must be >= 0, got %d", c.HTTP.RateLimitPerMin)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logger.Format)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.App.Port
}

// String masks the metrics token.
func (c *Config) String() string {
	token := ""
	if c.Metrics.Token != "" {
		token = "***"
	}
	return fmt.Sprintf("Config{Service: %s, Version: %s, Port: %s, Log: %s/%s, Metrics: %t token=%q, RateLimit: %d/min}",
		c.App.Name, c.App.Version, c.App.Port, c.Logger.Level, c.Logger.Format,
		c.Metrics.Enabled, token, c.HTTP.RateLimitPerMin)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
