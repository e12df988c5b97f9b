package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	Postgres  PostgresConfig
	Gemini    GeminiConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	URL string
}

// GeminiConfig is injected into the Gemini client at construction. A missing
// API key is a recoverable condition (the estimator degrades to its fallback),
// not a startup failure.
type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type RateLimitConfig struct {
	AIRequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Comma-separated origins since viper may not parse arrays from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres.url is required - set postgres.url in config.yaml or DATABASE_URL")
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if apiKey := viper.GetString("gemini_api_key"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set auth.jwt_secret in config.yaml or JWT_SECRET")
	}

	cfg.RateLimit.AIRequestsPerMin = viper.GetInt("ratelimit.ai_requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("ratelimit.ai_requests_per_min", 20)
}
