package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/geocode-microservice/internal/geocode"
	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"github.com/geocode-microservice/internal/pkg/httpclient"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Geocode GeocodeConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type GeocodeConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	ProxyURL       string
}

type LogConfig struct {
	Level string
}

// Load reads ./.env (if present) and the process environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit env file path. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GEOCODE_BASE_URL", geocode.DefaultBaseURL)
	v.SetDefault("GEOCODE_REQUEST_TIMEOUT", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ORIGINS"),
		},
		Geocode: GeocodeConfig{
			APIKey:         strings.TrimSpace(v.GetString("GOOGLE_MAPS_API_KEY")),
			BaseURL:        v.GetString("GEOCODE_BASE_URL"),
			RequestTimeout: time.Duration(v.GetInt("GEOCODE_REQUEST_TIMEOUT")) * time.Second,
			ProxyURL:       v.GetString("GEOCODE_PROXY_URL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Geocode.RequestTimeout <= 0 {
		cfg.Geocode.RequestTimeout = 10 * time.Second
	}

	return cfg, nil
}

// APIKey resolves the default Google Maps API key. Callers use it to fill
// Request.Key when the caller of the service supplied none.
func (c *Config) APIKey() (string, error) {
	if c.Geocode.APIKey == "" {
		return "", apperrors.MissingCredential().WithDetail("env", "GOOGLE_MAPS_API_KEY")
	}
	return c.Geocode.APIKey, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// HTTPClientConfig - transport settings for the geocode delegate
func (c *Config) HTTPClientConfig() httpclient.Config {
	return httpclient.Config{
		Timeout:  c.Geocode.RequestTimeout,
		ProxyURL: c.Geocode.ProxyURL,
	}
}

// ClientConfig - endpoint settings for the geocode client
func (c *Config) ClientConfig() geocode.ClientConfig {
	return geocode.ClientConfig{BaseURL: c.Geocode.BaseURL}
}
