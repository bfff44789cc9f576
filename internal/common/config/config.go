// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
	StaticDir      string `mapstructure:"static_dir"`      // frontend assets, served last
	DataDir        string `mapstructure:"data_dir"`        // served under /data
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HuggingFaceConfig holds settings for the remote inference endpoint.
type HuggingFaceConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	ModelName string `mapstructure:"model_name"`
	MaxLength int    `mapstructure:"max_length"`
	Timeout   int    `mapstructure:"timeout"` // milliseconds
}

// ModelURL returns the full inference URL for the configured model.
func (h HuggingFaceConfig) ModelURL() string {
	return fmt.Sprintf("%s/models/%s", h.BaseURL, h.ModelName)
}

// CatalogConfig holds settings for the question catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds settings for the optional evaluation result cache.
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Redis   RedisConfig `mapstructure:"redis"`
	TTL     int         `mapstructure:"ttl"` // seconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
