// internal/evaluation/config.go
package evaluation

import (
	"time"

	"interview-backend/internal/common/config"
)

// Config holds the settings for the remote evaluation client.
type Config struct {
	ModelURL    string
	APIKey      string
	MaxLength   int
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

// ConfigFrom maps the application HuggingFace section onto the client
// config. Sampling parameters are fixed; only endpoint, key, length and
// timeout are operator-controlled.
func ConfigFrom(hf config.HuggingFaceConfig) *Config {
	return &Config{
		ModelURL:    hf.ModelURL(),
		APIKey:      hf.APIKey,
		MaxLength:   hf.MaxLength,
		Temperature: 0.7,
		TopP:        0.9,
		Timeout:     config.GetDuration(hf.Timeout),
	}
}
