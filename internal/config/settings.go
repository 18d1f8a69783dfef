package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// Server settings
	BaseURL   string `json:"base_url"`
	UserAgent string `json:"user_agent"`
	ZoomLevel int    `json:"zoom_level"`

	// Output settings
	OutputDir   string `json:"output_dir"`
	JPEGQuality int    `json:"jpeg_quality"`

	// Default page range for legacy manuscripts
	RangeBegin int `json:"range_begin"`
	RangeEnd   int `json:"range_end"`

	// Concurrency settings
	MaxConcurrentCanvases int `json:"max_concurrent_canvases"`
	MaxConcurrentTiles    int `json:"max_concurrent_tiles"`
	LegacyBatchSize       int `json:"legacy_batch_size"`

	// Retry settings
	DownloadMaxRetries  int     `json:"download_max_retries"`
	RetryMinWaitSeconds float64 `json:"retry_min_wait_seconds"`
	RetryMaxWaitSeconds float64 `json:"retry_max_wait_seconds"`
	HTTPTimeoutSeconds  float64 `json:"http_timeout_seconds"`
}

// DefaultSettings returns settings with default values. The base URL,
// zoom level and page range defaults match the British Library manuscript
// proxy the legacy mode was built against.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:   "http://www.bl.uk/manuscripts/Proxy.ashx?view=",
		UserAgent: "Mozilla/5.0",
		ZoomLevel: 13,

		OutputDir:   ".",
		JPEGQuality: 90,

		RangeBegin: 1,
		RangeEnd:   259,

		MaxConcurrentCanvases: 5,
		MaxConcurrentTiles:    5,
		LegacyBatchSize:       5,

		DownloadMaxRetries:  5,
		RetryMinWaitSeconds: 1,
		RetryMaxWaitSeconds: 10,
		HTTPTimeoutSeconds:  60,
	}
}

// Load reads settings from a JSON file. A missing file is not an error:
// defaults are returned.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RetryMinWait returns the minimum retry backoff as a duration.
func (s *Settings) RetryMinWait() time.Duration {
	return time.Duration(s.RetryMinWaitSeconds * float64(time.Second))
}

// RetryMaxWait returns the maximum retry backoff as a duration.
func (s *Settings) RetryMaxWait() time.Duration {
	return time.Duration(s.RetryMaxWaitSeconds * float64(time.Second))
}

// HTTPTimeout returns the per-request timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds * float64(time.Second))
}
