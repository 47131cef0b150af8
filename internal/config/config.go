// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment overrides on top.
// - External errors must be wrapped via this package's error helpers.
package config

import "time"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogAPIKey authenticates requests to the video catalog API.
	// Required for the authority endpoint.
	CatalogAPIKey string `koanf:"catalog_api_key"`

	// CatalogBaseURL overrides the catalog API base URL. Empty means the
	// public endpoint.
	CatalogBaseURL string `koanf:"catalog_base_url"`

	// CatalogPageSize sets how many items each catalog page requests.
	CatalogPageSize int `koanf:"catalog_page_size"`

	// CatalogMaxItems caps the number of items fetched per channel.
	CatalogMaxItems int `koanf:"catalog_max_items"`

	// CatalogTimeout bounds each outbound catalog request.
	CatalogTimeout time.Duration `koanf:"catalog_timeout"`

	// GeminiAPIKey enables AI classification and narrative when set.
	// Empty falls back to deterministic keyword matching and templates.
	GeminiAPIKey string `koanf:"gemini_api_key"`

	// GeminiModel selects the generative model.
	GeminiModel string `koanf:"gemini_model"`

	// ClassifyTitleLimit caps how many titles are sent for AI classification.
	ClassifyTitleLimit int `koanf:"classify_title_limit"`

	// ConsistencyFloor is the minimum consistency percentage reported by
	// the keyword classifier when any item matched.
	ConsistencyFloor int `koanf:"consistency_floor"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		CatalogBaseURL:     "https://www.googleapis.com/youtube/v3",
		CatalogPageSize:    50,
		CatalogMaxItems:    200,
		CatalogTimeout:     15 * time.Second,
		GeminiModel:        "gemini-1.5-flash",
		ClassifyTitleLimit: 100,
		ConsistencyFloor:   30,
		ShutdownTimeout:    10 * time.Second,
	}
}
