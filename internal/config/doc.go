// Package config provides configuration management for folio-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads into the current directory
//	// 5 concurrent tile fetches per page, 5 concurrent canvases
//	// 5 retry attempts with 1s-10s exponential backoff
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Defaults are used if the file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - The legacy tile-server base URL and zoom level
//   - Output directory and default page range
//   - Concurrency ceilings and batch size
//   - Retry behavior and HTTP timeout
//   - JPEG encoding quality
package config
