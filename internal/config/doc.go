// Package config provides configuration management for music-catalog.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the scan, playlist and report settings of other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Scans ~/Music recursively for .mp3 files
//	// Reads up to 8 files concurrently
//	// Pairwise running averages in reports
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.MusicPath = "/srv/music"
//	err := settings.Save("/path/to/config.json")
package config
