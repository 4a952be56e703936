package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/music-catalog/internal/audio"
	"github.com/handiism/music-catalog/internal/report"
	"github.com/handiism/music-catalog/internal/scan"
)

// Settings holds all configuration options.
type Settings struct {
	// Scan settings
	MusicPath          string   `json:"music_path"`
	Extensions         []string `json:"extensions"`
	Recursive          bool     `json:"recursive"`
	MaxConcurrentReads int      `json:"max_concurrent_reads"`

	// Playlist settings
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended            bool   `json:"m3u_extended"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`

	// Report settings
	AverageMode string `json:"average_mode"` // pairwise, mean
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		MusicPath:          filepath.Join(homeDir, "Music"),
		Extensions:         []string{".mp3"},
		Recursive:          true,
		MaxConcurrentReads: 8,

		PlaylistFormat:         "m3u",
		M3UExtended:            true,
		PlaylistFileNameFormat: "{album}",

		AverageMode: "pairwise",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: the defaults are returned. Fields absent
// from the file keep their default value.
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
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
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

// Validate reports settings that cannot be used.
func (s *Settings) Validate() error {
	if s.MaxConcurrentReads < 1 {
		return fmt.Errorf("max_concurrent_reads must be at least 1, got %d", s.MaxConcurrentReads)
	}
	switch s.AverageMode {
	case "pairwise", "mean":
	default:
		return fmt.Errorf("average_mode must be pairwise or mean, got %q", s.AverageMode)
	}
	switch s.PlaylistFormat {
	case "m3u", "pls", "wpl", "zpl":
	default:
		return fmt.Errorf("playlist_format must be one of m3u, pls, wpl, zpl, got %q", s.PlaylistFormat)
	}
	return nil
}

// ToScanConfig converts settings to a scan.Config.
//
// Extensions are lower-cased and given a leading dot when missing.
func (s *Settings) ToScanConfig() *scan.Config {
	exts := make([]string, 0, len(s.Extensions))
	for _, ext := range s.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}

	return &scan.Config{
		Extensions:         exts,
		Recursive:          s.Recursive,
		MaxConcurrentReads: s.MaxConcurrentReads,
	}
}

// ToPlaylistCreator creates the playlist creator the settings describe.
func (s *Settings) ToPlaylistCreator() *audio.PlaylistCreator {
	return audio.NewPlaylistCreator(audio.ParsePlaylistFormat(s.PlaylistFormat), s.M3UExtended)
}

// ToAverageMode converts the average_mode setting.
func (s *Settings) ToAverageMode() report.AverageMode {
	if s.AverageMode == "mean" {
		return report.AverageMean
	}
	return report.AveragePairwise
}
