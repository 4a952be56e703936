package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/handiism/music-catalog/internal/audio"
	"github.com/handiism/music-catalog/internal/report"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() error = %v", err)
	}
	if !strings.HasSuffix(s.MusicPath, "Music") {
		t.Errorf("MusicPath = %q, want a path ending in Music", s.MusicPath)
	}
	if s.ToAverageMode() != report.AveragePairwise {
		t.Error("default average mode should be pairwise")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.MaxConcurrentReads != DefaultSettings().MaxConcurrentReads {
		t.Error("Load() of a missing file should return the defaults")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"music_path": "/srv/music", "average_mode": "mean"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.MusicPath != "/srv/music" {
		t.Errorf("MusicPath = %q, want /srv/music", s.MusicPath)
	}
	if s.ToAverageMode() != report.AverageMean {
		t.Error("average_mode mean should map to AverageMean")
	}
	if !slices.Equal(s.Extensions, []string{".mp3"}) {
		t.Errorf("Extensions = %v, want default [.mp3]", s.Extensions)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken json", `{"music_path": `},
		{"bad average mode", `{"average_mode": "median"}`},
		{"bad concurrency", `{"max_concurrent_reads": 0}`},
		{"bad playlist format", `{"playlist_format": "xspf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%s) should fail", tt.data)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.MusicPath = "/data/music"
	s.PlaylistFormat = "pls"
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.MusicPath != s.MusicPath || loaded.PlaylistFormat != "pls" {
		t.Errorf("Load() = %+v, want %+v", loaded, s)
	}
	if loaded.ToPlaylistCreator().Format() != audio.FormatPLS {
		t.Error("ToPlaylistCreator() should use the pls format")
	}
}

func TestToScanConfig(t *testing.T) {
	s := DefaultSettings()
	s.Extensions = []string{"MP3", ".Mp3", " ", "flac"}
	s.Recursive = false
	s.MaxConcurrentReads = 3

	cfg := s.ToScanConfig()
	want := []string{".mp3", ".mp3", ".flac"}
	if !slices.Equal(cfg.Extensions, want) {
		t.Errorf("Extensions = %v, want %v", cfg.Extensions, want)
	}
	if cfg.Recursive || cfg.MaxConcurrentReads != 3 {
		t.Errorf("ToScanConfig() = %+v", cfg)
	}
}
