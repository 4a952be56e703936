package model

import (
	"math"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.m3u", "normal-file.m3u"},
		{"file:with:colons.m3u", "file_with_colons.m3u"},
		{"file<with>brackets.m3u", "file_with_brackets.m3u"},
		{"file/with\\slashes.m3u", "file_with_slashes.m3u"},
		{"file|with|pipes.m3u", "file_with_pipes.m3u"},
		{"file?with*wildcards.m3u", "file_with_wildcards.m3u"},
		{"file\"with\"quotes.m3u", "file_with_quotes.m3u"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlbumRef(t *testing.T) {
	none := NoAlbum()
	if !none.IsNone() {
		t.Error("NoAlbum().IsNone() should be true")
	}
	if name, ok := none.Name(); ok || name != "" {
		t.Errorf("NoAlbum().Name() = (%q, %v), want (\"\", false)", name, ok)
	}
	if none != (AlbumRef{}) {
		t.Error("zero AlbumRef should equal NoAlbum()")
	}

	ref := InAlbum("Abbey Road")
	if ref.IsNone() {
		t.Error("InAlbum().IsNone() should be false")
	}
	if name, ok := ref.Name(); !ok || name != "Abbey Road" {
		t.Errorf("InAlbum().Name() = (%q, %v), want (%q, true)", name, ok, "Abbey Road")
	}
	if !ref.Is("Abbey Road") || ref.Is("Help!") {
		t.Error("Is() should match only the referenced album")
	}
	if ref != InAlbum("Abbey Road") {
		t.Error("refs to the same album should be equal")
	}
	if InAlbum("") == NoAlbum() {
		t.Error("a ref to the album named \"\" is not NoAlbum")
	}
}

func TestSong_Key(t *testing.T) {
	base := Song{Name: "s", Album: InAlbum("A"), Duration: 100}

	tests := []struct {
		name  string
		other Song
		equal bool
	}{
		{"identical", Song{Name: "s", Album: InAlbum("A"), Duration: 100}, true},
		{"different name", Song{Name: "t", Album: InAlbum("A"), Duration: 100}, false},
		{"different album", Song{Name: "s", Album: InAlbum("B"), Duration: 100}, false},
		{"no album", Song{Name: "s", Album: NoAlbum(), Duration: 100}, false},
		{"different duration", Song{Name: "s", Album: InAlbum("A"), Duration: 100.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Key() == tt.other.Key(); got != tt.equal {
				t.Errorf("Key() equality = %v, want %v", got, tt.equal)
			}
		})
	}

	nan := Song{Name: "n", Duration: math.NaN()}
	if nan.Key() == nan.Key() {
		t.Error("a NaN-duration song should never equal itself")
	}
}

func TestTrackInfo_Song(t *testing.T) {
	tagged := &TrackInfo{Path: "/m/a.mp3", Title: "Intro", Album: "Debut", Duration: 61.5}
	song := tagged.Song()
	if song.Name != "Intro" || !song.Album.Is("Debut") || song.Duration != 61.5 {
		t.Errorf("Song() = %v", song)
	}

	loose := &TrackInfo{Path: "/m/b.mp3", Title: "Demo"}
	if !loose.Song().Album.IsNone() {
		t.Error("a track without album tag should map to NoAlbum")
	}
}

func TestTitleFromPath(t *testing.T) {
	if got := TitleFromPath("/music/Artist/01 Intro.mp3"); got != "01 Intro" {
		t.Errorf("TitleFromPath() = %q, want %q", got, "01 Intro")
	}
}
