package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Song is a single song of the catalog.
type Song struct {
	// Name is the song title.
	Name string

	// Album is the album the song belongs to, or NoAlbum.
	Album AlbumRef

	// Duration is the song length in seconds.
	Duration float64
}

// SongKey is the identity of a Song. Songs with equal keys are the same song.
type SongKey struct {
	name     string
	album    AlbumRef
	duration float64
}

// Key returns the song's identity.
//
// Keys compare durations with ==, so a song with a NaN duration is never
// equal to any other song, itself included.
func (s Song) Key() SongKey {
	return SongKey{name: s.Name, album: s.Album, duration: s.Duration}
}

func (s Song) String() string {
	return fmt.Sprintf("Song[name=%s, album=%s, duration=%g]", s.Name, s.Album, s.Duration)
}

// TrackInfo holds the metadata read from one audio file.
type TrackInfo struct {
	// Path is the audio file the metadata was read from.
	Path string

	// Title is the track title. Falls back to the file name when untagged.
	Title string

	// Album is the album title, empty when the file has no album tag.
	Album string

	// Year is the release year, 0 when unknown.
	Year int

	// Duration is the track length in seconds.
	Duration float64

	// HasDuration is false when the file carried no length information.
	HasDuration bool
}

// AlbumRef returns the album reference for the track.
func (t *TrackInfo) AlbumRef() AlbumRef {
	if t.Album == "" {
		return NoAlbum()
	}
	return InAlbum(t.Album)
}

// Song converts the track metadata into a catalog Song.
func (t *TrackInfo) Song() Song {
	return Song{Name: t.Title, Album: t.AlbumRef(), Duration: t.Duration}
}

// TitleFromPath derives a title from an audio file name, dropping the
// directory and the extension.
//
// Example:
//
//	TitleFromPath("/music/01 Intro.mp3") // Returns "01 Intro"
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	multipleSpaces   = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multipleSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
