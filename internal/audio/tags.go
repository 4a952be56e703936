package audio

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/bogem/id3v2"
	"github.com/handiism/music-catalog/internal/model"
)

// TagReader reads catalog metadata from the ID3v2 tags of MP3 files.
//
// Example:
//
//	reader := NewTagReader()
//	info, err := reader.ReadTrack(path)
//	if err != nil {
//	    log.Printf("Failed to read %s: %v", path, err)
//	}
type TagReader struct {
	options id3v2.Options
}

// NewTagReader creates a new TagReader.
func NewTagReader() *TagReader {
	return &TagReader{options: id3v2.Options{Parse: true}}
}

// ReadTrack reads the tags of the MP3 file at path.
//
// Files without tags are not an error: the title falls back to the file name,
// the track has no album, no year and no duration.
func (r *TagReader) ReadTrack(path string) (*model.TrackInfo, error) {
	tag, err := id3v2.Open(path, r.options)
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	info := &model.TrackInfo{
		Path:  path,
		Title: strings.TrimSpace(tag.Title()),
		Album: strings.TrimSpace(tag.Album()),
	}
	if info.Title == "" {
		info.Title = model.TitleFromPath(path)
	}

	// ID3v2.3 keeps the year in TYER, ID3v2.4 in TDRC.
	info.Year = parseYear(tag.Year())
	if info.Year == 0 {
		info.Year = parseYear(tag.GetTextFrame("TDRC").Text)
	}

	if ms, ok := parseMillis(tag.GetTextFrame("TLEN").Text); ok {
		info.Duration = ms / 1000
		info.HasDuration = true
	}

	return info, nil
}

// parseYear returns the year at the start of an ID3 time stamp such as
// "1973" or "1973-03-01", or 0.
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0
	}
	for _, c := range s[:4] {
		if !unicode.IsDigit(c) {
			return 0
		}
	}
	year, _ := strconv.Atoi(s[:4])
	return year
}

// parseMillis parses a TLEN value, the track length in milliseconds.
func parseMillis(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	if s == "" {
		return 0, false
	}
	ms, err := strconv.ParseFloat(s, 64)
	if err != nil || ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, false
	}
	return ms, true
}
