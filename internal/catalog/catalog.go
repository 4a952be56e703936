package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/handiism/music-catalog/internal/model"
)

// ErrInvalidAlbumReference is returned by AddSong when a song references an
// album that has not been added to the catalog.
var ErrInvalidAlbumReference = errors.New("invalid album reference")

// Catalog holds albums and songs in memory.
//
// The zero value is not usable; create catalogs with New.
type Catalog struct {
	years      map[string]int
	albumOrder []string

	songs   []model.Song
	songSet map[model.SongKey]struct{}
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		years:   make(map[string]int),
		songSet: make(map[model.SongKey]struct{}),
	}
}

// AddAlbum adds an album, or replaces the year of an album with the same name.
func (c *Catalog) AddAlbum(name string, year int) {
	if _, ok := c.years[name]; !ok {
		c.albumOrder = append(c.albumOrder, name)
	}
	c.years[name] = year
}

// AddSong adds a song to the catalog.
//
// When album names an album that was never added, AddSong returns an error
// wrapping ErrInvalidAlbumReference and leaves the catalog unchanged. Adding
// a song equal to one already present is a no-op.
func (c *Catalog) AddSong(name string, album model.AlbumRef, duration float64) error {
	if albumName, ok := album.Name(); ok {
		if _, known := c.years[albumName]; !known {
			return fmt.Errorf("%w: %q", ErrInvalidAlbumReference, albumName)
		}
	}

	song := model.Song{Name: name, Album: album, Duration: duration}
	key := song.Key()
	if _, dup := c.songSet[key]; dup {
		return nil
	}
	c.songSet[key] = struct{}{}
	c.songs = append(c.songs, song)
	return nil
}

// Len returns the number of distinct songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// AlbumCount returns the number of albums.
func (c *Catalog) AlbumCount() int {
	return len(c.albumOrder)
}

// Year returns the release year of the named album.
func (c *Catalog) Year(album string) (int, bool) {
	year, ok := c.years[album]
	return year, ok
}

// Songs yields every song in insertion order.
func (c *Catalog) Songs() iter.Seq[model.Song] {
	return slices.Values(c.songs)
}

// SongsInAlbum yields the songs whose album reference equals ref, in
// insertion order.
func (c *Catalog) SongsInAlbum(ref model.AlbumRef) iter.Seq[model.Song] {
	return func(yield func(model.Song) bool) {
		for _, s := range c.songs {
			if s.Album == ref && !yield(s) {
				return
			}
		}
	}
}

// OrderedSongNames yields the name of every song in ascending order.
//
// Names are not deduplicated: two different songs sharing a name yield that
// name twice.
func (c *Catalog) OrderedSongNames() iter.Seq[string] {
	names := make([]string, len(c.songs))
	for i, s := range c.songs {
		names[i] = s.Name
	}
	slices.Sort(names)
	return slices.Values(names)
}

// AlbumNames yields every album name. Callers should not rely on the order.
func (c *Catalog) AlbumNames() iter.Seq[string] {
	return slices.Values(slices.Clone(c.albumOrder))
}

// AlbumInYear yields the names of the albums released in year.
func (c *Catalog) AlbumInYear(year int) iter.Seq[string] {
	var names []string
	for _, name := range c.albumOrder {
		if c.years[name] == year {
			names = append(names, name)
		}
	}
	return slices.Values(names)
}

// CountSongs returns the number of songs in the named album. Unknown albums
// have no songs.
func (c *Catalog) CountSongs(album string) int {
	return c.count(model.InAlbum(album))
}

// CountSongsInNoAlbum returns the number of songs that belong to no album.
func (c *Catalog) CountSongsInNoAlbum() int {
	return c.count(model.NoAlbum())
}

func (c *Catalog) count(ref model.AlbumRef) int {
	n := 0
	for range c.SongsInAlbum(ref) {
		n++
	}
	return n
}

// AverageDurationOfSongs returns the running pairwise average of the song
// durations of the named album, and false when the album has no songs.
//
// The first duration seeds the average; every following song replaces it
// with (average + duration) / 2. The result therefore weighs later songs more
// than earlier ones and equals the arithmetic mean only for one or two songs.
// Use MeanDurationOfSongs for the arithmetic mean.
func (c *Catalog) AverageDurationOfSongs(album string) (float64, bool) {
	var (
		avg   float64
		found bool
	)
	for s := range c.SongsInAlbum(model.InAlbum(album)) {
		if !found {
			avg, found = s.Duration, true
			continue
		}
		avg = (avg + s.Duration) / 2
	}
	return avg, found
}

// MeanDurationOfSongs returns the arithmetic mean of the song durations of
// the named album, and false when the album has no songs.
func (c *Catalog) MeanDurationOfSongs(album string) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for s := range c.SongsInAlbum(model.InAlbum(album)) {
		sum += s.Duration
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// LongestSong returns the name of the song with the longest duration, and
// false when the catalog has no songs. Among songs of equal maximum duration
// the one added first wins. A NaN duration ranks below every other duration.
func (c *Catalog) LongestSong() (string, bool) {
	if len(c.songs) == 0 {
		return "", false
	}
	sorted := slices.Clone(c.songs)
	slices.SortStableFunc(sorted, func(a, b model.Song) int {
		return compareDesc(a.Duration, b.Duration)
	})
	return sorted[0].Name, true
}

// LongestAlbum returns the name of the album whose songs have the largest
// total duration, and false when no song belongs to an album. Ties go to the
// album whose first song was added first. A NaN total ranks below every other
// total.
func (c *Catalog) LongestAlbum() (string, bool) {
	type total struct {
		ref model.AlbumRef
		sum float64
	}

	var totals []*total
	byRef := make(map[model.AlbumRef]*total)
	for _, s := range c.songs {
		t, ok := byRef[s.Album]
		if !ok {
			t = &total{ref: s.Album}
			byRef[s.Album] = t
			totals = append(totals, t)
		}
		t.sum += s.Duration
	}

	totals = slices.DeleteFunc(totals, func(t *total) bool { return t.ref.IsNone() })
	if len(totals) == 0 {
		return "", false
	}
	slices.SortStableFunc(totals, func(a, b *total) int {
		return compareDesc(a.sum, b.sum)
	})
	return totals[0].ref.Name()
}

// compareDesc orders durations from longest to shortest. NaN sorts after
// every other duration.
func compareDesc(a, b float64) int {
	return cmp.Compare(b, a)
}
