// Package report computes every catalog query at once and renders the
// results as text.
package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/handiism/music-catalog/internal/catalog"
)

// AverageMode selects how per-album average durations are computed.
type AverageMode int

const (
	// AveragePairwise uses the running pairwise average of the catalog.
	AveragePairwise AverageMode = iota

	// AverageMean uses the arithmetic mean.
	AverageMean
)

func (m AverageMode) String() string {
	if m == AverageMean {
		return "mean"
	}
	return "pairwise"
}

// AlbumStats holds the per-album query results.
type AlbumStats struct {
	Name       string
	Year       int
	Songs      int
	Average    float64
	HasAverage bool
}

// Report holds the result of every catalog query.
type Report struct {
	Mode AverageMode

	// SongNames are the song names in ascending order.
	SongNames []string

	// Albums are sorted by name for display.
	Albums []AlbumStats

	// AlbumsByYear maps a year to the names of its albums, sorted.
	AlbumsByYear map[int][]string

	NoAlbumSongs int

	LongestSong    string
	HasLongestSong bool

	LongestAlbum    string
	HasLongestAlbum bool
}

// Build runs every query against cat.
func Build(cat *catalog.Catalog, mode AverageMode) *Report {
	r := &Report{
		Mode:         mode,
		SongNames:    slices.Collect(cat.OrderedSongNames()),
		AlbumsByYear: make(map[int][]string),
		NoAlbumSongs: cat.CountSongsInNoAlbum(),
	}

	names := slices.Sorted(cat.AlbumNames())
	for _, name := range names {
		year, _ := cat.Year(name)
		stats := AlbumStats{Name: name, Year: year, Songs: cat.CountSongs(name)}
		if mode == AverageMean {
			stats.Average, stats.HasAverage = cat.MeanDurationOfSongs(name)
		} else {
			stats.Average, stats.HasAverage = cat.AverageDurationOfSongs(name)
		}
		r.Albums = append(r.Albums, stats)

		if _, done := r.AlbumsByYear[year]; !done {
			r.AlbumsByYear[year] = slices.Sorted(cat.AlbumInYear(year))
		}
	}

	r.LongestSong, r.HasLongestSong = cat.LongestSong()
	r.LongestAlbum, r.HasLongestAlbum = cat.LongestAlbum()

	return r
}

// Years returns the years that have albums, ascending.
func (r *Report) Years() []int {
	years := make([]int, 0, len(r.AlbumsByYear))
	for year := range r.AlbumsByYear {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// FormatDuration renders seconds as m:ss.s, e.g. 413.5 -> "6:53.5".
func FormatDuration(seconds float64) string {
	tenths := int64(math.Round(seconds * 10))
	return fmt.Sprintf("%d:%04.1f", tenths/600, float64(tenths%600)/10)
}

// WriteText writes the report as plain text.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Songs (%d)\n", len(r.SongNames))
	for _, name := range r.SongNames {
		fmt.Fprintf(&sb, "  %s\n", name)
	}

	fmt.Fprintf(&sb, "\nAlbums (%d, %s average)\n", len(r.Albums), r.Mode)
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tYEAR\tSONGS\tAVERAGE")
	for _, a := range r.Albums {
		avg := "-"
		if a.HasAverage {
			avg = FormatDuration(a.Average)
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%s\n", a.Name, a.Year, a.Songs, avg)
	}
	tw.Flush()
	fmt.Fprintf(&sb, "  (no album): %d songs\n", r.NoAlbumSongs)

	sb.WriteString("\nAlbums by year\n")
	for _, year := range r.Years() {
		fmt.Fprintf(&sb, "  %d: %s\n", year, strings.Join(r.AlbumsByYear[year], ", "))
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Longest song:  %s\n", orNone(r.LongestSong, r.HasLongestSong))
	fmt.Fprintf(&sb, "Longest album: %s\n", orNone(r.LongestAlbum, r.HasLongestAlbum))

	_, err := io.WriteString(w, sb.String())
	return err
}

func orNone(s string, ok bool) string {
	if !ok {
		return "(none)"
	}
	return s
}
