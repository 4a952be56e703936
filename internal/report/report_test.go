package report

import (
	"slices"
	"strings"
	"testing"

	"github.com/handiism/music-catalog/internal/catalog"
	"github.com/handiism/music-catalog/internal/model"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	c.AddAlbum("Wish You Were Here", 1975)
	c.AddAlbum("Dark Side", 1973)
	c.AddAlbum("Animals", 1977)
	c.AddAlbum("Meddle", 1973)

	songs := []struct {
		name     string
		album    model.AlbumRef
		duration float64
	}{
		{"Time", model.InAlbum("Dark Side"), 413},
		{"Money", model.InAlbum("Dark Side"), 382},
		{"Us and Them", model.InAlbum("Dark Side"), 462},
		{"Shine On", model.InAlbum("Wish You Were Here"), 810},
		{"Demo", model.NoAlbum(), 120},
	}
	for _, s := range songs {
		if err := c.AddSong(s.name, s.album, s.duration); err != nil {
			t.Fatalf("AddSong(%q) error = %v", s.name, err)
		}
	}
	return c
}

func TestBuild(t *testing.T) {
	r := Build(newCatalog(t), AveragePairwise)

	wantSongs := []string{"Demo", "Money", "Shine On", "Time", "Us and Them"}
	if !slices.Equal(r.SongNames, wantSongs) {
		t.Errorf("SongNames = %v, want %v", r.SongNames, wantSongs)
	}

	var names []string
	for _, a := range r.Albums {
		names = append(names, a.Name)
	}
	if want := []string{"Animals", "Dark Side", "Meddle", "Wish You Were Here"}; !slices.Equal(names, want) {
		t.Errorf("album names = %v, want %v", names, want)
	}

	darkSide := r.Albums[1]
	if darkSide.Songs != 3 || !darkSide.HasAverage || darkSide.Average != 429.75 {
		t.Errorf("Dark Side stats = %+v", darkSide)
	}
	if animals := r.Albums[0]; animals.HasAverage || animals.Songs != 0 {
		t.Errorf("Animals stats = %+v, want no songs and no average", animals)
	}

	if got := r.AlbumsByYear[1973]; !slices.Equal(got, []string{"Dark Side", "Meddle"}) {
		t.Errorf("AlbumsByYear[1973] = %v", got)
	}
	if got := r.Years(); !slices.Equal(got, []int{1973, 1975, 1977}) {
		t.Errorf("Years() = %v", got)
	}

	if r.NoAlbumSongs != 1 {
		t.Errorf("NoAlbumSongs = %d, want 1", r.NoAlbumSongs)
	}
	if !r.HasLongestSong || r.LongestSong != "Shine On" {
		t.Errorf("LongestSong = (%q, %v)", r.LongestSong, r.HasLongestSong)
	}
	if !r.HasLongestAlbum || r.LongestAlbum != "Dark Side" {
		t.Errorf("LongestAlbum = (%q, %v)", r.LongestAlbum, r.HasLongestAlbum)
	}
}

func TestBuild_MeanMode(t *testing.T) {
	r := Build(newCatalog(t), AverageMean)
	if got := r.Albums[1].Average; got != 419 {
		t.Errorf("Dark Side mean = %g, want 419", got)
	}
}

func TestBuild_Empty(t *testing.T) {
	r := Build(catalog.New(), AveragePairwise)
	if r.HasLongestSong || r.HasLongestAlbum || len(r.SongNames) != 0 {
		t.Errorf("empty report = %+v", r)
	}

	var sb strings.Builder
	if err := r.WriteText(&sb); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.Contains(sb.String(), "Longest song:  (none)") {
		t.Errorf("WriteText() should show missing longest song, got:\n%s", sb.String())
	}
}

func TestWriteText(t *testing.T) {
	var sb strings.Builder
	if err := Build(newCatalog(t), AveragePairwise).WriteText(&sb); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Songs (5)",
		"Albums (4, pairwise average)",
		"7:09.8", // 429.75s
		"1973: Dark Side, Meddle",
		"Longest album: Dark Side",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00.0"},
		{59.94, "0:59.9"},
		{59.96, "1:00.0"},
		{119.99, "2:00.0"},
		{413.5, "6:53.5"},
		{3600, "60:00.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%g) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
