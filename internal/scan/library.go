package scan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/handiism/music-catalog/internal/audio"
	"github.com/handiism/music-catalog/internal/catalog"
	ioutils "github.com/handiism/music-catalog/internal/io"
	"github.com/handiism/music-catalog/internal/model"
)

// Library is a catalog together with the files its songs were read from.
//
// Like the catalog it wraps, a Library is not safe for concurrent use.
type Library struct {
	Catalog *catalog.Catalog

	paths map[model.SongKey]string
}

// NewLibrary wraps cat. Songs already in cat have no known file.
func NewLibrary(cat *catalog.Catalog) *Library {
	return &Library{
		Catalog: cat,
		paths:   make(map[model.SongKey]string),
	}
}

// Add adds a track to the catalog and remembers its file.
//
// A tagged album is added first. A track without year does not clear the year
// of an album that is already known. Add reports false when the song was
// already in the catalog; the first file of a song is the one remembered.
func (l *Library) Add(info *model.TrackInfo) (bool, error) {
	if name, ok := info.AlbumRef().Name(); ok {
		if _, known := l.Catalog.Year(name); !known || info.Year != 0 {
			l.Catalog.AddAlbum(name, info.Year)
		}
	}

	before := l.Catalog.Len()
	song := info.Song()
	if err := l.Catalog.AddSong(song.Name, song.Album, song.Duration); err != nil {
		return false, err
	}
	if l.Catalog.Len() == before {
		return false, nil
	}

	l.paths[song.Key()] = info.Path
	return true, nil
}

// Path returns the file a song was read from.
func (l *Library) Path(song model.Song) (string, bool) {
	path, ok := l.paths[song.Key()]
	return path, ok
}

// PlaylistEntries returns a playlist entry for every song with the given
// album reference, in catalog order.
func (l *Library) PlaylistEntries(ref model.AlbumRef) []audio.PlaylistEntry {
	var entries []audio.PlaylistEntry
	for song := range l.Catalog.SongsInAlbum(ref) {
		path, _ := l.Path(song)
		entries = append(entries, audio.EntryFromSong(song, path))
	}
	return entries
}

// WritePlaylist writes the playlist of the named album into dir and returns
// the playlist path.
//
// File locations are written relative to dir when possible. Unknown albums
// fail with catalog.ErrInvalidAlbumReference.
func (l *Library) WritePlaylist(ctx context.Context, album, dir, fileNameFormat string, creator *audio.PlaylistCreator) (string, error) {
	year, ok := l.Catalog.Year(album)
	if !ok {
		return "", fmt.Errorf("%w: %q", catalog.ErrInvalidAlbumReference, album)
	}

	entries := l.PlaylistEntries(model.InAlbum(album))
	for i := range entries {
		if entries[i].Location == "" {
			continue
		}
		if rel, err := relativeTo(dir, entries[i].Location); err == nil {
			entries[i].Location = rel
		}
	}

	if err := ioutils.EnsureDir(dir); err != nil {
		return "", err
	}

	path := audio.PlaylistPath(dir, album, year, fileNameFormat, creator.Format())
	content := creator.CreatePlaylist(album, entries)
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return "", err
	}
	return path, nil
}

func relativeTo(dir, path string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Rel(absDir, absPath)
}
