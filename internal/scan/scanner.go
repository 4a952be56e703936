package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/handiism/music-catalog/internal/audio"
	"github.com/handiism/music-catalog/internal/catalog"
	"github.com/handiism/music-catalog/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Config holds the scanner settings.
type Config struct {
	// Extensions lists the lower-case file extensions to read, with dot.
	Extensions []string

	// Recursive makes the scanner descend into subdirectories.
	Recursive bool

	// MaxConcurrentReads limits how many files are read at once.
	MaxConcurrentReads int
}

// TrackReader reads the metadata of one audio file.
type TrackReader interface {
	ReadTrack(path string) (*model.TrackInfo, error)
}

// Summary describes the outcome of a Load.
type Summary struct {
	// Files is the number of audio files found.
	Files int

	// Skipped is the number of files that could not be read or added.
	Skipped int

	// Duplicates is the number of files whose song was already in the catalog.
	Duplicates int

	// Songs and Albums are the catalog sizes after loading.
	Songs  int
	Albums int
}

// Scanner reads audio files into a catalog.
type Scanner struct {
	cfg        *Config
	reader     TrackReader
	onProgress func(ProgressEvent)

	filesRead  atomic.Int32
	filesTotal atomic.Int32
}

// NewScanner creates a Scanner reading ID3 tags. onProgress may be nil.
func NewScanner(cfg *Config, onProgress func(ProgressEvent)) *Scanner {
	return NewScannerWithReader(cfg, audio.NewTagReader(), onProgress)
}

// NewScannerWithReader creates a Scanner using reader for the file metadata.
func NewScannerWithReader(cfg *Config, reader TrackReader, onProgress func(ProgressEvent)) *Scanner {
	c := *cfg
	if c.MaxConcurrentReads < 1 {
		c.MaxConcurrentReads = 1
	}
	return &Scanner{
		cfg:        &c,
		reader:     reader,
		onProgress: onProgress,
	}
}

// GetProgress returns how many files have been read out of how many were found.
func (s *Scanner) GetProgress() (read, total int32) {
	return s.filesRead.Load(), s.filesTotal.Load()
}

// Scan reads the metadata of every audio file under dir.
//
// Files that cannot be read are reported as LevelError events and left out.
// The result is sorted by path. Scan fails only when dir cannot be walked or
// ctx is cancelled.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]*model.TrackInfo, error) {
	paths, err := s.findFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	s.filesRead.Store(0)
	s.filesTotal.Store(int32(len(paths)))
	s.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files in %s", len(paths), dir), Level: LevelInfo})

	infos := make([]*model.TrackInfo, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrentReads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := s.reader.ReadTrack(path)
			s.filesRead.Add(1)
			if err != nil {
				s.progress(ProgressEvent{Message: fmt.Sprintf("Error reading %s: %v", path, err), Level: LevelError})
				return nil // Continue with other files
			}
			s.progress(ProgressEvent{Message: fmt.Sprintf("Read %s", filepath.Base(path)), Level: LevelVerbose})
			infos[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.DeleteFunc(infos, func(info *model.TrackInfo) bool { return info == nil }), nil
}

// Load scans dir and adds every track to a new catalog.
//
// The returned Summary counts unreadable files and files rejected by the
// catalog as skipped.
func (s *Scanner) Load(ctx context.Context, dir string) (*Library, *Summary, error) {
	lib := NewLibrary(catalog.New())
	summary, err := s.LoadInto(ctx, dir, lib)
	if err != nil {
		return nil, nil, err
	}
	return lib, summary, nil
}

// LoadInto scans dir and adds every track to lib.
func (s *Scanner) LoadInto(ctx context.Context, dir string, lib *Library) (*Summary, error) {
	infos, err := s.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	total, _ := s.GetProgress()
	summary := &Summary{Files: int(total), Skipped: int(total) - len(infos)}

	for _, info := range infos {
		if !info.HasDuration {
			s.progress(ProgressEvent{Message: fmt.Sprintf("No duration in %s, using 0", filepath.Base(info.Path)), Level: LevelWarning})
		}

		added, err := lib.Add(info)
		if err != nil {
			summary.Skipped++
			s.progress(ProgressEvent{Message: fmt.Sprintf("Error adding %s: %v", info.Path, err), Level: LevelError})
			continue
		}
		if !added {
			summary.Duplicates++
			s.progress(ProgressEvent{Message: fmt.Sprintf("Duplicate song %q in %s", info.Title, filepath.Base(info.Path)), Level: LevelVerbose})
		}
	}

	summary.Songs = lib.Catalog.Len()
	summary.Albums = lib.Catalog.AlbumCount()

	s.progress(ProgressEvent{
		Message: fmt.Sprintf("Loaded %d songs in %d albums from %d files", summary.Songs, summary.Albums, summary.Files),
		Level:   LevelSuccess,
	})

	return summary, nil
}

func (s *Scanner) findFiles(ctx context.Context, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	var paths []string

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			s.progress(ProgressEvent{Message: fmt.Sprintf("Error walking %s: %v", path, err), Level: LevelWarning})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path == dir {
				return nil
			}
			if !s.cfg.Recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if slices.Contains(s.cfg.Extensions, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}

func (s *Scanner) progress(event ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}
