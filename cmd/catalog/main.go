package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/handiism/music-catalog/internal/config"
	"github.com/handiism/music-catalog/internal/report"
	"github.com/handiism/music-catalog/internal/scan"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed loading .env file: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "catalog"
	app.Usage = "Query the albums and songs of a music directory."
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to the JSON settings file",
			EnvVars: []string{"CATALOG_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "dir",
			Usage:   "music directory to scan (overrides config)",
			EnvVars: []string{"CATALOG_MUSIC_DIR"},
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "show verbose scan output",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "report",
			Usage:  "print every query result",
			Flags:  []cli.Flag{&cli.BoolFlag{Name: "mean", Usage: "use arithmetic mean averages"}},
			Action: runReport,
		},
		{
			Name:   "songs",
			Usage:  "list song names in order",
			Action: runSongs,
		},
		{
			Name:   "albums",
			Usage:  "list album names",
			Flags:  []cli.Flag{&cli.IntFlag{Name: "year", Usage: "only albums released in `YEAR`"}},
			Action: runAlbums,
		},
		{
			Name:  "count",
			Usage: "count the songs of an album",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "album", Usage: "album `NAME`"},
				&cli.BoolFlag{Name: "no-album", Usage: "count songs without album"},
			},
			Action: runCount,
		},
		{
			Name:  "average",
			Usage: "average song duration of an album",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "album", Usage: "album `NAME`", Required: true},
				&cli.BoolFlag{Name: "mean", Usage: "arithmetic mean instead of the pairwise average"},
			},
			Action: runAverage,
		},
		{
			Name:   "longest",
			Usage:  "show the longest song and album",
			Action: runLongest,
		},
		{
			Name:  "playlist",
			Usage: "write the playlist of an album",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "album", Usage: "album `NAME`", Required: true},
				&cli.StringFlag{Name: "out", Usage: "output `DIR` (defaults to the music directory)"},
			},
			Action: runPlaylist,
		},
		{
			Name:      "init-config",
			Usage:     "write the default settings to a file",
			ArgsUsage: "PATH",
			Action:    runInitConfig,
		},
	}
	return app
}

func loadSettings(c *cli.Context) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if path := c.String("config"); path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if dir := c.String("dir"); dir != "" {
		settings.MusicPath = dir
	}
	return settings, nil
}

func loadLibrary(c *cli.Context) (*scan.Library, *config.Settings, error) {
	settings, err := loadSettings(c)
	if err != nil {
		return nil, nil, err
	}

	verbose := c.Bool("verbose")
	scanner := scan.NewScanner(settings.ToScanConfig(), func(event scan.ProgressEvent) {
		if event.Level == scan.LevelVerbose && !verbose {
			return
		}
		fmt.Fprintln(os.Stderr, levelPrefix(event.Level)+event.Message)
	})

	lib, _, err := scanner.Load(c.Context, settings.MusicPath)
	if err != nil {
		return nil, nil, err
	}
	return lib, settings, nil
}

func levelPrefix(level scan.ProgressLevel) string {
	switch level {
	case scan.LevelError:
		return "error: "
	case scan.LevelWarning:
		return "warning: "
	case scan.LevelSuccess:
		return "ok: "
	case scan.LevelInfo:
		return "info: "
	default:
		return "  "
	}
}

func runReport(c *cli.Context) error {
	lib, settings, err := loadLibrary(c)
	if err != nil {
		return err
	}
	mode := settings.ToAverageMode()
	if c.Bool("mean") {
		mode = report.AverageMean
	}
	return report.Build(lib.Catalog, mode).WriteText(c.App.Writer)
}

func runSongs(c *cli.Context) error {
	lib, _, err := loadLibrary(c)
	if err != nil {
		return err
	}
	for name := range lib.Catalog.OrderedSongNames() {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func runAlbums(c *cli.Context) error {
	lib, _, err := loadLibrary(c)
	if err != nil {
		return err
	}
	names := lib.Catalog.AlbumNames()
	if c.IsSet("year") {
		names = lib.Catalog.AlbumInYear(c.Int("year"))
	}
	for _, name := range slices.Sorted(names) {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func runCount(c *cli.Context) error {
	if c.IsSet("album") == c.Bool("no-album") {
		return cli.Exit("exactly one of --album or --no-album is required", 2)
	}
	lib, _, err := loadLibrary(c)
	if err != nil {
		return err
	}
	if c.Bool("no-album") {
		fmt.Fprintln(c.App.Writer, lib.Catalog.CountSongsInNoAlbum())
		return nil
	}
	fmt.Fprintln(c.App.Writer, lib.Catalog.CountSongs(c.String("album")))
	return nil
}

func runAverage(c *cli.Context) error {
	lib, settings, err := loadLibrary(c)
	if err != nil {
		return err
	}
	album := c.String("album")

	average := lib.Catalog.AverageDurationOfSongs
	if c.Bool("mean") || settings.ToAverageMode() == report.AverageMean {
		average = lib.Catalog.MeanDurationOfSongs
	}
	avg, ok := average(album)
	if !ok {
		return cli.Exit(fmt.Sprintf("album %q has no songs", album), 1)
	}
	fmt.Fprintf(c.App.Writer, "%g\n", avg)
	return nil
}

func runLongest(c *cli.Context) error {
	lib, _, err := loadLibrary(c)
	if err != nil {
		return err
	}
	if song, ok := lib.Catalog.LongestSong(); ok {
		fmt.Fprintf(c.App.Writer, "song:  %s\n", song)
	} else {
		fmt.Fprintln(c.App.Writer, "song:  (none)")
	}
	if album, ok := lib.Catalog.LongestAlbum(); ok {
		fmt.Fprintf(c.App.Writer, "album: %s\n", album)
	} else {
		fmt.Fprintln(c.App.Writer, "album: (none)")
	}
	return nil
}

func runPlaylist(c *cli.Context) error {
	lib, settings, err := loadLibrary(c)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		out = settings.MusicPath
	}
	path, err := lib.WritePlaylist(c.Context, c.String("album"), out, settings.PlaylistFileNameFormat, settings.ToPlaylistCreator())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	return nil
}

func runInitConfig(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("init-config needs a PATH", 2)
	}
	if _, err := os.Stat(path); err == nil {
		return cli.Exit(fmt.Sprintf("%s already exists", path), 1)
	}
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	if err := settings.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	return nil
}
