// Package scan builds a catalog from a directory of audio files.
//
// # Scanner
//
// The Scanner coordinates the whole process:
//
//  1. Walk the music directory for files with the configured extensions
//  2. Read the tags of the files concurrently
//  3. Add albums and songs to a catalog in file path order
//
// # Basic Usage
//
//	scanner := scan.NewScanner(cfg, func(event scan.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	lib, summary, err := scanner.Load(ctx, "/music")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(lib.Catalog.CountSongs("Abbey Road"))
//
// # Concurrency
//
// Tags are read by up to Config.MaxConcurrentReads goroutines. The catalog
// itself is only ever touched by the goroutine calling Load, and songs are
// added in path order so that loading the same directory twice yields the
// same catalog.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The callback may be called from several goroutines at once.
package scan
