// Package catalog implements an in-memory music catalog of albums and songs
// and the analytical queries answered over it.
//
// # Building a Catalog
//
//	cat := catalog.New()
//	cat.AddAlbum("Abbey Road", 1969)
//	if err := cat.AddSong("Something", model.InAlbum("Abbey Road"), 182.0); err != nil {
//	    // errors.Is(err, catalog.ErrInvalidAlbumReference)
//	}
//	if err := cat.AddSong("Her Majesty", model.NoAlbum(), 23.0); err != nil {
//	    return err
//	}
//
// # Queries
//
//	for name := range cat.OrderedSongNames() {
//	    fmt.Println(name)
//	}
//	n := cat.CountSongs("Abbey Road")
//	avg, ok := cat.AverageDurationOfSongs("Abbey Road")
//	longest, ok := cat.LongestAlbum()
//
// # Iteration Order
//
// Songs iterate in the order they were first added, albums in the order their
// name was first added (re-adding an album keeps its position). Queries whose
// result depends on order are defined against this order:
//   - AverageDurationOfSongs folds durations pairwise in song order
//   - LongestSong picks the first song with the maximum duration
//   - LongestAlbum groups songs by album in order of first appearance and
//     picks the first group with the maximum total
//
// # Concurrency
//
// A Catalog is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call themselves.
package catalog
