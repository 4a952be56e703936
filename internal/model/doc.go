// Package model defines the core data structures used throughout
// the music-catalog application.
//
// # Album Reference
//
// AlbumRef records whether a song belongs to an album. It is a tagged value:
// either NoAlbum or InAlbum(name). Use Name to get at the album name so that
// the "no album" case is always handled explicitly:
//
//	ref := model.InAlbum("Abbey Road")
//	if name, ok := ref.Name(); ok {
//	    fmt.Println("album:", name)
//	}
//
// # Song
//
// Song is a value type. Two songs are the same song when their name, album
// reference and duration are all equal:
//
//	a := model.Song{Name: "Something", Album: model.InAlbum("Abbey Road"), Duration: 182.0}
//	b := a
//	fmt.Println(a.Key() == b.Key()) // true
//
// # TrackInfo
//
// TrackInfo is the metadata read from an audio file on disk, before it is
// turned into a Song and added to a catalog.
package model
