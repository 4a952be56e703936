// Package ioutils provides the file system helpers used when exporting
// playlists:
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/music/playlists")
//
//	// Write data to file
//	err = ioutils.WriteFile(ctx, "/music/playlists/Album.m3u", []byte(content))
package ioutils
