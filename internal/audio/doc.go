// Package audio provides audio file services: ID3 tag reading and playlist
// generation.
//
// # ID3 Tags
//
// Use the TagReader to read catalog metadata from MP3 files:
//
//	reader := audio.NewTagReader()
//	info, err := reader.ReadTrack("/music/Artist/Album/01 Intro.mp3")
//	// info.Title, info.Album, info.Year, info.Duration
//
// The reader uses:
//   - TIT2 for the title (file name when missing)
//   - TALB for the album (no album when missing)
//   - TYER / TDRC for the release year
//   - TLEN for the duration
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("Album Title", entries)
//	os.WriteFile("playlist.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
