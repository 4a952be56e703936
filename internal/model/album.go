package model

import "strconv"

// Album is a named album with its release year.
//
// Album names are unique within a catalog. Adding an album with a name that
// is already known replaces its year.
type Album struct {
	// Name is the album title. It is also the album's identity.
	Name string

	// Year is the release year.
	Year int
}

func (a Album) String() string {
	return a.Name + " (" + strconv.Itoa(a.Year) + ")"
}

// AlbumRef is a song's association with an album: either no album at all, or
// a specific album identified by name.
//
// The zero value is NoAlbum. AlbumRef is comparable and can be used as a map
// key; two refs are equal when both are NoAlbum or both name the same album.
type AlbumRef struct {
	name    string
	present bool
}

// NoAlbum returns the reference of a song that belongs to no album.
func NoAlbum() AlbumRef {
	return AlbumRef{}
}

// InAlbum returns a reference to the named album.
//
// An empty name is still a reference to an album (the one called ""); use
// NoAlbum for songs without an album.
func InAlbum(name string) AlbumRef {
	return AlbumRef{name: name, present: true}
}

// Name returns the referenced album name and true, or "" and false for NoAlbum.
func (r AlbumRef) Name() (string, bool) {
	return r.name, r.present
}

// IsNone reports whether r is NoAlbum.
func (r AlbumRef) IsNone() bool {
	return !r.present
}

// Is reports whether r references the album with the given name.
func (r AlbumRef) Is(name string) bool {
	return r.present && r.name == name
}

func (r AlbumRef) String() string {
	if !r.present {
		return "<no album>"
	}
	return strconv.Quote(r.name)
}
