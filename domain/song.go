package domain

import "time"

// Placeholder values. Empty strings (and BSON nulls, which decode to empty
// strings) and these sentinels are all treated as "absent" when grouping and
// counting; raw song listings still return them verbatim.
const (
	UnknownTitle  = "Unknown Title"
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
	UnknownGenre  = "Unknown Genre"
)

// Song is the only persisted entity. Artists, albums and genres are derived
// from it per request.
type Song struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Artist    string    `bson:"artist" json:"artist"`
	Album     string    `bson:"album" json:"album"`
	Genre     string    `bson:"genre" json:"genre"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SongInfo is the shape songs take inside detail views.
type SongInfo struct {
	ID     string `bson:"id" json:"id"`
	Title  string `bson:"title" json:"title"`
	Artist string `bson:"artist" json:"artist"`
	Album  string `bson:"album" json:"album"`
	Genre  string `bson:"genre" json:"genre"`
}

// Info converts a song to its detail-view shape, keeping raw field values.
func (s Song) Info() SongInfo {
	return SongInfo{ID: s.ID, Title: s.Title, Artist: s.Artist, Album: s.Album, Genre: s.Genre}
}

// IsPlaceholder reports whether a raw value counts as absent for the given
// sentinel.
func IsPlaceholder(value, sentinel string) bool {
	return value == "" || value == sentinel
}
