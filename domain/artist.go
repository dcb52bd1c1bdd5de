package domain

// ArtistSummary is one row of the derived artist listing.
type ArtistSummary struct {
	Artist     string `json:"artist"`
	SongCount  int    `json:"songCount"`
	AlbumCount int    `json:"albumCount"`
	GenreCount int    `json:"genreCount"`
}

// ArtistDetail adds the artist's full song list, sorted by title, with
// placeholder substitution applied to every field.
type ArtistDetail struct {
	ArtistSummary
	Songs []SongInfo `json:"songs"`
}
