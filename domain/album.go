package domain

// AlbumSummary is one row of the derived album listing. Artist is the
// dominant artist: the one credited on the largest number of the album's
// songs, ties broken by the lexicographically smallest name.
type AlbumSummary struct {
	Album      string `json:"album"`
	SongCount  int    `json:"songCount"`
	GenreCount int    `json:"genreCount"`
	Artist     string `json:"artist"`
}

// AlbumDetail adds the album's song list, sorted by title, with raw field
// values (no placeholder substitution).
type AlbumDetail struct {
	AlbumSummary
	Songs []SongInfo `json:"songs"`
}
