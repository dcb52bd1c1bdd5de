package domain

// GenreSummary is one row of the derived genre listing. Artists carries the
// distinct non-placeholder artist names behind ArtistCount.
type GenreSummary struct {
	Genre       string   `json:"genre"`
	SongCount   int      `json:"songCount"`
	ArtistCount int      `json:"artistCount"`
	Artists     []string `json:"artists"`
}

// GenreDetail is the single-genre view with its own paginated song list.
// Songs match the genre by raw equality, with no placeholder filtering.
type GenreDetail struct {
	Genre       string `json:"genre"`
	SongCount   int    `json:"songCount"`
	ArtistCount int    `json:"artistCount"`
	Songs       []Song `json:"songs"`
	TotalSongs  int    `json:"totalSongs"`
}
