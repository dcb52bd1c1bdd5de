package domain

// HomeStats is the global dashboard card: four independent scalar counts.
type HomeStats struct {
	TotalSongs   int `json:"totalSongs"`
	TotalArtists int `json:"totalArtists"`
	TotalAlbums  int `json:"totalAlbums"`
	TotalGenres  int `json:"totalGenres"`
}

// Flat per-entity stats rows. Unlike the listings these group on the raw
// key, so placeholder values form groups of their own.
type ArtistStats struct {
	Artist      string `json:"artist"`
	TotalSongs  int    `json:"totalSongs"`
	TotalAlbums int    `json:"totalAlbums"`
	TotalGenres int    `json:"totalGenres"`
}

type AlbumStats struct {
	Album       string `json:"album"`
	Artist      string `json:"artist"`
	TotalSongs  int    `json:"totalSongs"`
	TotalGenres int    `json:"totalGenres"`
}

type GenreStats struct {
	Genre        string `json:"genre"`
	TotalSongs   int    `json:"totalSongs"`
	TotalArtists int    `json:"totalArtists"`
}

// AllArtistStats wraps the flat artist rows with their count.
type AllArtistStats struct {
	TotalArtists int           `json:"totalArtists"`
	Artists      []ArtistStats `json:"artists"`
}

type AllAlbumStats struct {
	TotalAlbums int          `json:"totalAlbums"`
	Albums      []AlbumStats `json:"albums"`
}

type AllGenreStats struct {
	TotalGenres int          `json:"totalGenres"`
	Genres      []GenreStats `json:"genres"`
}

// Top-N ranking rows, sorted by song count with the remaining dimension
// counts as tie-breakers.
type TopArtist struct {
	Artist string `json:"artist"`
	Songs  int    `json:"songs"`
	Albums int    `json:"albums"`
	Genres int    `json:"genres"`
}

type TopAlbum struct {
	Album   string `json:"album"`
	Songs   int    `json:"songs"`
	Genres  int    `json:"genres"`
	Artists int    `json:"artists"`
}

type TopGenre struct {
	Genre   string `json:"genre"`
	Songs   int    `json:"songs"`
	Artists int    `json:"artists"`
}
