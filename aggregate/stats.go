package aggregate

import (
	"sort"

	"github.com/tsegayberhanu/echodash/domain"
)

// AllArtistStats is the flat, unpaginated artist view. It groups on the raw
// artist value, so empty artists form a group of their own.
func AllArtistStats(songs []domain.Song) []domain.ArtistStats {
	groups := groupBy(songs, songArtist, nil)
	stats := make([]domain.ArtistStats, len(groups))
	for i, g := range groups {
		stats[i] = deriveArtistStats(g)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.TotalSongs != b.TotalSongs {
			return a.TotalSongs > b.TotalSongs
		}
		if a.TotalAlbums != b.TotalAlbums {
			return a.TotalAlbums > b.TotalAlbums
		}
		return a.TotalGenres > b.TotalGenres
	})
	return stats
}

// ArtistStatsOf derives the stats row for one exact artist. Nil when the
// artist has no songs.
func ArtistStatsOf(artist string, songs []domain.Song) *domain.ArtistStats {
	if len(songs) == 0 {
		return nil
	}
	s := deriveArtistStats(group{Key: artist, Songs: songs})
	return &s
}

func deriveArtistStats(g group) domain.ArtistStats {
	return domain.ArtistStats{
		Artist:      g.Key,
		TotalSongs:  len(g.Songs),
		TotalAlbums: distinctCount(g.Songs, songAlbum, notEmpty),
		TotalGenres: distinctCount(g.Songs, songGenre, notEmpty),
	}
}

// AllAlbumStats groups on the raw album value, skipping only empties. The
// artist column carries the group's first-seen artist.
func AllAlbumStats(songs []domain.Song) []domain.AlbumStats {
	groups := groupBy(songs, songAlbum, notEmpty)
	stats := make([]domain.AlbumStats, len(groups))
	for i, g := range groups {
		stats[i] = deriveAlbumStats(g)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.TotalSongs != b.TotalSongs {
			return a.TotalSongs > b.TotalSongs
		}
		return a.TotalGenres > b.TotalGenres
	})
	return stats
}

func AlbumStatsOf(album string, songs []domain.Song) *domain.AlbumStats {
	if len(songs) == 0 {
		return nil
	}
	s := deriveAlbumStats(group{Key: album, Songs: songs})
	return &s
}

func deriveAlbumStats(g group) domain.AlbumStats {
	return domain.AlbumStats{
		Album:       g.Key,
		Artist:      g.Songs[0].Artist,
		TotalSongs:  len(g.Songs),
		TotalGenres: distinctCount(g.Songs, songGenre, notEmpty),
	}
}

// AllGenreStats groups on the raw genre value, skipping only empties. The
// artist count is over raw values.
func AllGenreStats(songs []domain.Song) []domain.GenreStats {
	groups := groupBy(songs, songGenre, notEmpty)
	stats := make([]domain.GenreStats, len(groups))
	for i, g := range groups {
		stats[i] = deriveGenreStats(g)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSongs > stats[j].TotalSongs
	})
	return stats
}

func GenreStatsOf(genre string, songs []domain.Song) *domain.GenreStats {
	if len(songs) == 0 {
		return nil
	}
	s := deriveGenreStats(group{Key: genre, Songs: songs})
	return &s
}

func deriveGenreStats(g group) domain.GenreStats {
	return domain.GenreStats{
		Genre:        g.Key,
		TotalSongs:   len(g.Songs),
		TotalArtists: distinctCount(g.Songs, songArtist, nil),
	}
}
