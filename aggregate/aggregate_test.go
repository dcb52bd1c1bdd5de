package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
)

func song(title, artist, album, genre string) domain.Song {
	return domain.Song{ID: title + "/" + artist, Title: title, Artist: artist, Album: album, Genre: genre}
}

func page(p, limit int) dto.Pagination {
	return dto.Pagination{Page: p, Limit: limit, Sort: "songCount", Order: "desc"}
}

func TestArtistsGroupsAndCounts(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "M", "Rock"),
		song("B", "X", "M", "Pop"),
		song("C", "X", "", "Rock"),
		song("D", "Y", "N", ""),
		song("E", "", "N", "Rock"), // empty artist never forms a group
	}

	artists, total := Artists(songs, dto.ArtistFilter{Pagination: page(1, 10)})

	require.Equal(t, 2, total)
	require.Len(t, artists, 2)
	assert.Equal(t, domain.ArtistSummary{Artist: "X", SongCount: 3, AlbumCount: 1, GenreCount: 2}, artists[0])
	assert.Equal(t, domain.ArtistSummary{Artist: "Y", SongCount: 1, AlbumCount: 1, GenreCount: 0}, artists[1])
}

func TestArtistsGenreCountSkipsSentinel(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "M", domain.UnknownGenre),
		song("B", "X", "M", "Rock"),
	}

	artists, _ := Artists(songs, dto.ArtistFilter{Pagination: page(1, 10)})

	require.Len(t, artists, 1)
	assert.Equal(t, 1, artists[0].GenreCount)
}

func TestArtistsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	songs := []domain.Song{
		song("A", "Daft Punk", "", ""),
		song("B", "Punkadelic", "", ""),
		song("C", "Queen", "", ""),
	}

	f := dto.ArtistFilter{Pagination: page(1, 10)}
	f.Search = "puNk"
	artists, total := Artists(songs, f)

	assert.Equal(t, 2, total)
	require.Len(t, artists, 2)
	for _, a := range artists {
		assert.Contains(t, []string{"Daft Punk", "Punkadelic"}, a.Artist)
	}
}

func TestArtistsNumericRangeFilters(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "M", "Rock"),
		song("B", "X", "N", "Pop"),
		song("C", "Y", "M", "Rock"),
	}

	two := 2
	f := dto.ArtistFilter{Pagination: page(1, 10), MinSongs: &two}
	artists, total := Artists(songs, f)

	assert.Equal(t, 1, total)
	require.Len(t, artists, 1)
	assert.Equal(t, "X", artists[0].Artist)

	one := 1
	f = dto.ArtistFilter{Pagination: page(1, 10), MaxAlbums: &one}
	_, total = Artists(songs, f)
	assert.Equal(t, 1, total) // only Y has a single album
}

func TestArtistsSortRoundTrip(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "", ""), song("B", "X", "", ""), song("C", "X", "", ""),
		song("D", "Y", "", ""), song("E", "Y", "", ""),
		song("F", "Z", "", ""),
	}

	asc := dto.ArtistFilter{Pagination: dto.Pagination{Page: 1, Limit: 10, Sort: "songCount", Order: "asc"}}
	desc := dto.ArtistFilter{Pagination: dto.Pagination{Page: 1, Limit: 10, Sort: "songCount", Order: "desc"}}

	up, _ := Artists(songs, asc)
	down, _ := Artists(songs, desc)

	require.Len(t, up, 3)
	for i := range up {
		assert.Equal(t, up[i], down[len(down)-1-i])
	}
}

func TestArtistsPaginationWindow(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "", ""),
		song("B", "Y", "", ""),
		song("C", "Z", "", ""),
	}

	first, total := Artists(songs, dto.ArtistFilter{Pagination: dto.Pagination{Page: 1, Limit: 2, Order: "desc"}})
	assert.Equal(t, 3, total)
	assert.Len(t, first, 2)

	second, total := Artists(songs, dto.ArtistFilter{Pagination: dto.Pagination{Page: 2, Limit: 2, Order: "desc"}})
	assert.Equal(t, 3, total)
	assert.Len(t, second, 1)

	third, total := Artists(songs, dto.ArtistFilter{Pagination: dto.Pagination{Page: 3, Limit: 2, Order: "desc"}})
	assert.Equal(t, 3, total)
	assert.Empty(t, third)
}

func TestArtistDetailSubstitutesPlaceholders(t *testing.T) {
	songs := []domain.Song{
		{ID: "2", Title: "B", Artist: "X", Album: "", Genre: ""},
		{ID: "1", Title: "A", Artist: "X", Album: "M", Genre: "Rock"},
	}

	detail := ArtistDetail("X", songs)

	require.NotNil(t, detail)
	assert.Equal(t, 2, detail.SongCount)
	require.Len(t, detail.Songs, 2)
	// sorted by title
	assert.Equal(t, "A", detail.Songs[0].Title)
	// placeholder substitution on missing fields
	assert.Equal(t, domain.UnknownAlbum, detail.Songs[1].Album)
	assert.Equal(t, domain.UnknownGenre, detail.Songs[1].Genre)
	assert.Equal(t, "M", detail.Songs[0].Album)
}

func TestArtistDetailNilWhenNoSongs(t *testing.T) {
	assert.Nil(t, ArtistDetail("X", nil))
}

func TestAlbumsDerivation(t *testing.T) {
	// Spec example: M has two genres and X dominant, N has none and Y.
	songs := []domain.Song{
		song("A", "X", "M", "Rock"),
		song("B", "X", "M", "Pop"),
		song("C", "Y", "N", ""),
	}

	albums, total := Albums(songs, dto.AlbumFilter{Pagination: page(1, 10)})

	require.Equal(t, 2, total)
	require.Len(t, albums, 2)
	assert.Equal(t, domain.AlbumSummary{Album: "M", SongCount: 2, GenreCount: 2, Artist: "X"}, albums[0])
	assert.Equal(t, domain.AlbumSummary{Album: "N", SongCount: 1, GenreCount: 0, Artist: "Y"}, albums[1])
}

func TestAlbumsExcludePlaceholderGroups(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "", "Rock"),
		song("B", "X", domain.UnknownAlbum, "Rock"),
		song("C", "X", "M", "Rock"),
	}

	albums, total := Albums(songs, dto.AlbumFilter{Pagination: page(1, 10)})

	assert.Equal(t, 1, total)
	require.Len(t, albums, 1)
	assert.Equal(t, "M", albums[0].Album)
}

func TestAlbumsDropGroupsWithoutResolvableArtist(t *testing.T) {
	songs := []domain.Song{
		song("A", "", "M", "Rock"),
		song("B", domain.UnknownArtist, "M", "Rock"),
		song("C", "X", "N", "Rock"),
	}

	albums, total := Albums(songs, dto.AlbumFilter{Pagination: page(1, 10)})

	// M has no resolvable artist: gone from items AND total.
	assert.Equal(t, 1, total)
	require.Len(t, albums, 1)
	assert.Equal(t, "N", albums[0].Album)
}

func TestDominantArtistMajority(t *testing.T) {
	songs := []domain.Song{
		song("A", "artist1", "M", ""),
		song("B", "artist1", "M", ""),
		song("C", "artist2", "M", ""),
	}

	artist, ok := dominantArtist(songs)
	require.True(t, ok)
	assert.Equal(t, "artist1", artist)
}

func TestDominantArtistTieBreaksLexicographically(t *testing.T) {
	songs := []domain.Song{
		song("A", "zeta", "M", ""),
		song("B", "alpha", "M", ""),
	}

	artist, ok := dominantArtist(songs)
	require.True(t, ok)
	assert.Equal(t, "alpha", artist)
}

func TestAlbumsSearchMatchesAlbumOrDominantArtist(t *testing.T) {
	songs := []domain.Song{
		song("A", "Queen", "Night at the Opera", ""),
		song("B", "Kiss", "Destroyer", ""),
	}

	f := dto.AlbumFilter{Pagination: page(1, 10)}
	f.Search = "queen"
	albums, total := Albums(songs, f)
	assert.Equal(t, 1, total)
	require.Len(t, albums, 1)
	assert.Equal(t, "Night at the Opera", albums[0].Album)

	f.Search = "destroy"
	albums, _ = Albums(songs, f)
	require.Len(t, albums, 1)
	assert.Equal(t, "Destroyer", albums[0].Album)
}

func TestAlbumsArtistSubstringFilter(t *testing.T) {
	songs := []domain.Song{
		song("A", "Queen", "M", ""),
		song("B", "Kiss", "N", ""),
	}

	f := dto.AlbumFilter{Pagination: page(1, 10), Artist: "uee"}
	albums, total := Albums(songs, f)

	assert.Equal(t, 1, total)
	require.Len(t, albums, 1)
	assert.Equal(t, "Queen", albums[0].Artist)
}

func TestAlbumDetailKeepsRawValuesAndSortsByTitle(t *testing.T) {
	songs := []domain.Song{
		{ID: "2", Title: "B", Artist: "X", Album: "M", Genre: ""},
		{ID: "1", Title: "A", Artist: "X", Album: "M", Genre: "Rock"},
	}

	detail := AlbumDetail("M", songs)

	require.NotNil(t, detail)
	assert.Equal(t, "X", detail.Artist)
	assert.Equal(t, 2, detail.SongCount)
	assert.Equal(t, 1, detail.GenreCount)
	require.Len(t, detail.Songs, 2)
	assert.Equal(t, "A", detail.Songs[0].Title)
	assert.Equal(t, "", detail.Songs[1].Genre) // raw, no substitution
}

func TestAlbumDetailFallsBackToUnknownArtist(t *testing.T) {
	songs := []domain.Song{
		song("A", domain.UnknownArtist, "M", ""),
	}

	detail := AlbumDetail("M", songs)

	require.NotNil(t, detail)
	assert.Equal(t, domain.UnknownArtist, detail.Artist)
}

func TestGenresDerivation(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "", "Rock"),
		song("B", "Y", "", "Rock"),
		song("C", domain.UnknownArtist, "", "Rock"),
		song("D", "X", "", domain.UnknownGenre), // sentinel genre never groups
		song("E", "X", "", ""),
	}

	genres, total := Genres(songs, dto.GenreFilter{Pagination: page(1, 10)})

	require.Equal(t, 1, total)
	require.Len(t, genres, 1)
	assert.Equal(t, "Rock", genres[0].Genre)
	assert.Equal(t, 3, genres[0].SongCount)
	assert.Equal(t, 2, genres[0].ArtistCount)
	assert.Equal(t, []string{"X", "Y"}, genres[0].Artists)
}

func TestGenresArtistRangeFilter(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "", "Rock"),
		song("B", "Y", "", "Rock"),
		song("C", "X", "", "Pop"),
	}

	two := 2
	f := dto.GenreFilter{Pagination: page(1, 10), MinArtists: &two}
	genres, total := Genres(songs, f)

	assert.Equal(t, 1, total)
	require.Len(t, genres, 1)
	assert.Equal(t, "Rock", genres[0].Genre)
}

func TestTopArtistsRankingAndTruncation(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "M", "Rock"), song("B", "X", "N", "Pop"),
		song("C", "Y", "M", "Rock"), song("D", "Y", "M", "Pop"),
		song("E", "Z", "M", "Rock"),
	}

	top := TopArtists(songs, 2)

	require.Len(t, top, 2)
	// X and Y tie on songs; X wins on distinct albums.
	assert.Equal(t, "X", top[0].Artist)
	assert.Equal(t, 2, top[0].Songs)
	assert.Equal(t, "Y", top[1].Artist)
}

func TestTopGenresCountsRawArtists(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "", "Rock"),
		song("B", domain.UnknownArtist, "", "Rock"),
	}

	top := TopGenres(songs, 5)

	require.Len(t, top, 1)
	// top rankings keep raw values in the distinct sets
	assert.Equal(t, 2, top[0].Artists)
}

func TestAllArtistStatsGroupsRawKeys(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "M", "Rock"),
		song("B", "X", "N", ""),
		song("C", "", "M", "Rock"), // empty artist still forms a stats group
	}

	stats := AllArtistStats(songs)

	require.Len(t, stats, 2)
	assert.Equal(t, domain.ArtistStats{Artist: "X", TotalSongs: 2, TotalAlbums: 2, TotalGenres: 1}, stats[0])
	assert.Equal(t, "", stats[1].Artist)
}

func TestAllAlbumStatsCarriesFirstSeenArtist(t *testing.T) {
	songs := []domain.Song{
		song("A", "Y", "M", "Rock"),
		song("B", "X", "M", "Pop"),
	}

	stats := AllAlbumStats(songs)

	require.Len(t, stats, 1)
	assert.Equal(t, "Y", stats[0].Artist)
	assert.Equal(t, 2, stats[0].TotalSongs)
	assert.Equal(t, 2, stats[0].TotalGenres)
}

func TestGenreStatsOf(t *testing.T) {
	assert.Nil(t, GenreStatsOf("Rock", nil))

	stats := GenreStatsOf("Rock", []domain.Song{
		song("A", "X", "", "Rock"),
		song("B", "Y", "", "Rock"),
	})
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalSongs)
	assert.Equal(t, 2, stats.TotalArtists)
}

func TestListingIsIdempotent(t *testing.T) {
	songs := []domain.Song{
		song("A", "X", "M", "Rock"),
		song("B", "Y", "N", "Pop"),
		song("C", "Z", "O", "Jazz"),
	}

	f := dto.ArtistFilter{Pagination: page(1, 2)}
	first, firstTotal := Artists(songs, f)
	second, secondTotal := Artists(songs, f)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}
