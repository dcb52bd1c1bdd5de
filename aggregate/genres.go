package aggregate

import (
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
)

// Genres derives the genre listing. Placeholder genres never form groups;
// the artist count (and the artist set returned with each row) skips
// placeholder artists.
func Genres(songs []domain.Song, f dto.GenreFilter) ([]domain.GenreSummary, int) {
	p := listPipeline[domain.GenreSummary]{
		key:  songGenre,
		keep: notPlaceholder(domain.UnknownGenre),
		derive: func(g group) (domain.GenreSummary, bool) {
			artists := distinctValues(g.Songs, songArtist, notPlaceholder(domain.UnknownArtist))
			return domain.GenreSummary{
				Genre:       g.Key,
				SongCount:   len(g.Songs),
				ArtistCount: len(artists),
				Artists:     artists,
			}, true
		},
		less:  genreLess(f.Sort, f.Order),
		page:  f.Page,
		limit: f.Limit,
	}
	if f.Search != "" {
		p.post = append(p.post, func(g domain.GenreSummary) bool { return containsFold(g.Genre, f.Search) })
	}
	p.post = append(p.post,
		func(g domain.GenreSummary) bool { return inRange(g.SongCount, f.MinSongs, f.MaxSongs) },
		func(g domain.GenreSummary) bool { return inRange(g.ArtistCount, f.MinArtists, f.MaxArtists) },
	)
	return p.run(songs)
}

// TopGenres ranks genres by song count with the raw distinct artist count as
// tie-breaker.
func TopGenres(songs []domain.Song, limit int) []domain.TopGenre {
	p := listPipeline[domain.TopGenre]{
		key:  songGenre,
		keep: notEmpty,
		derive: func(g group) (domain.TopGenre, bool) {
			return domain.TopGenre{
				Genre:   g.Key,
				Songs:   len(g.Songs),
				Artists: distinctCount(g.Songs, songArtist, nil),
			}, true
		},
		less: func(a, b domain.TopGenre) bool {
			if a.Songs != b.Songs {
				return a.Songs > b.Songs
			}
			return a.Artists > b.Artists
		},
		page:  1,
		limit: limit,
	}
	top, _ := p.run(songs)
	return top
}

func genreLess(sortField, order string) func(a, b domain.GenreSummary) bool {
	switch sortField {
	case "genre":
		return func(a, b domain.GenreSummary) bool { return strOrdered(order, a.Genre, b.Genre) }
	case "artistCount":
		return func(a, b domain.GenreSummary) bool { return intOrdered(order, a.ArtistCount, b.ArtistCount) }
	default:
		return func(a, b domain.GenreSummary) bool { return intOrdered(order, a.SongCount, b.SongCount) }
	}
}
