package aggregate

import (
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
)

// Artists derives the artist listing. Grouping skips songs with an empty
// artist; the "Unknown Artist" sentinel still forms a group here, matching
// the raw-listing behavior of the store.
func Artists(songs []domain.Song, f dto.ArtistFilter) ([]domain.ArtistSummary, int) {
	p := listPipeline[domain.ArtistSummary]{
		key:    songArtist,
		keep:   notEmpty,
		derive: deriveArtist,
		less:   artistLess(f.Sort, f.Order),
		page:   f.Page,
		limit:  f.Limit,
	}
	if f.Search != "" {
		p.post = append(p.post, func(a domain.ArtistSummary) bool { return containsFold(a.Artist, f.Search) })
	}
	p.post = append(p.post,
		func(a domain.ArtistSummary) bool { return inRange(a.SongCount, f.MinSongs, f.MaxSongs) },
		func(a domain.ArtistSummary) bool { return inRange(a.AlbumCount, f.MinAlbums, f.MaxAlbums) },
		func(a domain.ArtistSummary) bool { return inRange(a.GenreCount, f.MinGenres, f.MaxGenres) },
	)
	return p.run(songs)
}

func deriveArtist(g group) (domain.ArtistSummary, bool) {
	return domain.ArtistSummary{
		Artist:     g.Key,
		SongCount:  len(g.Songs),
		AlbumCount: distinctCount(g.Songs, songAlbum, notEmpty),
		GenreCount: distinctCount(g.Songs, songGenre, notPlaceholder(domain.UnknownGenre)),
	}, true
}

// ArtistDetail derives the single-artist view from that artist's songs
// (already matched exactly by the caller). Returns nil when the artist has
// no songs. The song list is sorted by title with every missing field
// replaced by its sentinel.
func ArtistDetail(name string, songs []domain.Song) *domain.ArtistDetail {
	if len(songs) == 0 {
		return nil
	}
	summary, _ := deriveArtist(group{Key: name, Songs: songs})

	ordered := sortSongsByTitle(songs)
	infos := make([]domain.SongInfo, len(ordered))
	for i, s := range ordered {
		infos[i] = domain.SongInfo{
			ID:     s.ID,
			Title:  orUnknown(s.Title, domain.UnknownTitle),
			Artist: orUnknown(s.Artist, domain.UnknownArtist),
			Album:  orUnknown(s.Album, domain.UnknownAlbum),
			Genre:  orUnknown(s.Genre, domain.UnknownGenre),
		}
	}
	return &domain.ArtistDetail{ArtistSummary: summary, Songs: infos}
}

func orUnknown(v, sentinel string) string {
	if v == "" {
		return sentinel
	}
	return v
}

// TopArtists ranks artists by song count; distinct album and genre values
// (raw, placeholders included) break ties.
func TopArtists(songs []domain.Song, limit int) []domain.TopArtist {
	p := listPipeline[domain.TopArtist]{
		key:  songArtist,
		keep: notEmpty,
		derive: func(g group) (domain.TopArtist, bool) {
			return domain.TopArtist{
				Artist: g.Key,
				Songs:  len(g.Songs),
				Albums: distinctCount(g.Songs, songAlbum, nil),
				Genres: distinctCount(g.Songs, songGenre, nil),
			}, true
		},
		less: func(a, b domain.TopArtist) bool {
			if a.Songs != b.Songs {
				return a.Songs > b.Songs
			}
			if a.Albums != b.Albums {
				return a.Albums > b.Albums
			}
			return a.Genres > b.Genres
		},
		page:  1,
		limit: limit,
	}
	top, _ := p.run(songs)
	return top
}

func artistLess(sortField, order string) func(a, b domain.ArtistSummary) bool {
	switch sortField {
	case "artist":
		return func(a, b domain.ArtistSummary) bool { return strOrdered(order, a.Artist, b.Artist) }
	case "albumCount":
		return func(a, b domain.ArtistSummary) bool { return intOrdered(order, a.AlbumCount, b.AlbumCount) }
	case "genreCount":
		return func(a, b domain.ArtistSummary) bool { return intOrdered(order, a.GenreCount, b.GenreCount) }
	default:
		return func(a, b domain.ArtistSummary) bool { return intOrdered(order, a.SongCount, b.SongCount) }
	}
}
