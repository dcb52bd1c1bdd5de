package aggregate

import (
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
)

// Albums derives the album listing. Placeholder albums never form groups,
// and groups with no resolvable dominant artist are dropped entirely,
// including from the total.
func Albums(songs []domain.Song, f dto.AlbumFilter) ([]domain.AlbumSummary, int) {
	p := listPipeline[domain.AlbumSummary]{
		key:    songAlbum,
		keep:   notPlaceholder(domain.UnknownAlbum),
		derive: deriveAlbum,
		less:   albumLess(f.Sort, f.Order),
		page:   f.Page,
		limit:  f.Limit,
	}
	if f.Search != "" {
		p.post = append(p.post, func(a domain.AlbumSummary) bool {
			return containsFold(a.Album, f.Search) || containsFold(a.Artist, f.Search)
		})
	}
	if f.Artist != "" {
		p.post = append(p.post, func(a domain.AlbumSummary) bool { return containsFold(a.Artist, f.Artist) })
	}
	p.post = append(p.post, func(a domain.AlbumSummary) bool { return inRange(a.SongCount, f.MinSongs, f.MaxSongs) })
	return p.run(songs)
}

func deriveAlbum(g group) (domain.AlbumSummary, bool) {
	artist, ok := dominantArtist(g.Songs)
	if !ok {
		return domain.AlbumSummary{}, false
	}
	return domain.AlbumSummary{
		Album:      g.Key,
		SongCount:  len(g.Songs),
		GenreCount: distinctCount(g.Songs, songGenre, notPlaceholder(domain.UnknownGenre)),
		Artist:     artist,
	}, true
}

// AlbumDetail derives the single-album view from that album's songs (already
// matched exactly by the caller). Returns nil when nothing matches. Unlike
// the artist detail, song fields pass through raw. An album whose songs all
// carry placeholder artists keeps the sentinel as its artist.
func AlbumDetail(name string, songs []domain.Song) *domain.AlbumDetail {
	if len(songs) == 0 {
		return nil
	}
	artist, ok := dominantArtist(songs)
	if !ok {
		artist = domain.UnknownArtist
	}

	ordered := sortSongsByTitle(songs)
	infos := make([]domain.SongInfo, len(ordered))
	for i, s := range ordered {
		infos[i] = s.Info()
	}
	return &domain.AlbumDetail{
		AlbumSummary: domain.AlbumSummary{
			Album:      name,
			SongCount:  len(songs),
			GenreCount: distinctCount(songs, songGenre, notPlaceholder(domain.UnknownGenre)),
			Artist:     artist,
		},
		Songs: infos,
	}
}

// TopAlbums ranks albums by song count with raw distinct genre and artist
// counts as tie-breakers.
func TopAlbums(songs []domain.Song, limit int) []domain.TopAlbum {
	p := listPipeline[domain.TopAlbum]{
		key:  songAlbum,
		keep: notEmpty,
		derive: func(g group) (domain.TopAlbum, bool) {
			return domain.TopAlbum{
				Album:   g.Key,
				Songs:   len(g.Songs),
				Genres:  distinctCount(g.Songs, songGenre, nil),
				Artists: distinctCount(g.Songs, songArtist, nil),
			}, true
		},
		less: func(a, b domain.TopAlbum) bool {
			if a.Songs != b.Songs {
				return a.Songs > b.Songs
			}
			if a.Genres != b.Genres {
				return a.Genres > b.Genres
			}
			return a.Artists > b.Artists
		},
		page:  1,
		limit: limit,
	}
	top, _ := p.run(songs)
	return top
}

func albumLess(sortField, order string) func(a, b domain.AlbumSummary) bool {
	switch sortField {
	case "album":
		return func(a, b domain.AlbumSummary) bool { return strOrdered(order, a.Album, b.Album) }
	case "artist":
		return func(a, b domain.AlbumSummary) bool { return strOrdered(order, a.Artist, b.Artist) }
	case "genreCount":
		return func(a, b domain.AlbumSummary) bool { return intOrdered(order, a.GenreCount, b.GenreCount) }
	default:
		return func(a, b domain.AlbumSummary) bool { return intOrdered(order, a.SongCount, b.SongCount) }
	}
}
