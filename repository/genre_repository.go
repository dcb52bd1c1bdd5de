package repository

import (
	"context"
	"sort"

	"github.com/tsegayberhanu/echodash/aggregate"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GenreRepository interface {
	FindAll(ctx context.Context, f dto.GenreFilter) ([]domain.GenreSummary, int, error)
	FindDetail(ctx context.Context, name string, f dto.GenreDetailFilter) (*domain.GenreDetail, error)
	GenreArtists(ctx context.Context) ([]string, error)
	Top(ctx context.Context, limit int) ([]domain.TopGenre, error)
}

type genreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) GenreRepository {
	return &genreRepository{col: db.Collection("songs")}
}

func (r *genreRepository) FindAll(ctx context.Context, f dto.GenreFilter) ([]domain.GenreSummary, int, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"genre": notPlaceholder(domain.UnknownGenre)})
	if err != nil {
		return nil, 0, err
	}
	genres, total := aggregate.Genres(songs, f)
	return genres, total, nil
}

// FindDetail pages through one genre's songs. The genre matches by raw
// equality (no placeholder filtering at this level), and the whole query is
// pushed down to the store.
func (r *genreRepository) FindDetail(ctx context.Context, name string, f dto.GenreDetailFilter) (*domain.GenreDetail, error) {
	query := bson.M{"genre": name}
	if f.Search != "" {
		re := containsRegex(f.Search)
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"artist": re},
			bson.M{"album": re},
		}
	}

	countCtx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	total, err := r.col.CountDocuments(countCtx, query)
	if err != nil {
		return nil, err
	}

	distinctCtx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	artists, err := r.col.Distinct(distinctCtx, "artist", query)
	if err != nil {
		return nil, err
	}

	dir := 1
	if f.Order == "desc" {
		dir = -1
	}
	songs, err := loadSongs(ctx, r.col, query, options.Find().
		SetSort(bson.D{{Key: f.Sort, Value: dir}}).
		SetSkip(int64((f.Page-1)*f.Limit)).
		SetLimit(int64(f.Limit)))
	if err != nil {
		return nil, err
	}

	return &domain.GenreDetail{
		Genre:       name,
		SongCount:   int(total),
		ArtistCount: len(artists),
		Songs:       songs,
		TotalSongs:  int(total),
	}, nil
}

// GenreArtists lists the distinct artists credited on any non-placeholder
// genre, sorted ascending.
func (r *genreRepository) GenreArtists(ctx context.Context) ([]string, error) {
	artists, err := distinctStrings(ctx, r.col, "artist", bson.M{
		"genre":  notPlaceholder(domain.UnknownGenre),
		"artist": notPlaceholder(domain.UnknownArtist),
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(artists)
	return artists, nil
}

func (r *genreRepository) Top(ctx context.Context, limit int) ([]domain.TopGenre, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"genre": notEmpty()})
	if err != nil {
		return nil, err
	}
	return aggregate.TopGenres(songs, limit), nil
}
