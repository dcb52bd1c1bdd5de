package repository

import (
	"context"

	"github.com/tsegayberhanu/echodash/aggregate"
	"github.com/tsegayberhanu/echodash/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsRepository interface {
	TotalSongs(ctx context.Context) (int, error)
	TotalArtists(ctx context.Context) (int, error)
	TotalAlbums(ctx context.Context) (int, error)
	TotalGenres(ctx context.Context) (int, error)

	AllArtistStats(ctx context.Context) ([]domain.ArtistStats, error)
	ArtistStats(ctx context.Context, artist string) (*domain.ArtistStats, error)
	AllAlbumStats(ctx context.Context) ([]domain.AlbumStats, error)
	AlbumStats(ctx context.Context, album string) (*domain.AlbumStats, error)
	AllGenreStats(ctx context.Context) ([]domain.GenreStats, error)
	GenreStats(ctx context.Context, genre string) (*domain.GenreStats, error)
}

type statsRepository struct {
	col *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) StatsRepository {
	return &statsRepository{col: db.Collection("songs")}
}

func (r *statsRepository) TotalSongs(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	n, err := r.col.CountDocuments(ctx, bson.M{})
	return int(n), err
}

// TotalArtists counts every distinct artist value, placeholders included.
func (r *statsRepository) TotalArtists(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	values, err := r.col.Distinct(ctx, "artist", bson.M{})
	return len(values), err
}

func (r *statsRepository) TotalAlbums(ctx context.Context) (int, error) {
	albums, err := distinctStrings(ctx, r.col, "album", bson.M{})
	return len(albums), err
}

func (r *statsRepository) TotalGenres(ctx context.Context) (int, error) {
	genres, err := distinctStrings(ctx, r.col, "genre", bson.M{})
	return len(genres), err
}

func (r *statsRepository) AllArtistStats(ctx context.Context) ([]domain.ArtistStats, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{})
	if err != nil {
		return nil, err
	}
	return aggregate.AllArtistStats(songs), nil
}

func (r *statsRepository) ArtistStats(ctx context.Context, artist string) (*domain.ArtistStats, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"artist": artist})
	if err != nil {
		return nil, err
	}
	return aggregate.ArtistStatsOf(artist, songs), nil
}

func (r *statsRepository) AllAlbumStats(ctx context.Context) ([]domain.AlbumStats, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"album": notEmpty()})
	if err != nil {
		return nil, err
	}
	return aggregate.AllAlbumStats(songs), nil
}

func (r *statsRepository) AlbumStats(ctx context.Context, album string) (*domain.AlbumStats, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"album": album})
	if err != nil {
		return nil, err
	}
	return aggregate.AlbumStatsOf(album, songs), nil
}

func (r *statsRepository) AllGenreStats(ctx context.Context) ([]domain.GenreStats, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"genre": notEmpty()})
	if err != nil {
		return nil, err
	}
	return aggregate.AllGenreStats(songs), nil
}

func (r *statsRepository) GenreStats(ctx context.Context, genre string) (*domain.GenreStats, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"genre": genre})
	if err != nil {
		return nil, err
	}
	return aggregate.GenreStatsOf(genre, songs), nil
}
