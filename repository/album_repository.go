package repository

import (
	"context"

	"github.com/tsegayberhanu/echodash/aggregate"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AlbumRepository interface {
	FindAll(ctx context.Context, f dto.AlbumFilter) ([]domain.AlbumSummary, int, error)
	FindDetail(ctx context.Context, name string) (*domain.AlbumDetail, error)
	Top(ctx context.Context, limit int) ([]domain.TopAlbum, error)
}

type albumRepository struct {
	col *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) AlbumRepository {
	return &albumRepository{col: db.Collection("songs")}
}

func (r *albumRepository) FindAll(ctx context.Context, f dto.AlbumFilter) ([]domain.AlbumSummary, int, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"album": notPlaceholder(domain.UnknownAlbum)})
	if err != nil {
		return nil, 0, err
	}
	albums, total := aggregate.Albums(songs, f)
	return albums, total, nil
}

func (r *albumRepository) FindDetail(ctx context.Context, name string) (*domain.AlbumDetail, error) {
	// Exact match, but placeholder album names never resolve to a detail.
	if domain.IsPlaceholder(name, domain.UnknownAlbum) {
		return nil, nil
	}
	songs, err := loadSongs(ctx, r.col, bson.M{"album": name})
	if err != nil {
		return nil, err
	}
	return aggregate.AlbumDetail(name, songs), nil
}

func (r *albumRepository) Top(ctx context.Context, limit int) ([]domain.TopAlbum, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"album": notEmpty()})
	if err != nil {
		return nil, err
	}
	return aggregate.TopAlbums(songs, limit), nil
}
