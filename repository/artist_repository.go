package repository

import (
	"context"

	"github.com/tsegayberhanu/echodash/aggregate"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ArtistRepository interface {
	FindAll(ctx context.Context, f dto.ArtistFilter) ([]domain.ArtistSummary, int, error)
	FindDetail(ctx context.Context, name string) (*domain.ArtistDetail, error)
	Top(ctx context.Context, limit int) ([]domain.TopArtist, error)
}

type artistRepository struct {
	col *mongo.Collection
}

func NewArtistRepository(db *mongo.Database) ArtistRepository {
	return &artistRepository{col: db.Collection("songs")}
}

func (r *artistRepository) FindAll(ctx context.Context, f dto.ArtistFilter) ([]domain.ArtistSummary, int, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"artist": notEmpty()})
	if err != nil {
		return nil, 0, err
	}
	artists, total := aggregate.Artists(songs, f)
	return artists, total, nil
}

func (r *artistRepository) FindDetail(ctx context.Context, name string) (*domain.ArtistDetail, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"artist": name})
	if err != nil {
		return nil, err
	}
	return aggregate.ArtistDetail(name, songs), nil
}

func (r *artistRepository) Top(ctx context.Context, limit int) ([]domain.TopArtist, error) {
	songs, err := loadSongs(ctx, r.col, bson.M{"artist": notEmpty()})
	if err != nil {
		return nil, err
	}
	return aggregate.TopArtists(songs, limit), nil
}
