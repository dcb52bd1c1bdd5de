package repository

import (
	"context"
	"time"

	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SongRepository interface {
	Create(ctx context.Context, s *domain.Song) error
	FindByID(ctx context.Context, id string) (*domain.Song, error)
	FindAll(ctx context.Context, f dto.SongFilter) ([]domain.Song, int, error)
	UpdateByID(ctx context.Context, id string, updates map[string]string) (*domain.Song, error)
	DeleteByID(ctx context.Context, id string) error
	Recent(ctx context.Context, limit int) ([]domain.Song, error)
}

type songRepository struct {
	col *mongo.Collection
}

func NewSongRepository(db *mongo.Database) SongRepository {
	col := db.Collection("songs")

	// (title, artist) is the uniqueness constraint; created_at backs the
	// recent-songs sort.
	ctx, cancel := context.WithTimeout(context.Background(), findTimeout)
	defer cancel()
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}, {Key: "artist", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	return &songRepository{col: col}
}

func (r *songRepository) Create(ctx context.Context, s *domain.Song) error {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()
	s.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *songRepository) FindByID(ctx context.Context, id string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()
	var s domain.Song
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *songRepository) FindAll(ctx context.Context, f dto.SongFilter) ([]domain.Song, int, error) {
	query := bson.M{}
	if f.Search != "" {
		re := containsRegex(f.Search)
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"artist": re},
			bson.M{"album": re},
			bson.M{"genre": re},
		}
	}
	if f.Artist != "" {
		query["artist"] = containsRegex(f.Artist)
	}
	if f.Genre != "" {
		query["genre"] = containsRegex(f.Genre)
	}

	opts := options.Find().
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))
	if f.Sort != "" {
		dir := -1
		if f.Order == "asc" {
			dir = 1
		}
		opts.SetSort(bson.D{{Key: f.Sort, Value: dir}})
	}

	songs, err := loadSongs(ctx, r.col, query, opts)
	if err != nil {
		return nil, 0, err
	}

	countCtx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	total, err := r.col.CountDocuments(countCtx, query)
	if err != nil {
		return nil, 0, err
	}
	return songs, int(total), nil
}

func (r *songRepository) UpdateByID(ctx context.Context, id string, updates map[string]string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	set := bson.M{}
	for field, value := range updates {
		set[field] = value
	}

	var updated domain.Song
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *songRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *songRepository) Recent(ctx context.Context, limit int) ([]domain.Song, error) {
	return loadSongs(ctx, r.col,
		bson.M{"title": notEmpty(), "artist": notEmpty()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)),
	)
}
