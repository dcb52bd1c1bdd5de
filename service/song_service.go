package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

type SongService interface {
	CreateSong(ctx context.Context, req dto.CreateSongRequest) (*domain.Song, error)
	GetSongByID(ctx context.Context, id string) (*domain.Song, error)
	GetSongs(ctx context.Context, f dto.SongFilter) ([]domain.Song, int, error)
	UpdateSong(ctx context.Context, id string, req dto.UpdateSongRequest) (*domain.Song, error)
	DeleteSong(ctx context.Context, id string) error
	GetRecentSongs(ctx context.Context, limit int) ([]domain.Song, error)
}

type songService struct {
	repo repository.SongRepository
}

func NewSongService(repo repository.SongRepository) SongService {
	return &songService{repo: repo}
}

func (s *songService) CreateSong(ctx context.Context, req dto.CreateSongRequest) (*domain.Song, error) {
	song := &domain.Song{
		ID:     uuid.New().String(),
		Title:  req.Title,
		Artist: req.Artist,
		Album:  req.Album,
		Genre:  req.Genre,
	}
	if err := s.repo.Create(ctx, song); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewConflict("Song already exists with this title and artist")
		}
		return nil, err
	}
	return song, nil
}

func (s *songService) GetSongByID(ctx context.Context, id string) (*domain.Song, error) {
	song, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("Song not found")
		}
		return nil, err
	}
	return song, nil
}

func (s *songService) GetSongs(ctx context.Context, f dto.SongFilter) ([]domain.Song, int, error) {
	return s.repo.FindAll(ctx, f)
}

func (s *songService) UpdateSong(ctx context.Context, id string, req dto.UpdateSongRequest) (*domain.Song, error) {
	updates, err := req.Updates()
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return s.GetSongByID(ctx, id)
	}

	updated, err := s.repo.UpdateByID(ctx, id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("Song not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewConflict("Another song already exists with this title and artist")
		}
		return nil, err
	}
	return updated, nil
}

func (s *songService) DeleteSong(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NewNotFound("Song not found")
		}
		return err
	}
	return nil
}

func (s *songService) GetRecentSongs(ctx context.Context, limit int) ([]domain.Song, error) {
	return s.repo.Recent(ctx, limit)
}
