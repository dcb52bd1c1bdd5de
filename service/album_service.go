package service

import (
	"context"

	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/repository"
)

type AlbumService interface {
	GetAlbums(ctx context.Context, f dto.AlbumFilter) ([]domain.AlbumSummary, int, error)
	GetAlbumDetail(ctx context.Context, name string) (*domain.AlbumDetail, error)
	GetTopAlbums(ctx context.Context, limit int) ([]domain.TopAlbum, error)
}

type albumService struct {
	repo repository.AlbumRepository
}

func NewAlbumService(repo repository.AlbumRepository) AlbumService {
	return &albumService{repo: repo}
}

func (s *albumService) GetAlbums(ctx context.Context, f dto.AlbumFilter) ([]domain.AlbumSummary, int, error) {
	return s.repo.FindAll(ctx, f)
}

func (s *albumService) GetAlbumDetail(ctx context.Context, name string) (*domain.AlbumDetail, error) {
	detail, err := s.repo.FindDetail(ctx, name)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.NewNotFound("Album not found")
	}
	return detail, nil
}

func (s *albumService) GetTopAlbums(ctx context.Context, limit int) ([]domain.TopAlbum, error) {
	return s.repo.Top(ctx, limit)
}
