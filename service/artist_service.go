package service

import (
	"context"

	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/repository"
)

type ArtistService interface {
	GetArtists(ctx context.Context, f dto.ArtistFilter) ([]domain.ArtistSummary, int, error)
	GetArtistDetail(ctx context.Context, name string) (*domain.ArtistDetail, error)
	GetTopArtists(ctx context.Context, limit int) ([]domain.TopArtist, error)
}

type artistService struct {
	repo repository.ArtistRepository
}

func NewArtistService(repo repository.ArtistRepository) ArtistService {
	return &artistService{repo: repo}
}

func (s *artistService) GetArtists(ctx context.Context, f dto.ArtistFilter) ([]domain.ArtistSummary, int, error) {
	return s.repo.FindAll(ctx, f)
}

func (s *artistService) GetArtistDetail(ctx context.Context, name string) (*domain.ArtistDetail, error) {
	detail, err := s.repo.FindDetail(ctx, name)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.NewNotFound("Artist not found")
	}
	return detail, nil
}

func (s *artistService) GetTopArtists(ctx context.Context, limit int) ([]domain.TopArtist, error) {
	return s.repo.Top(ctx, limit)
}
