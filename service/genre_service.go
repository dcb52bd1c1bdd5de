package service

import (
	"context"

	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/repository"
)

type GenreService interface {
	GetGenres(ctx context.Context, f dto.GenreFilter) ([]domain.GenreSummary, int, error)
	GetGenreDetail(ctx context.Context, name string, f dto.GenreDetailFilter) (*domain.GenreDetail, error)
	GetGenreArtists(ctx context.Context) ([]string, error)
	GetTopGenres(ctx context.Context, limit int) ([]domain.TopGenre, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetGenres(ctx context.Context, f dto.GenreFilter) ([]domain.GenreSummary, int, error) {
	return s.repo.FindAll(ctx, f)
}

// GetGenreDetail pages a single genre's songs. A genre nothing matches still
// answers, with zero counts and an empty page.
func (s *genreService) GetGenreDetail(ctx context.Context, name string, f dto.GenreDetailFilter) (*domain.GenreDetail, error) {
	return s.repo.FindDetail(ctx, name, f)
}

func (s *genreService) GetGenreArtists(ctx context.Context) ([]string, error) {
	return s.repo.GenreArtists(ctx)
}

func (s *genreService) GetTopGenres(ctx context.Context, limit int) ([]domain.TopGenre, error) {
	return s.repo.Top(ctx, limit)
}
