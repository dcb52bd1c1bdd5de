package service

import (
	"context"

	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/repository"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	HomeStats(ctx context.Context) (*domain.HomeStats, error)
	GetAllArtistStats(ctx context.Context) (*domain.AllArtistStats, error)
	GetArtistStats(ctx context.Context, artist string) (*domain.ArtistStats, error)
	GetAllAlbumStats(ctx context.Context) (*domain.AllAlbumStats, error)
	GetAlbumStats(ctx context.Context, album string) (*domain.AlbumStats, error)
	GetAllGenreStats(ctx context.Context) (*domain.AllGenreStats, error)
	GetGenreStats(ctx context.Context, genre string) (*domain.GenreStats, error)
}

type statsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

// HomeStats issues its four scalar aggregations concurrently; they are
// independent reads with no ordering requirement between them.
func (s *statsService) HomeStats(ctx context.Context) (*domain.HomeStats, error) {
	var stats domain.HomeStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalSongs, err = s.repo.TotalSongs(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalArtists, err = s.repo.TotalArtists(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalAlbums, err = s.repo.TotalAlbums(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalGenres, err = s.repo.TotalGenres(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *statsService) GetAllArtistStats(ctx context.Context) (*domain.AllArtistStats, error) {
	stats, err := s.repo.AllArtistStats(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AllArtistStats{TotalArtists: len(stats), Artists: stats}, nil
}

// GetArtistStats answers with zeroed counts for an unknown artist rather
// than failing, so dashboard cards degrade gracefully.
func (s *statsService) GetArtistStats(ctx context.Context, artist string) (*domain.ArtistStats, error) {
	stats, err := s.repo.ArtistStats(ctx, artist)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &domain.ArtistStats{Artist: artist}, nil
	}
	return stats, nil
}

func (s *statsService) GetAllAlbumStats(ctx context.Context) (*domain.AllAlbumStats, error) {
	stats, err := s.repo.AllAlbumStats(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AllAlbumStats{TotalAlbums: len(stats), Albums: stats}, nil
}

func (s *statsService) GetAlbumStats(ctx context.Context, album string) (*domain.AlbumStats, error) {
	stats, err := s.repo.AlbumStats(ctx, album)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, apperr.NewNotFound("Album not found")
	}
	return stats, nil
}

func (s *statsService) GetAllGenreStats(ctx context.Context) (*domain.AllGenreStats, error) {
	stats, err := s.repo.AllGenreStats(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AllGenreStats{TotalGenres: len(stats), Genres: stats}, nil
}

func (s *statsService) GetGenreStats(ctx context.Context, genre string) (*domain.GenreStats, error) {
	stats, err := s.repo.GenreStats(ctx, genre)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, apperr.NewNotFound("Genre not found")
	}
	return stats, nil
}
