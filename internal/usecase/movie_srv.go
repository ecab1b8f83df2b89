package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMoviesByYear(ctx context.Context, year int) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) error
	ClearMovies(ctx context.Context)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies := s.repo.Movie.FindAll(ctx)

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMoviesByYear(ctx context.Context, year int) ([]response.MovieResponse, error) {
	movies := s.repo.Movie.FindByYear(ctx, year)

	s.log.Debug("Movies retrieved by year",
		zap.Int("year", year),
		zap.Int("count", len(movies)),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, ok := s.repo.Movie.FindByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("get movie %d: %w", id, ErrMovieNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if violations := ValidateMovieRequest(req, s.now()); len(violations) > 0 {
		s.log.Warn("Create movie validation failed", zap.Strings("violations", violations))
		return nil, &ValidationError{Details: violations}
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		s.log.Warn("Invalid release date format",
			zap.String("release_date", req.ReleaseDate),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrInvalidReleaseDate, err)
	}

	movie := s.repo.Movie.Create(ctx, entity.Movie{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		ReleaseDate:     releaseDate,
		DurationMinutes: req.Duration,
	})

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("name", movie.Name),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	if !s.repo.Movie.Delete(ctx, id) {
		return fmt.Errorf("delete movie %d: %w", id, ErrMovieNotFound)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (s *movieService) ClearMovies(ctx context.Context) {
	s.repo.Movie.Clear(ctx)
}
