package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"moviehub/internal/data/entity"

	"go.uber.org/zap"
)

// firstMovieID is where the id sequence starts and where Clear resets it.
const firstMovieID int64 = 1

type MovieRepository interface {
	// Create assigns the next id and stores the movie in one step.
	Create(ctx context.Context, movie entity.Movie) entity.Movie
	FindAll(ctx context.Context) []entity.Movie
	FindByID(ctx context.Context, id int64) (entity.Movie, bool)
	FindByYear(ctx context.Context, year int) []entity.Movie
	Delete(ctx context.Context, id int64) bool

	// Clear drops every movie and restarts the id sequence.
	Clear(ctx context.Context)
}

type movieRepository struct {
	mu     sync.RWMutex
	movies map[int64]entity.Movie
	nextID int64
	log    *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		movies: make(map[int64]entity.Movie),
		nextID: firstMovieID,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(_ context.Context, movie entity.Movie) entity.Movie {
	r.mu.Lock()
	movie.ID = r.nextID
	r.nextID++
	r.movies[movie.ID] = movie
	r.mu.Unlock()

	r.log.Debug("Movie stored",
		zap.Int64("movie_id", movie.ID),
		zap.String("name", movie.Name),
	)

	return movie
}

func (r *movieRepository) FindAll(_ context.Context) []entity.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(func(entity.Movie) bool { return true })
}

func (r *movieRepository) FindByID(_ context.Context, id int64) (entity.Movie, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	return movie, ok
}

func (r *movieRepository) FindByYear(_ context.Context, year int) []entity.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(func(m entity.Movie) bool { return m.ReleaseYear() == year })
}

func (r *movieRepository) Delete(_ context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return false
	}
	delete(r.movies, id)

	r.log.Debug("Movie removed", zap.Int64("movie_id", id))
	return true
}

func (r *movieRepository) Clear(_ context.Context) {
	r.mu.Lock()
	removed := len(r.movies)
	r.movies = make(map[int64]entity.Movie)
	r.nextID = firstMovieID
	r.mu.Unlock()

	r.log.Info("Movie store cleared", zap.Int("removed", removed))
}

// snapshot copies the matching movies ordered by id. Callers hold r.mu.
func (r *movieRepository) snapshot(match func(entity.Movie) bool) []entity.Movie {
	movies := make([]entity.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		if match(m) {
			movies = append(movies, m)
		}
	}

	slices.SortFunc(movies, func(a, b entity.Movie) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return movies
}
