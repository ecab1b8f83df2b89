package repository

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"
)

func newTestRepo(t *testing.T) MovieRepository {
	t.Helper()
	return NewMovieRepository(zaptest.NewLogger(t))
}

func movieReleased(name string, year int, month time.Month, day int) entity.Movie {
	return entity.Movie{
		Name:            name,
		Description:     name + " description",
		ReleaseDate:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
	}
}

func TestMovieRepository_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	first := repo.Create(ctx, movieReleased("Inception", 2010, time.July, 16))
	second := repo.Create(ctx, movieReleased("Heat", 1995, time.December, 15))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "Inception", first.Name)
}

func TestMovieRepository_CreateIgnoresCandidateID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	candidate := movieReleased("Alien", 1979, time.May, 25)
	candidate.ID = 42

	created := repo.Create(ctx, candidate)
	assert.Equal(t, int64(1), created.ID)

	_, ok := repo.FindByID(ctx, 42)
	assert.False(t, ok)
}

func TestMovieRepository_ReadYourWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	created := repo.Create(ctx, movieReleased("Arrival", 2016, time.November, 11))

	got, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestMovieRepository_DeleteThenLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	created := repo.Create(ctx, movieReleased("Memento", 2000, time.October, 11))

	assert.True(t, repo.Delete(ctx, created.ID))

	_, ok := repo.FindByID(ctx, created.ID)
	assert.False(t, ok)
	assert.False(t, repo.Delete(ctx, created.ID))
}

func TestMovieRepository_DeleteMissing(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	assert.False(t, repo.Delete(context.Background(), 999))
}

func TestMovieRepository_IDsNeverReused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	first := repo.Create(ctx, movieReleased("One", 2001, time.January, 1))
	second := repo.Create(ctx, movieReleased("Two", 2002, time.January, 1))
	require.True(t, repo.Delete(ctx, second.ID))

	third := repo.Create(ctx, movieReleased("Three", 2003, time.January, 1))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(3), third.ID)

	ids := []int64{}
	for _, m := range repo.FindAll(ctx) {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestMovieRepository_FindAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty store returns empty slice", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)

		movies := repo.FindAll(ctx)
		require.NotNil(t, movies)
		assert.Empty(t, movies)
	})

	t.Run("ordered by id", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		for i := 0; i < 20; i++ {
			repo.Create(ctx, movieReleased("Movie", 1990+i, time.March, 3))
		}

		movies := repo.FindAll(ctx)
		require.Len(t, movies, 20)
		for i, m := range movies {
			assert.Equal(t, int64(i+1), m.ID)
		}
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()
		repo := newTestRepo(t)
		repo.Create(ctx, movieReleased("Original", 2005, time.June, 6))

		movies := repo.FindAll(ctx)
		movies[0].Name = "Changed"

		got, ok := repo.FindByID(ctx, 1)
		require.True(t, ok)
		assert.Equal(t, "Original", got.Name)
	})
}

func TestMovieRepository_FindByYear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	repo.Create(ctx, movieReleased("Gladiator", 2000, time.May, 5))
	repo.Create(ctx, movieReleased("Matrix", 1999, time.March, 31))
	repo.Create(ctx, movieReleased("Memento", 2000, time.October, 11))
	repo.Create(ctx, movieReleased("Amelie", 2001, time.April, 25))

	tests := []struct {
		name  string
		year  int
		names []string
	}{
		{name: "two matches", year: 2000, names: []string{"Gladiator", "Memento"}},
		{name: "single match", year: 1999, names: []string{"Matrix"}},
		{name: "no match", year: 1950, names: []string{}},
		{name: "implausibly large year", year: 1_000_000, names: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			movies := repo.FindByYear(ctx, tt.year)
			require.NotNil(t, movies)

			names := []string{}
			for _, m := range movies {
				assert.Equal(t, tt.year, m.ReleaseYear())
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestMovieRepository_Clear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	repo.Create(ctx, movieReleased("First", 2011, time.February, 2))
	repo.Create(ctx, movieReleased("Second", 2012, time.February, 2))

	repo.Clear(ctx)

	assert.Empty(t, repo.FindAll(ctx))
	created := repo.Create(ctx, movieReleased("Fresh", 2013, time.February, 2))
	assert.Equal(t, int64(1), created.ID)
}

func TestMovieRepository_ConcurrentCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	const n = 500
	ids := make([]int64, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			created := repo.Create(ctx, movieReleased("Concurrent", 2020, time.January, 1))
			ids[i] = created.ID

			// The movie must be visible as soon as its id is handed out.
			if _, ok := repo.FindByID(ctx, created.ID); !ok {
				t.Errorf("movie %d not visible after create", created.ID)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]struct{}, n)
	for _, id := range ids {
		assert.GreaterOrEqual(t, id, int64(1))
		assert.LessOrEqual(t, id, int64(n))
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
	assert.Len(t, repo.FindAll(ctx), n)
}

func TestMovieRepository_ConcurrentMixedOperations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		i := i
		g.Go(func() error {
			created := repo.Create(ctx, movieReleased("Mixed", 2000+i%5, time.July, 7))
			repo.FindAll(ctx)
			repo.FindByYear(ctx, 2000+i%5)
			if i%2 == 0 {
				repo.Delete(ctx, created.ID)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, repo.FindAll(ctx), 50)
}
