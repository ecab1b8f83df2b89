package response

import (
	"moviehub/internal/data/entity"
)

// DateLayout is the wire form of a release date.
const DateLayout = "2006-01-02"

type MovieResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReleaseDate string `json:"releaseDate"`
	Duration    int    `json:"duration"`
}

// Helper converters
func MovieToResponse(movie entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Name:        movie.Name,
		Description: movie.Description,
		ReleaseDate: movie.ReleaseDate.Format(DateLayout),
		Duration:    movie.DurationMinutes,
	}
}

// MoviesToResponse never returns nil, so an empty list encodes as [].
func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
