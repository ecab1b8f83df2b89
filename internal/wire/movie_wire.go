package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
) {
	r.Route("/movies", func(r chi.Router) {
		// Anything under /movies without a handler is a 405, not a 404
		r.NotFound(movieHandler.MethodNotAllowed)
		r.MethodNotAllowed(movieHandler.MethodNotAllowed)

		r.Get("/", movieHandler.GetMovies)          // GET /movies, GET /movies?year=YYYY
		r.Post("/", movieHandler.CreateMovie)       // POST /movies
		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /movies/{id}
	})

	// Store reset, only for controlled environments
	if config.App.AdminResetEnabled {
		r.Delete("/admin/movies", movieHandler.ClearMovies)
	}
}
