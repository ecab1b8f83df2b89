package wire

import (
	"net/http"

	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/internal/usecase"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the router and the store behind it. Repo is exposed so tests
// and admin tooling can reset the store.
type App struct {
	Router *chi.Mux
	Repo   *repository.Repository
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
		Repo:   repo,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.PathGuard(logger))

	r.NotFound(adaptor.NotFound)
	r.MethodNotAllowed(adaptor.MethodNotAllowed(r))

	wireMovie(r, handler.Movie, config)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
