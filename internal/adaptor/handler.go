package adaptor

import (
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(service.Movie, config.HTTP.MaxBodyBytes, log),
	}
}
