package adaptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AllowedMethods is sent in the Allow header of every 405 response.
const AllowedMethods = "GET, POST, DELETE"

// maxQueryYear is the largest year worth looking up; anything above it
// cannot match a valid movie.
const maxQueryYear = 10000

type MovieHandler struct {
	service      usecase.MovieService
	maxBodyBytes int64
	log          *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, maxBodyBytes int64, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
		log:          log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies and GET /movies?year=YYYY
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if len(query) == 0 {
		movies, err := h.service.GetMovies(r.Context())
		if err != nil {
			h.handleServiceError(w, r, err, "get movies")
			return
		}
		utils.ResponseSuccess(w, movies)
		return
	}

	yearValues, ok := query["year"]
	if !ok || len(query) != 1 || len(yearValues) != 1 {
		h.handleServiceError(w, r, errUnknownQuery, "get movies")
		return
	}

	year, beyond, err := parseYear(yearValues[0])
	if err != nil {
		h.handleServiceError(w, r, err, "get movies by year")
		return
	}
	if beyond {
		utils.ResponseSuccess(w, []response.MovieResponse{})
		return
	}

	movies, err := h.service.GetMoviesByYear(r.Context(), year)
	if err != nil {
		h.handleServiceError(w, r, err, "get movies by year")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get movie by ID")
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		h.handleServiceError(w, r, errUnsupportedMedia, "create movie")
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		h.handleServiceError(w, r, err, "create movie")
		return
	}

	req, err := request.DecodeMovieRequest(body)
	if err != nil {
		h.handleServiceError(w, r, err, "create movie")
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "delete movie")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

// ClearMovies handles DELETE /admin/movies
func (h *MovieHandler) ClearMovies(w http.ResponseWriter, r *http.Request) {
	h.service.ClearMovies(r.Context())
	h.log.Warn("Movie store cleared by admin request", zap.String("ip", r.RemoteAddr))
	utils.ResponseNoContent(w)
}

// MethodNotAllowed answers every method and path under /movies that has no
// handler.
func (h *MovieHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	utils.ResponseError(w, http.StatusMethodNotAllowed,
		fmt.Sprintf("method %s is not allowed for this resource, allowed: %s", r.Method, AllowedMethods), nil)
}

// readBody reads at most maxBodyBytes, failing as soon as the cap is crossed.
func (h *MovieHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("%w: %v", errReadBody, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}

// handleServiceError writes the response for err and logs it
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	status, message, details, ok := lookupStatus(err)
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	if ok {
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation),
			zap.Int("status", status),
			zap.String("request_id", requestID),
		)
	} else {
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID),
		)
	}

	utils.ResponseError(w, status, message, details)
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// parseID accepts positive integers that fit in an int64.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadID, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", errBadID, id)
	}
	return id, nil
}

// parseYear parses a year filter. beyond is true for years so large that no
// movie can match, including values that overflow int64.
func parseYear(raw string) (year int, beyond bool, err error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(raw, "-") {
				return 0, false, fmt.Errorf("%w: %s", errNegativeYear, raw)
			}
			return 0, true, nil
		}
		return 0, false, fmt.Errorf("%w: %q", errBadYear, raw)
	}

	if n < 0 {
		return 0, false, fmt.Errorf("%w: %d", errNegativeYear, n)
	}
	if n > maxQueryYear {
		return 0, true, nil
	}
	return int(n), false, nil
}
