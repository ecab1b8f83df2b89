package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
)

// Request shape errors detected before the service is called.
var (
	errBadID            = errors.New("bad movie id")
	errBadYear          = errors.New("bad year")
	errNegativeYear     = errors.New("negative year")
	errUnknownQuery     = errors.New("unknown query parameter")
	errUnsupportedMedia = errors.New("unsupported content type")
	errBodyTooLarge     = errors.New("request body too large")
	errReadBody         = errors.New("read request body")
	errEmptyBody        = errors.New("empty request body")
)

const validationFailedMessage = "validation failed"

type statusRule struct {
	target  error
	status  int
	message string
}

// statusTable maps each recognised failure to the status and message sent
// to the client. Anything not listed is a 500.
var statusTable = []statusRule{
	{errBadID, http.StatusBadRequest, "movie id must be a positive integer"},
	{errBadYear, http.StatusBadRequest, "year must be a number"},
	{errNegativeYear, http.StatusBadRequest, "year must not be negative"},
	{errUnknownQuery, http.StatusBadRequest, "unknown query parameter, use ?year=YYYY"},
	{errReadBody, http.StatusBadRequest, "failed to read request body"},
	{errEmptyBody, http.StatusBadRequest, "request body must not be empty"},
	{request.ErrMalformedBody, http.StatusBadRequest, "malformed JSON body"},
	{usecase.ErrInvalidReleaseDate, http.StatusBadRequest, "invalid release date, use YYYY-MM-DD (for example 2023-12-31)"},
	{usecase.ErrMovieNotFound, http.StatusNotFound, "movie not found"},
	{errBodyTooLarge, http.StatusRequestEntityTooLarge, "request body is too large"},
	{errUnsupportedMedia, http.StatusUnsupportedMediaType, "Content-Type must be application/json"},
}

// lookupStatus returns the status, client message and details for err.
// ok is false for unexpected failures.
func lookupStatus(err error) (status int, message string, details []string, ok bool) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationFailedMessage, validationErr.Details, true
	}

	for _, rule := range statusTable {
		if errors.Is(err, rule.target) {
			return rule.status, rule.message, nil, true
		}
	}

	return http.StatusInternalServerError, "Internal server error", nil, false
}
