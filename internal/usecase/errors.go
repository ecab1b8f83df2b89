package usecase

import (
	"errors"
	"strings"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrInvalidReleaseDate = errors.New("invalid release date")
)

// ValidationError carries every rule a candidate movie broke, in check order.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}
