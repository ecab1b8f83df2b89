package usecase

import (
	"fmt"
	"strings"
	"time"

	"moviehub/internal/dto/request"
	"moviehub/pkg/utils"
)

const (
	releaseDateLayout = "2006-01-02"

	// First year a film could plausibly have been released.
	minReleaseYear       = 1888
	maxNameLength        = 100
	maxDescriptionLength = 2000
	minDurationMinutes   = 1
	maxDurationMinutes   = 24 * 60
)

// ValidateMovieRequest returns every broken rule for req, checked against
// today. An empty result means the candidate can be stored.
func ValidateMovieRequest(req *request.MovieRequest, today time.Time) []string {
	var v utils.Violations

	name := strings.TrimSpace(req.Name)
	if v.Check(name != "", "name is required") {
		v.CheckVar(name, fmt.Sprintf("max=%d", maxNameLength),
			fmt.Sprintf("name must be at most %d characters", maxNameLength))
		v.CheckVar(name, "singleline",
			"name must not contain NUL, carriage return or line feed characters")
	}

	v.CheckVar(strings.TrimSpace(req.Description), fmt.Sprintf("max=%d", maxDescriptionLength),
		fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))

	checkReleaseDate(&v, strings.TrimSpace(req.ReleaseDate), today)

	if v.CheckVar(req.Duration, fmt.Sprintf("min=%d", minDurationMinutes),
		fmt.Sprintf("duration must be at least %d minute", minDurationMinutes)) {
		v.CheckVar(req.Duration, fmt.Sprintf("max=%d", maxDurationMinutes),
			fmt.Sprintf("duration must not exceed %d minutes (24 hours)", maxDurationMinutes))
	}

	v.Check(!req.HasClientID, "id must not be supplied by the client; ids are assigned by the server")

	return v.Messages()
}

func checkReleaseDate(v *utils.Violations, raw string, today time.Time) {
	if !v.Check(raw != "", "releaseDate is required") {
		return
	}
	if !v.CheckVar(raw, "datetime="+releaseDateLayout, "releaseDate must be a valid date in YYYY-MM-DD format") {
		return
	}

	date, err := parseReleaseDate(raw)
	if !v.Check(err == nil, "releaseDate must be a valid date in YYYY-MM-DD format") {
		return
	}

	today = truncateToDate(today)
	v.Check(date.Year() >= minReleaseYear,
		fmt.Sprintf("releaseDate year must not be earlier than %d", minReleaseYear))
	v.Check(date.Year() <= today.Year()+1,
		fmt.Sprintf("releaseDate year must not be later than %d", today.Year()+1))
	v.Check(!date.After(today.AddDate(1, 0, 0)),
		"releaseDate must not be more than 1 year in the future")
}

func parseReleaseDate(raw string) (time.Time, error) {
	return time.Parse(releaseDateLayout, strings.TrimSpace(raw))
}

// truncateToDate drops the time of day, keeping the UTC calendar date of t.
func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
