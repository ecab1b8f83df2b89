package entity

import (
	"time"
)

// Movie is never mutated after it is stored. ReleaseDate is a calendar
// date held as midnight UTC.
type Movie struct {
	ID              int64
	Name            string
	Description     string
	ReleaseDate     time.Time
	DurationMinutes int
}

// ReleaseYear returns the calendar year of the release date.
func (m Movie) ReleaseYear() int {
	return m.ReleaseDate.Year()
}
