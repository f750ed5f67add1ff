package rapidmock

import (
	"fmt"
	"strings"
)

// Movie is a catalog item as returned by the "all" endpoint. The catalog
// payload spells the description key "Description" while the detail payload
// uses "description"; encoding/json matches both onto the same field.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterURL   string `json:"poster_url"`
	Type        string `json:"type"`
}

// MovieDetails is a single catalog item fetched by id.
type MovieDetails struct {
	Movie
	Rating      float64  `json:"rating"`
	ReleaseDate string   `json:"release_date"`
	Genre       []string `json:"genre"`
}

// ListEntry is one movie inside a my-list bucket.
type ListEntry struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url"`
	Type      string `json:"type,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// MyList is the user's list record. Either bucket may be missing from the
// payload; Client.GetMyList normalizes missing buckets to empty slices.
type MyList struct {
	Watched []ListEntry `json:"Watched"`
	ToWatch []ListEntry `json:"To Watch"`
}

// Status tags a movie in the user's list.
type Status string

const (
	StatusWatched Status = "Watched"
	StatusToWatch Status = "To Watch"
)

// Statuses lists the accepted values in display order.
func Statuses() []Status {
	return []Status{StatusWatched, StatusToWatch}
}

func (s Status) Valid() bool {
	return s == StatusWatched || s == StatusToWatch
}

// ParseStatus accepts the wire values case-insensitively plus the
// "to-watch"/"towatch" spellings that are easier to type in a shell.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "watched":
		return StatusWatched, nil
	case "to watch", "to-watch", "to_watch", "towatch":
		return StatusToWatch, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}
