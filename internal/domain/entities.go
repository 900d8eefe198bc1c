package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder values substituted by the catalog client when the
// upstream API reports a field as "N/A".
const (
	PosterPlaceholder = "marquee://placeholder/poster"
	UnknownYear       = "Unknown"
	NotRated          = "Not rated"
	NoPlot            = "No plot available."
)

// MediaType distinguishes content types
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

// String returns a human-readable representation of the media type
func (t MediaType) String() string {
	switch t {
	case MediaTypeMovie:
		return "Movie"
	case MediaTypeSeries:
		return "Series"
	default:
		return "Unknown"
	}
}

// SourceRating is a rating from a single review source
// (e.g. "Internet Movie Database", "Rotten Tomatoes").
type SourceRating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// CatalogItem is a normalized movie or show record. Search results
// carry only the summary fields; the detail fields are populated when
// the item is fetched through a details query. Items are never
// mutated after construction.
type CatalogItem struct {
	ID     string    `json:"id"`     // Upstream identifier (unique per title+cut)
	Title  string    `json:"title"`  // Display title
	Year   string    `json:"year"`   // Release year, "Unknown" when absent
	Type   MediaType `json:"type"`   // Movie or series
	Poster string    `json:"poster"` // Poster URL or PosterPlaceholder
	Rating string    `json:"rating"` // Aggregate rating, "Not rated" when absent

	// Detail fields (empty until fetched via GetDetails)
	Plot      string         `json:"plot,omitempty"`
	Runtime   string         `json:"runtime,omitempty"`
	Genre     string         `json:"genre,omitempty"`
	Director  string         `json:"director,omitempty"`
	Writer    string         `json:"writer,omitempty"`
	Actors    string         `json:"actors,omitempty"`
	Released  string         `json:"released,omitempty"`
	Language  string         `json:"language,omitempty"`
	Country   string         `json:"country,omitempty"`
	Awards    string         `json:"awards,omitempty"`
	BoxOffice string         `json:"boxOffice,omitempty"`
	Votes     string         `json:"votes,omitempty"`
	Ratings   []SourceRating `json:"ratings,omitempty"`
}

// HasPoster returns true if the item carries a real poster URL rather
// than the placeholder.
func (c *CatalogItem) HasPoster() bool {
	return c.Poster != "" && c.Poster != PosterPlaceholder
}

// NumericYear parses the release year. Series ranges like "2019–2023"
// resolve to the first year. ok is false for "Unknown" and other
// non-numeric values.
func (c *CatalogItem) NumericYear() (int, bool) {
	year := c.Year
	if idx := strings.IndexAny(year, "–-"); idx > 0 {
		year = year[:idx]
	}
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormattedRuntime converts the upstream runtime ("136 min") into a
// compact form ("2h 16m"). Values that don't parse pass through.
func (c *CatalogItem) FormattedRuntime() string {
	if c.Runtime == "" {
		return "Unknown"
	}
	mins, err := strconv.Atoi(strings.TrimSuffix(c.Runtime, " min"))
	if err != nil {
		return c.Runtime
	}
	h := mins / 60
	m := mins % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Description returns secondary info for list display.
func (c *CatalogItem) Description() string {
	if c.Year != "" && c.Year != UnknownYear {
		return fmt.Sprintf("%s · %s", c.Year, c.Type)
	}
	return c.Type.String()
}

// SearchPage is one batch of search results. The page object itself
// is transient; only its items move into application state.
type SearchPage struct {
	Items        []*CatalogItem
	TotalResults int
	Page         int
}
