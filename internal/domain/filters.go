package domain

// SortOption selects the client-side ordering applied to search
// results after fetch. The upstream API has no native sort.
type SortOption string

const (
	SortRelevance SortOption = "relevance" // Upstream order, no reordering
	SortYearDesc  SortOption = "year_desc"
	SortYearAsc   SortOption = "year_asc"
	SortTitle     SortOption = "title"
)

// Filters narrows and orders search results. Zero values mean "no
// restriction".
type Filters struct {
	Type   MediaType  `json:"type,omitempty"` // "" = all types
	Year   string     `json:"year,omitempty"` // "" = any year
	SortBy SortOption `json:"sortBy,omitempty"`
}

// FilterPatch is a partial filter update. Nil fields leave the
// current value unchanged (shallow merge).
type FilterPatch struct {
	Type   *MediaType
	Year   *string
	SortBy *SortOption
}

// Apply merges the patch into f, returning the merged filter set.
func (p FilterPatch) Apply(f Filters) Filters {
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Year != nil {
		f.Year = *p.Year
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	return f
}
