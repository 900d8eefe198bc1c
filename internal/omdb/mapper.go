package omdb

import "marquee/internal/domain"

// naSentinel is the literal the upstream API uses for absent fields.
const naSentinel = "N/A"

// orDefault rewrites the "N/A" sentinel to a replacement value.
// Any other value, including empty, passes through untouched.
func orDefault(value, replacement string) string {
	if value == naSentinel {
		return replacement
	}
	return value
}

// mapItem converts one raw search entry into a normalized CatalogItem.
func mapItem(raw rawItem) *domain.CatalogItem {
	return &domain.CatalogItem{
		ID:     raw.ImdbID,
		Title:  raw.Title,
		Year:   orDefault(raw.Year, domain.UnknownYear),
		Type:   domain.MediaType(raw.Type),
		Poster: orDefault(raw.Poster, domain.PosterPlaceholder),
		Rating: domain.NotRated, // Search entries carry no rating
	}
}

// mapDetail converts a detail response into a fully populated item.
func mapDetail(raw detailResponse) *domain.CatalogItem {
	item := &domain.CatalogItem{
		ID:        raw.ImdbID,
		Title:     raw.Title,
		Year:      orDefault(raw.Year, domain.UnknownYear),
		Type:      domain.MediaType(raw.Type),
		Poster:    orDefault(raw.Poster, domain.PosterPlaceholder),
		Rating:    orDefault(raw.ImdbRating, domain.NotRated),
		Plot:      orDefault(raw.Plot, domain.NoPlot),
		Runtime:   raw.Runtime,
		Genre:     raw.Genre,
		Director:  raw.Director,
		Writer:    raw.Writer,
		Actors:    raw.Actors,
		Released:  raw.Released,
		Language:  raw.Language,
		Country:   raw.Country,
		Awards:    raw.Awards,
		BoxOffice: raw.BoxOffice,
		Votes:     raw.ImdbVotes,
	}
	for _, r := range raw.Ratings {
		item.Ratings = append(item.Ratings, domain.SourceRating{
			Source: r.Source,
			Value:  r.Value,
		})
	}
	return item
}
