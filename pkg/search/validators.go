package search

import "github.com/marqueehq/marquee/pkg/models"

// SearchQuery represents the query parameters of the search API.
type SearchQuery struct {
	Query string `query:"q" json:"q" mod:"trim" validate:"required,max=100"`
}

// Results are the titles matching a query, by kind.
type Results struct {
	Query  string                `json:"query"`
	Movies []models.MediaSummary `json:"movies"`
	Shows  []models.MediaSummary `json:"tv"`
}

// Of returns the results of kind.
func (r *Results) Of(kind models.MediaType) []models.MediaSummary {
	if kind == models.MediaTypeTV {
		return r.Shows
	}
	return r.Movies
}
