package browse

// DiscoverQuery are the query parameters of the discover API.
type DiscoverQuery struct {
	Page   int    `query:"page" default:"1" validate:"min=1,max=500"`
	Genre  int    `query:"genre" validate:"min=0"`
	SortBy string `query:"sort_by" mod:"trim,lcase" default:"popularity.desc"`
}

// TrendingQuery are the query parameters of the trending API.
type TrendingQuery struct {
	Page int `query:"page" default:"1" validate:"min=1,max=500"`
}
