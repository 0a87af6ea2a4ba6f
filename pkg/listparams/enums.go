package listparams

import "github.com/marqueehq/marquee/pkg/models"

type SortKey string

const (
	SortPopularity   SortKey = "popularity.desc"
	SortRating       SortKey = "vote_average.desc"
	SortReleaseDate  SortKey = "release_date.desc"
	SortFirstAirDate SortKey = "first_air_date.desc"
)

type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// Option is one entry of a filter select.
type Option struct {
	Value string
	Label string
}

var movieSorts = []Option{
	{string(SortPopularity), "Most Popular"},
	{string(SortRating), "Highest Rated"},
	{string(SortReleaseDate), "Newest First"},
}

var tvSorts = []Option{
	{string(SortPopularity), "Most Popular"},
	{string(SortRating), "Highest Rated"},
	{string(SortFirstAirDate), "Newest First"},
}

var movieGenres = []models.Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Family"},
	{ID: 14, Name: "Fantasy"},
	{ID: 36, Name: "History"},
	{ID: 27, Name: "Horror"},
	{ID: 10402, Name: "Music"},
	{ID: 9648, Name: "Mystery"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 10770, Name: "TV Movie"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "War"},
	{ID: 37, Name: "Western"},
}

var tvGenres = []models.Genre{
	{ID: 10759, Name: "Action & Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Family"},
	{ID: 10762, Name: "Kids"},
	{ID: 9648, Name: "Mystery"},
	{ID: 10763, Name: "News"},
	{ID: 10764, Name: "Reality"},
	{ID: 10765, Name: "Sci-Fi & Fantasy"},
	{ID: 10766, Name: "Soap"},
	{ID: 10767, Name: "Talk"},
	{ID: 10768, Name: "War & Politics"},
	{ID: 37, Name: "Western"},
}

var trendingMediaTypes = []Option{
	{string(models.MediaTypeAll), "All"},
	{string(models.MediaTypeMovie), "Movies"},
	{string(models.MediaTypeTV), "TV Shows"},
	{string(models.MediaTypePerson), "People"},
}

var timeWindows = []Option{
	{string(TimeWindowDay), "Today"},
	{string(TimeWindowWeek), "This Week"},
}

// Genres returns the recognized genres for movie or tv.
func Genres(kind models.MediaType) []models.Genre {
	if kind == models.MediaTypeTV {
		return tvGenres
	}
	return movieGenres
}

// SortOptions returns the recognized sort keys for movie or tv.
func SortOptions(kind models.MediaType) []Option {
	if kind == models.MediaTypeTV {
		return tvSorts
	}
	return movieSorts
}

func MediaTypeOptions() []Option { return trendingMediaTypes }

func TimeWindowOptions() []Option { return timeWindows }

func validGenre(kind models.MediaType, id int) bool {
	for _, g := range Genres(kind) {
		if g.ID == id {
			return true
		}
	}
	return false
}

func validOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
