package catalog

const (
	queryLabel   = "Query parameter"
	movieIDLabel = "Movie ID"
	tvIDLabel    = "TV ID"
)

// Shared parameter definitions.

func pageParam() Param {
	return Param{Name: "page", Description: "Result page number", Default: "1"}
}

func queryParam(desc string) Param {
	return Param{Name: "query", Description: desc, Required: true, Label: queryLabel}
}

func movieIDParam() Param {
	return Param{Name: "movie_id", Description: "The TMDb ID of the movie", Required: true, Label: movieIDLabel, In: InPath}
}

func tvIDParam() Param {
	return Param{Name: "tv_id", Description: "The TMDb ID of the TV show", Required: true, Label: tvIDLabel, In: InPath}
}

func appendParam() Param {
	return Param{
		Name:        "append_to_response",
		Description: "Comma-separated sub-requests to append, e.g. credits,videos,images",
	}
}

func filtersParam(desc string) Param {
	return Param{Name: "params_json", Description: desc, Default: "{}", In: InFilters}
}

// Tools returns the full tool table in registration order.
func Tools() []Spec {
	return []Spec{
		{
			Name:        "search_movies",
			Description: "Search for movies by title. Returns raw JSON from TMDb /search/movie.",
			Params:      []Param{queryParam("Movie title to search for"), pageParam()},
			Path:        "/search/movie",
			LogArg:      "query",
		},
		{
			Name:        "search_tv",
			Description: "Search for TV shows by title. Returns raw JSON from TMDb /search/tv.",
			Params:      []Param{queryParam("TV show title to search for"), pageParam()},
			Path:        "/search/tv",
			LogArg:      "query",
		},
		{
			Name:        "search_multi",
			Description: "Search across movies, TV shows and people. Returns raw JSON from TMDb /search/multi.",
			Params:      []Param{queryParam("Text to search for"), pageParam()},
			Path:        "/search/multi",
			LogArg:      "query",
		},
		{
			Name:        "get_movie_details",
			Description: "Get detailed information about a movie. Returns raw JSON from TMDb /movie/{id}.",
			Params:      []Param{movieIDParam(), appendParam()},
			Path:        "/movie/{movie_id}",
			LogArg:      "movie_id",
		},
		{
			Name:        "get_tv_details",
			Description: "Get detailed information about a TV show. Returns raw JSON from TMDb /tv/{id}.",
			Params:      []Param{tvIDParam(), appendParam()},
			Path:        "/tv/{tv_id}",
			LogArg:      "tv_id",
		},
		{
			Name:        "get_top_rated_movies",
			Description: "Get top rated movies. Returns raw JSON from TMDb /movie/top_rated.",
			Params:      []Param{pageParam()},
			Path:        "/movie/top_rated",
			LogArg:      "page",
		},
		{
			Name:        "get_top_rated_tv",
			Description: "Get top rated TV shows. Returns raw JSON from TMDb /tv/top_rated.",
			Params:      []Param{pageParam()},
			Path:        "/tv/top_rated",
			LogArg:      "page",
		},
		{
			Name:        "get_popular_movies",
			Description: "Get popular movies. Returns raw JSON from TMDb /movie/popular.",
			Params:      []Param{pageParam()},
			Path:        "/movie/popular",
			LogArg:      "page",
		},
		{
			Name:        "get_popular_tv",
			Description: "Get popular TV shows. Returns raw JSON from TMDb /tv/popular.",
			Params:      []Param{pageParam()},
			Path:        "/tv/popular",
			LogArg:      "page",
		},
		{
			Name:        "get_trending",
			Description: "Get trending items. Returns raw JSON from TMDb /trending/{media_type}/{time_window}.",
			Params: []Param{
				{
					Name:        "media_type",
					Description: "One of movie, tv, all, person; anything else means all",
					Default:     "all",
					Allowed:     []string{"movie", "tv", "all", "person"},
					In:          InPath,
				},
				{
					Name:        "time_window",
					Description: "One of day, week; anything else means day",
					Default:     "day",
					Allowed:     []string{"day", "week"},
					In:          InPath,
				},
				pageParam(),
			},
			Path:   "/trending/{media_type}/{time_window}",
			LogArg: "media_type",
		},
		{
			Name:        "get_similar_movies",
			Description: "Get movies similar to a movie. Returns raw JSON from TMDb /movie/{id}/similar.",
			Params:      []Param{movieIDParam(), pageParam()},
			Path:        "/movie/{movie_id}/similar",
			LogArg:      "movie_id",
		},
		{
			Name:        "get_similar_tv",
			Description: "Get TV shows similar to a TV show. Returns raw JSON from TMDb /tv/{id}/similar.",
			Params:      []Param{tvIDParam(), pageParam()},
			Path:        "/tv/{tv_id}/similar",
			LogArg:      "tv_id",
		},
		{
			Name:        "get_genres",
			Description: "Get the list of genres. Returns raw JSON from TMDb /genre/{media_type}/list.",
			Params: []Param{
				{
					Name:        "media_type",
					Description: "One of movie, tv; anything else means movie",
					Default:     "movie",
					Allowed:     []string{"movie", "tv"},
					In:          InPath,
				},
			},
			Path:   "/genre/{media_type}/list",
			LogArg: "media_type",
		},
		{
			Name:        "get_movie_credits",
			Description: "Get cast and crew for a movie. Returns raw JSON from TMDb /movie/{id}/credits.",
			Params:      []Param{movieIDParam()},
			Path:        "/movie/{movie_id}/credits",
			LogArg:      "movie_id",
		},
		{
			Name:        "get_movie_reviews",
			Description: "Get reviews for a movie. Returns raw JSON from TMDb /movie/{id}/reviews.",
			Params:      []Param{movieIDParam(), pageParam()},
			Path:        "/movie/{movie_id}/reviews",
			LogArg:      "movie_id",
		},
		{
			Name:        "discover_movies",
			Description: "Discover movies with filters. Returns raw JSON from TMDb /discover/movie. Pass filters as a JSON object string.",
			Params:      []Param{filtersParam(`Filters as a JSON object, e.g. {"with_genres": "18", "sort_by": "popularity.desc"}`)},
			Path:        "/discover/movie",
			LogArg:      "params_json",
		},
		{
			Name:        "discover_tv",
			Description: "Discover TV shows with filters. Returns raw JSON from TMDb /discover/tv. Pass filters as a JSON object string.",
			Params:      []Param{filtersParam(`Filters as a JSON object, e.g. {"with_networks": "213", "first_air_date_year": "2020"}`)},
			Path:        "/discover/tv",
			LogArg:      "params_json",
		},
	}
}
