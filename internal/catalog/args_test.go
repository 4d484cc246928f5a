package catalog

import (
	"reflect"
	"testing"
)

func mustSpec(t *testing.T, name string) Spec {
	t.Helper()
	for _, s := range Tools() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("tool %q not found", name)
	return Spec{}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		tool   string
		tokens []string
		want   Args
	}{
		{"free text", "search_movies", []string{"the", "dark", "knight"}, Args{"query": "the dark knight"}},
		{"free text and page", "search_movies", []string{"dune", "page=2"}, Args{"query": "dune", "page": "2"}},
		{"explicit query wins", "search_movies", []string{"query=dune", "ignored"}, Args{"query": "dune"}},
		{"undeclared key is text", "search_movies", []string{"a=b"}, Args{"query": "a=b"}},
		{"enum keys", "get_trending", []string{"media_type=tv", "time_window=week"}, Args{"media_type": "tv", "time_window": "week"}},
		{"positional first param", "get_movie_details", []string{"550", "append_to_response=credits"}, Args{"movie_id": "550", "append_to_response": "credits"}},
		{"json filters", "discover_movies", []string{`{"with_genres":"18","x":"a=b"}`}, Args{"params_json": `{"with_genres":"18","x":"a=b"}`}},
		{"empty value", "search_movies", []string{"dune", "page="}, Args{"query": "dune", "page": ""}},
		{"no tokens", "get_popular_movies", nil, Args{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseArgs(mustSpec(t, tt.tool), tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"search_movies":      "<query> [page=1]",
		"get_trending":       "[media_type=all] [time_window=day] [page=1]",
		"get_popular_movies": "[page=1]",
		"get_movie_details":  "<movie_id> [append_to_response=]",
	}
	for tool, want := range tests {
		if got := Usage(mustSpec(t, tool)); got != want {
			t.Errorf("Usage(%s) = %q, want %q", tool, got, want)
		}
	}
}
