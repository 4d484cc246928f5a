// Package catalog holds the TMDb tool table and the dispatcher that turns
// string arguments into one upstream request per call.
package catalog

import (
	"net/url"
	"slices"
	"strings"
)

// Location says where a parameter ends up in the upstream request.
type Location int

const (
	InQuery   Location = iota // query string, omitted when empty
	InPath                    // substituted into the path template
	InFilters                 // JSON object expanded into query values
)

// Param describes one string argument of a tool.
type Param struct {
	Name        string
	Description string
	Default     string
	Required    bool
	// Allowed restricts the value; anything else is replaced by Default.
	Allowed []string
	// Label names the field in the "<Label> is required" message.
	Label string
	In    Location
}

// Spec describes one tool: its arguments and how they map onto a TMDb endpoint.
type Spec struct {
	Name        string
	Description string
	Params      []Param
	// Path is the endpoint template; "{name}" is replaced by the InPath param of that name.
	Path string
	// LogArg is the argument recorded in the per-call log line.
	LogArg string
}

// Args are the trimmed string arguments of a call, keyed by param name.
type Args map[string]string

// Param returns the parameter with the given name.
func (s Spec) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// normalize trims raw arguments, applies defaults to absent ones and
// replaces out-of-set enum values. Unknown keys are dropped.
func (s Spec) normalize(raw Args) Args {
	args := make(Args, len(s.Params))
	for _, p := range s.Params {
		v, ok := raw[p.Name]
		if !ok {
			v = p.Default
		}
		v = strings.TrimSpace(v)
		if len(p.Allowed) > 0 && !slices.Contains(p.Allowed, v) {
			v = p.Default
		}
		args[p.Name] = v
	}
	return args
}

// missing returns the first required parameter with an empty value.
func (s Spec) missing(args Args) (Param, bool) {
	for _, p := range s.Params {
		if p.Required && args[p.Name] == "" {
			return p, true
		}
	}
	return Param{}, false
}

// BuildPath substitutes path parameters into the endpoint template.
func (s Spec) BuildPath(args Args) string {
	path := s.Path
	for _, p := range s.Params {
		if p.In != InPath {
			continue
		}
		path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(args[p.Name]))
	}
	return path
}

// BuildQuery collects non-empty query parameters and expands filter objects.
func (s Spec) BuildQuery(args Args) (url.Values, error) {
	q := url.Values{}
	for _, p := range s.Params {
		v := args[p.Name]
		switch p.In {
		case InQuery:
			if v != "" {
				q.Set(p.Name, v)
			}
		case InFilters:
			if err := decodeFilters(v, q); err != nil {
				return nil, err
			}
		}
	}
	return q, nil
}
