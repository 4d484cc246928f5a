package catalog

import "strings"

// ParseArgs maps command-line style tokens onto a tool's parameters.
// A "key=value" token whose key is a declared parameter sets that parameter;
// every other token is joined with single spaces into the first parameter.
func ParseArgs(spec Spec, tokens []string) Args {
	args := Args{}
	var free []string
	for _, tok := range tokens {
		if key, val, ok := strings.Cut(tok, "="); ok {
			if _, declared := spec.Param(key); declared {
				args[key] = val
				continue
			}
		}
		free = append(free, tok)
	}

	if len(free) > 0 && len(spec.Params) > 0 {
		first := spec.Params[0].Name
		if _, set := args[first]; !set {
			args[first] = strings.Join(free, " ")
		}
	}
	return args
}

// Usage renders a one-line synopsis of the tool's parameters,
// e.g. "<query> [page=1]".
func Usage(spec Spec) string {
	parts := make([]string, 0, len(spec.Params))
	for _, p := range spec.Params {
		if p.Required {
			parts = append(parts, "<"+p.Name+">")
			continue
		}
		parts = append(parts, "["+p.Name+"="+p.Default+"]")
	}
	return strings.Join(parts, " ")
}
