package rtr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoRouteMatches is returned when no registered route admits a path,
// or when no route can build a path for a set of params.
var ErrNoRouteMatches = errors.New("no route matches")

// NoRouteMatchesError carries what was being looked up when routing failed.
// It satisfies errors.Is(err, ErrNoRouteMatches).
type NoRouteMatchesError struct {
	Path   string            // set by Recognize
	Name   string            // set by URLFor
	Params map[string]string // set by Generate and URLFor
}

func (e *NoRouteMatchesError) Error() string {
	if e.Params == nil {
		return fmt.Sprintf("%s: %q", ErrNoRouteMatches, e.Path)
	}

	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+e.Params[k])
	}

	if e.Name != "" {
		return fmt.Sprintf("%s: route %q cannot generate {%s}", ErrNoRouteMatches, e.Name, strings.Join(pairs, ", "))
	}
	return fmt.Sprintf("%s: cannot generate {%s}", ErrNoRouteMatches, strings.Join(pairs, ", "))
}

func (e *NoRouteMatchesError) Is(target error) bool {
	return target == ErrNoRouteMatches
}
