package rtr

// Parameter is a named value extracted from a path segment.
// Routes return them in the order the names appear in the pattern.
//
// Example:
//
//	Pattern: :controller/:action/:id
//	Path:    users/edit/1,2,3
//	Result:  []Parameter{{"controller", "users"}, {"action", "edit"}, {"id", "1,2,3"}}
type Parameter struct {
	Key   string
	Value string
}
