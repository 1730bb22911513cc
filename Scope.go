package rdispatch

import (
	"maps"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rdispatch/core/rtr"
	"github.com/rohanthewiz/serr"
)

// Scope registers routes under a common path prefix with shared static params.
// For example d.Scope("admin", map[string]string{"layout": "admin"}) makes
// Connect(":controller/:action") register "admin/:controller/:action",
// and every match of it carries layout=admin.
// Scopes can be nested.
type Scope struct {
	// prefix is joined in front of every pattern of the scope
	prefix string
	// params are merged under each route's own static params
	params     map[string]string
	dispatcher *Dispatcher
}

// Scope creates a top level scope.
func (d *Dispatcher) Scope(prefix string, params map[string]string) *Scope {
	return &Scope{
		prefix:     strings.Trim(prefix, "/"),
		params:     maps.Clone(params),
		dispatcher: d,
	}
}

// Scope creates a nested scope. It inherits the parent prefix and params;
// its own params win on conflict.
func (s *Scope) Scope(prefix string, params map[string]string) *Scope {
	merged := make(map[string]string, len(s.params)+len(params))
	maps.Copy(merged, s.params)
	maps.Copy(merged, params)

	return &Scope{
		prefix:     joinPattern(s.prefix, prefix),
		params:     merged,
		dispatcher: s.dispatcher,
	}
}

// Prefix returns the joined path prefix of the scope.
func (s *Scope) Prefix() string {
	return s.prefix
}

// Connect registers pattern under the scope.
func (s *Scope) Connect(pattern string, opts rtr.RouteOptions) (*rtr.Route, error) {
	full := joinPattern(s.prefix, pattern)

	params := make(map[string]string, len(s.params)+len(opts.Params))
	maps.Copy(params, s.params)
	maps.Copy(params, opts.Params)
	opts.Params = params

	route, err := s.dispatcher.routes.Connect(full, opts)
	if err != nil {
		return nil, err
	}

	if s.dispatcher.opts.Verbose {
		logger.Info("Connected route", "pattern", full, "name", opts.Name)
	}
	return route, nil
}

// MustConnect is like Connect but panics on a bad pattern.
func (s *Scope) MustConnect(pattern string, opts rtr.RouteOptions) *rtr.Route {
	route, err := s.Connect(pattern, opts)
	if err != nil {
		panic(err.Error())
	}
	return route
}

// Name registers a named route under the scope.
func (s *Scope) Name(name string, pattern string, opts rtr.RouteOptions) (*rtr.Route, error) {
	if name == "" {
		return nil, serr.New("route name cannot be empty", "pattern", pattern)
	}
	opts.Name = name
	return s.Connect(pattern, opts)
}

// Resources registers the conventional resource routes under the scope.
// The controller param stays the bare resource name.
func (s *Scope) Resources(names ...string) error {
	for _, name := range names {
		entries, err := rtr.ResourceRoutes(name)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, err = s.Connect(e.Pattern, e.Options); err != nil {
				return serr.Wrap(err, "resource", name, "prefix", s.prefix)
			}
		}
	}
	return nil
}

// joinPattern puts prefix in front of pattern with a single slash between them.
// Inner segments are left as written, empty ones included.
func joinPattern(prefix, pattern string) string {
	prefix = strings.Trim(prefix, "/")
	pattern = strings.Trim(pattern, "/")
	switch {
	case prefix == "":
		return pattern
	case pattern == "":
		return prefix
	}
	return prefix + "/" + pattern
}
