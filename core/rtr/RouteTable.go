package rtr

import (
	"fmt"
	"maps"
	"sync"

	"github.com/rohanthewiz/rdispatch/consts"
	"github.com/rohanthewiz/serr"
)

// RouteTable is an ordered set of routes.
// Recognition tries routes in registration order and the first match wins.
// Routes are meant to be registered at configuration time;
// after that the table is read only, although it is safe for concurrent use.
type RouteTable struct {
	mu      sync.RWMutex
	routes  []*Route
	dynamic []int // positions of routes with params, ascending
	static  *staticIndex
	named   map[string]*Route
}

// NewRouteTable creates an empty route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{
		static: newStaticIndex(),
		named:  make(map[string]*Route),
	}
}

// Connect compiles pattern and appends it to the table.
func (rt *RouteTable) Connect(pattern string, opts RouteOptions) (*Route, error) {
	route, err := Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	if err = rt.Add(route); err != nil {
		return nil, err
	}
	return route, nil
}

// MustConnect is like Connect but panics when the route cannot be registered.
func (rt *RouteTable) MustConnect(pattern string, opts RouteOptions) *Route {
	route, err := rt.Connect(pattern, opts)
	if err != nil {
		panic(fmt.Sprintf("cannot connect route %q: %s", pattern, err.Error()))
	}
	return route
}

// Name connects a route reachable by URLFor under name.
func (rt *RouteTable) Name(name string, pattern string, opts RouteOptions) (*Route, error) {
	if name == "" {
		return nil, serr.New("route name cannot be empty", "pattern", pattern)
	}
	opts.Name = name
	return rt.Connect(pattern, opts)
}

// Add appends an already compiled route.
func (rt *RouteTable) Add(route *Route) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if route.name != "" {
		if _, dup := rt.named[route.name]; dup {
			return serr.New("duplicate route name", "name", route.name, "pattern", route.pattern)
		}
		rt.named[route.name] = route
	}

	pos := len(rt.routes)
	rt.routes = append(rt.routes, route)

	if route.IsStatic() {
		rt.static.add(route.pattern, pos)
	} else {
		rt.dynamic = append(rt.dynamic, pos)
	}
	return nil
}

// Resources registers the conventional routes of each resource name.
// See ResourceRoutes for the set.
func (rt *RouteTable) Resources(names ...string) error {
	for _, name := range names {
		entries, err := ResourceRoutes(name)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, err = rt.Connect(e.Pattern, e.Options); err != nil {
				return serr.Wrap(err, "resource", name)
			}
		}
	}
	return nil
}

// ResourceRoute is one route of a resource set.
type ResourceRoute struct {
	Pattern string
	Options RouteOptions
}

// ResourceRoutes returns the conventional routes for a resource, in registration order:
//
//	users            -> users#index
//	users/new        -> users#build
//	users/:id/edit   -> users#edit
//	users/:id        -> users#show
//
// :id only admits digits.
func ResourceRoutes(name string) ([]ResourceRoute, error) {
	resource := normalizePath(name)
	if resource == "" {
		return nil, serr.New("resource name cannot be empty")
	}

	entry := func(pattern, action string, idOnly bool) ResourceRoute {
		opts := RouteOptions{Params: map[string]string{
			consts.ParamController: resource,
			consts.ParamAction:     action,
		}}
		if idOnly {
			opts.Conditions = map[string]string{consts.ParamID: "[0-9]+"}
		}
		return ResourceRoute{Pattern: pattern, Options: opts}
	}

	return []ResourceRoute{
		entry(resource, consts.ActionIndex, false),
		entry(resource+"/new", consts.ActionBuild, false),
		entry(resource+"/:id/edit", consts.ActionEdit, true),
		entry(resource+"/:id", consts.ActionShow, true),
	}, nil
}

// Recognize returns the dispatch config of the first route admitting path.
// When no route admits it the error is a *NoRouteMatchesError.
func (rt *RouteTable) Recognize(path string) (DispatchConfig, error) {
	route, cfg := rt.recognize(path)
	if route == nil {
		return nil, &NoRouteMatchesError{Path: path}
	}
	return cfg, nil
}

// RecognizeRoute is like Recognize but also returns the matching route.
func (rt *RouteTable) RecognizeRoute(path string) (*Route, DispatchConfig, error) {
	route, cfg := rt.recognize(path)
	if route == nil {
		return nil, nil, &NoRouteMatchesError{Path: path}
	}
	return route, cfg, nil
}

func (rt *RouteTable) recognize(path string) (*Route, DispatchConfig) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	// A literal route can only lose to a param route registered before it
	limit := len(rt.routes)
	staticPos, hasStatic := rt.static.lookup(path)
	if hasStatic {
		limit = staticPos
	}

	for _, pos := range rt.dynamic {
		if pos >= limit {
			break
		}
		route := rt.routes[pos]
		if cfg, ok := route.Config(path); ok {
			return route, cfg
		}
	}

	if hasStatic {
		route := rt.routes[staticPos]
		cfg, _ := route.Config(path)
		return route, cfg
	}
	return nil, nil
}

// Generate returns the path of the first route able to represent params exactly.
func (rt *RouteTable) Generate(params map[string]string) (string, error) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	for _, route := range rt.routes {
		if path, ok := route.Generate(params); ok {
			return path, nil
		}
	}
	return "", &NoRouteMatchesError{Params: maps.Clone(nonNil(params))}
}

// URLFor builds a path with the named route.
// The route's static params are filled in, so callers only supply segment values.
func (rt *RouteTable) URLFor(name string, params map[string]string) (string, error) {
	rt.mu.RLock()
	route, ok := rt.named[name]
	rt.mu.RUnlock()

	if !ok {
		return "", serr.New("no route with that name", "name", name)
	}

	full := make(map[string]string, len(route.params)+len(params))
	maps.Copy(full, route.params)
	maps.Copy(full, params)

	path, ok := route.Generate(full)
	if !ok {
		return "", &NoRouteMatchesError{Name: name, Params: maps.Clone(nonNil(params))}
	}
	return path, nil
}

// Lookup returns the named route.
func (rt *RouteTable) Lookup(name string) (*Route, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	route, ok := rt.named[name]
	return route, ok
}

// Routes lists the registered routes in match order.
func (rt *RouteTable) Routes() (routes []RouteList) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	for i, route := range rt.routes {
		routes = append(routes, RouteList{
			Index:      i,
			Name:       route.name,
			Pattern:    route.pattern,
			Conditions: route.Conditions(),
			Params:     route.Params(),
		})
	}
	return
}

// Len returns the number of registered routes.
func (rt *RouteTable) Len() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.routes)
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
