package rdispatch

import (
	"io"
	"os"
	"strconv"

	"github.com/rohanthewiz/rdispatch/core/rtr"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// RouteConfig is a declarative route table, usually read from YAML:
//
//	resources: [users, posts]
//	scopes:
//	  - prefix: admin
//	    params: {layout: admin}
//	    resources: [reports]
//	routes:
//	  - name: login
//	    pattern: session/new
//	    params: {controller: sessions, action: build}
//	  - pattern: ":controller/:action/:id"
//	    conditions: {":id": "[0-9,]+"}
//
// Apply registers scopes first, then top level resources, then routes,
// each in file order.
type RouteConfig struct {
	Resources []string      `yaml:"resources"`
	Scopes    []ScopeConfig `yaml:"scopes"`
	Routes    []RouteEntry  `yaml:"routes"`
}

// ScopeConfig declares routes under a prefix.
type ScopeConfig struct {
	Prefix    string            `yaml:"prefix"`
	Params    map[string]string `yaml:"params"`
	Resources []string          `yaml:"resources"`
	Routes    []RouteEntry      `yaml:"routes"`
}

// RouteEntry declares a single route.
type RouteEntry struct {
	Name       string            `yaml:"name"`
	Pattern    string            `yaml:"pattern"`
	Conditions map[string]string `yaml:"conditions"`
	Params     map[string]string `yaml:"params"`
}

func (re RouteEntry) options() rtr.RouteOptions {
	return rtr.RouteOptions{Name: re.Name, Conditions: re.Conditions, Params: re.Params}
}

// LoadRoutes decodes a route config from r.
func LoadRoutes(r io.Reader) (*RouteConfig, error) {
	var cfg RouteConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &cfg, nil
		}
		return nil, serr.Wrap(err, "cannot decode route config")
	}
	return &cfg, nil
}

// LoadRoutesFile reads a route config from a YAML file.
func LoadRoutesFile(fileName string) (*RouteConfig, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, serr.Wrap(err, "cannot open route config", "file", fileName)
	}
	defer f.Close()

	cfg, err := LoadRoutes(f)
	if err != nil {
		return nil, serr.Wrap(err, "file", fileName)
	}
	return cfg, nil
}

// Apply registers the config's routes with d.
func (rc *RouteConfig) Apply(d *Dispatcher) error {
	for _, sc := range rc.Scopes {
		if err := applyEntries(d.Scope(sc.Prefix, sc.Params), sc.Resources, sc.Routes); err != nil {
			return err
		}
	}
	return applyEntries(d.Scope("", nil), rc.Resources, rc.Routes)
}

func applyEntries(scope *Scope, resources []string, routes []RouteEntry) error {
	if err := scope.Resources(resources...); err != nil {
		return err
	}

	for i, entry := range routes {
		if _, err := scope.Connect(entry.Pattern, entry.options()); err != nil {
			return serr.Wrap(err, "route entry", entry.Pattern, "prefix", scope.Prefix(), "index", strconv.Itoa(i))
		}
	}
	return nil
}
