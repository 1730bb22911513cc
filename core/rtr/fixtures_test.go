package rtr_test

import (
	"bufio"
	"os"
	"strings"
)

// fixtureRoute represents a single line in a route fixture file:
//
//	pattern [segment=condition ...]
type fixtureRoute struct {
	Pattern    string
	Conditions map[string]string
}

// loadFixture loads all routes from a fixture file, skipping blanks and # comments.
func loadFixture(fileName string) []fixtureRoute {
	file, err := os.Open(fileName)
	if err != nil {
		return nil
	}
	defer file.Close()

	var routes []fixtureRoute
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		route := fixtureRoute{Pattern: fields[0]}

		for _, f := range fields[1:] {
			name, cond, ok := strings.Cut(f, "=")
			if !ok {
				continue
			}
			if route.Conditions == nil {
				route.Conditions = make(map[string]string)
			}
			route.Conditions[name] = cond
		}
		routes = append(routes, route)
	}

	return routes
}
