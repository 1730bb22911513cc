package rtr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rdispatch/core/rtr"
)

func TestCompileSegments(t *testing.T) {
	route := rtr.MustCompile(":controller/:action/:id", rtr.RouteOptions{})
	assert.Equal(t, route.Pattern(), ":controller/:action/:id")
	assert.DeepEqual(t, route.Segments(), []string{"controller", "action", "id"})
	assert.False(t, route.IsStatic())

	static := rtr.MustCompile("/session/new/", rtr.RouteOptions{})
	assert.True(t, static.IsStatic())
	assert.Equal(t, len(static.Segments()), 0)
}

func TestMatchExtractsInOrder(t *testing.T) {
	route := rtr.MustCompile(":controller/:action/:id", rtr.RouteOptions{})

	params, ok := route.Match("cont/act/100")
	assert.True(t, ok)
	assert.Equal(t, len(params), 3)
	assert.Equal(t, params[0], rtr.Parameter{Key: "controller", Value: "cont"})
	assert.Equal(t, params[1], rtr.Parameter{Key: "action", Value: "act"})
	assert.Equal(t, params[2], rtr.Parameter{Key: "id", Value: "100"})
}

func TestMatchCommaJoinedIDs(t *testing.T) {
	route := rtr.MustCompile(":controller/:action/:id", rtr.RouteOptions{})

	params, ok := route.Match("users/destroy/1,2,3")
	assert.True(t, ok)
	assert.Equal(t, params[2].Value, "1,2,3")
}

func TestMatchShape(t *testing.T) {
	route := rtr.MustCompile("admin/:controller/:action", rtr.RouteOptions{})

	_, ok := route.Match("admin/users/index")
	assert.True(t, ok)

	// Slashes at either end and a history hash are not significant
	_, ok = route.Match("#/admin/users/index/")
	assert.True(t, ok)

	noMatch := []string{
		"",
		"admin",
		"admin/users",
		"admin/users/index/1",
		"public/users/index",
		"admin//index",
		"admin/us-ers/index",
		"admin/users/in.dex",
	}

	for _, path := range noMatch {
		_, ok = route.Match(path)
		assert.False(t, ok)
	}
}

func TestMatchLiteralWithinSegment(t *testing.T) {
	route := rtr.MustCompile("posts/:id.json", rtr.RouteOptions{})

	params, ok := route.Match("posts/42.json")
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "42")

	_, ok = route.Match("posts/42.xml")
	assert.False(t, ok)

	_, ok = route.Match("posts/42")
	assert.False(t, ok)
}

func TestConditions(t *testing.T) {
	route := rtr.MustCompile(":controller/:action/:id", rtr.RouteOptions{
		Conditions: map[string]string{":id": "[0-9]+"},
	})

	_, ok := route.Match("cont/act/notanumber")
	assert.False(t, ok)

	params, ok := route.Match("cont/act/100")
	assert.True(t, ok)
	assert.Equal(t, params[2].Value, "100")

	// The condition is anchored to the whole segment
	_, ok = route.Match("cont/act/100abc")
	assert.False(t, ok)

	// Keys without the colon work the same
	bare := rtr.MustCompile("reports/:year", rtr.RouteOptions{
		Conditions: map[string]string{"year": "[0-9]{4}|current"},
	})
	_, ok = bare.Match("reports/2024")
	assert.True(t, ok)
	_, ok = bare.Match("reports/current")
	assert.True(t, ok)
	_, ok = bare.Match("reports/24")
	assert.False(t, ok)

	assert.Equal(t, bare.Conditions()["year"], "[0-9]{4}|current")
}

func TestConditionCanWidenDefault(t *testing.T) {
	route := rtr.MustCompile("files/:name", rtr.RouteOptions{
		Conditions: map[string]string{":name": `[a-z]+\.[a-z]+`},
	})

	params, ok := route.Match("files/report.pdf")
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "report.pdf")
}

func TestCompileErrors(t *testing.T) {
	bad := []struct {
		pattern string
		opts    rtr.RouteOptions
	}{
		{":controller/:", rtr.RouteOptions{}},
		{":id/:id", rtr.RouteOptions{}},
		{":controller/:id", rtr.RouteOptions{Conditions: map[string]string{":id": "[0-9"}}},
		{":controller/:id", rtr.RouteOptions{Conditions: map[string]string{":missing": "[0-9]+"}}},
		{":controller", rtr.RouteOptions{Conditions: map[string]string{":": "x"}}},
		{":id", rtr.RouteOptions{Conditions: map[string]string{"id": "[0-9]+", ":id": "[a-z]+"}}},
	}

	for _, b := range bad {
		route, err := rtr.Compile(b.pattern, b.opts)
		assert.True(t, err != nil)
		assert.True(t, route == nil)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil)
	}()

	rtr.MustCompile(":a/:a", rtr.RouteOptions{})
	t.Fatal("expected a panic for a duplicate parameter name")
}

func TestConfigMergesStaticParams(t *testing.T) {
	route := rtr.MustCompile("admin/:controller/:action", rtr.RouteOptions{
		Params: map[string]string{"layout": "admin", "action": "index"},
	})

	cfg, ok := route.Config("admin/users/edit")
	assert.True(t, ok)

	want := rtr.DispatchConfig{"controller": "users", "action": "edit", "layout": "admin"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate(t *testing.T) {
	route := rtr.MustCompile(":controller/:action/:id", rtr.RouteOptions{
		Conditions: map[string]string{":id": "[0-9,]+"},
	})

	path, ok := route.Generate(map[string]string{"controller": "users", "action": "edit", "id": "1,2"})
	assert.True(t, ok)
	assert.Equal(t, path, "users/edit/1,2")

	// Round trip
	params, ok := route.Match(path)
	assert.True(t, ok)
	assert.Equal(t, params[2].Value, "1,2")

	failing := []map[string]string{
		{"controller": "users", "action": "edit"},
		{"controller": "users", "action": "edit", "id": "abc"},
		{"controller": "users", "action": "edit", "id": "1", "format": "json"},
		{"controller": "users", "action": "", "id": "1"},
		{"controller": "us/ers", "action": "edit", "id": "1"},
	}
	for _, params := range failing {
		_, ok = route.Generate(params)
		assert.False(t, ok)
	}
}

func TestGenerateStaticParams(t *testing.T) {
	route := rtr.MustCompile("login", rtr.RouteOptions{
		Params: map[string]string{"controller": "sessions", "action": "build"},
	})

	path, ok := route.Generate(map[string]string{"controller": "sessions", "action": "build"})
	assert.True(t, ok)
	assert.Equal(t, path, "login")

	_, ok = route.Generate(map[string]string{"controller": "sessions"})
	assert.False(t, ok)

	_, ok = route.Generate(map[string]string{"controller": "sessions", "action": "destroy"})
	assert.False(t, ok)
}

func TestGenerateLiteralWithinSegment(t *testing.T) {
	route := rtr.MustCompile("posts/:id.json", rtr.RouteOptions{})

	path, ok := route.Generate(map[string]string{"id": "7"})
	assert.True(t, ok)
	assert.Equal(t, path, "posts/7.json")
}

func TestGenerateKeepsSegmentShape(t *testing.T) {
	rt := rtr.NewRouteTable()
	rt.MustConnect("files/:name", rtr.RouteOptions{Conditions: map[string]string{":name": ".+"}})
	rt.MustConnect(":section/show", rtr.RouteOptions{Conditions: map[string]string{":section": ".+"}})

	path, err := rt.Generate(map[string]string{"name": "a.txt"})
	assert.Nil(t, err)
	assert.Equal(t, path, "files/a.txt")

	cfg, err := rt.Recognize(path)
	assert.Nil(t, err)
	assert.Equal(t, cfg["name"], "a.txt")

	// A value spanning segments or a leading hash would not read back
	failing := []map[string]string{
		{"name": "a/b"},
		{"section": "#top"},
		{"section": "a/b"},
	}
	for _, params := range failing {
		_, err = rt.Generate(params)
		assert.True(t, err != nil)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	route := rtr.MustCompile("admin/:controller", rtr.RouteOptions{
		Name:   "admin",
		Params: map[string]string{"layout": "admin"},
	})
	assert.Equal(t, route.Name(), "admin")
	assert.Equal(t, route.String(), "admin/:controller")

	route.Params()["layout"] = "changed"
	route.Segments()[0] = "changed"

	assert.Equal(t, route.Params()["layout"], "admin")
	assert.Equal(t, route.Segments()[0], "controller")
}
