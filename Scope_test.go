package rdispatch_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rdispatch"
	"github.com/rohanthewiz/rdispatch/core/rtr"
)

func TestScope(t *testing.T) {
	d := rdispatch.NewDispatcher()

	admin := d.Scope("admin", map[string]string{"layout": "admin"})
	admin.MustConnect(":controller/:action", rtr.RouteOptions{})

	cfg, err := d.Routes().Recognize("admin/users/index")
	assert.Nil(t, err)
	want := rtr.DispatchConfig{"controller": "users", "action": "index", "layout": "admin"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = d.Routes().Recognize("users/index")
	assert.True(t, err != nil)
}

func TestNestedScope(t *testing.T) {
	d := rdispatch.NewDispatcher()

	api := d.Scope("/api", map[string]string{"format": "json", "version": "1"})
	v2 := api.Scope("v2", map[string]string{"version": "2"})
	assert.Equal(t, v2.Prefix(), "api/v2")

	_, err := v2.Name("v2_item", "items/:id", rtr.RouteOptions{
		Params: map[string]string{"controller": "items", "action": "show"},
	})
	assert.Nil(t, err)

	cfg, err := d.Routes().Recognize("/api/v2/items/3")
	assert.Nil(t, err)
	assert.Equal(t, cfg["format"], "json")
	assert.Equal(t, cfg["version"], "2")
	assert.Equal(t, cfg.ID(), "3")

	path, err := d.Routes().URLFor("v2_item", map[string]string{"id": "8"})
	assert.Nil(t, err)
	assert.Equal(t, path, "api/v2/items/8")

	// The parent scope keeps its own params
	api.MustConnect("ping", rtr.RouteOptions{Params: map[string]string{"controller": "health", "action": "ping"}})
	cfg, err = d.Routes().Recognize("api/ping")
	assert.Nil(t, err)
	assert.Equal(t, cfg["version"], "1")
}

func TestScopeKeepsPatternAsWritten(t *testing.T) {
	d := rdispatch.NewDispatcher()

	route, err := d.Connect("a//b", rtr.RouteOptions{Params: map[string]string{"controller": "a"}})
	assert.Nil(t, err)
	assert.Equal(t, route.Pattern(), "a//b")

	_, err = d.Scope("docs/", nil).Connect("/../:page", rtr.RouteOptions{})
	assert.Nil(t, err)

	cfg, err := d.Routes().Recognize("a//b")
	assert.Nil(t, err)
	assert.Equal(t, cfg.Controller(), "a")

	_, err = d.Routes().Recognize("a/b")
	assert.True(t, err != nil)

	cfg, err = d.Routes().Recognize("docs/../intro")
	assert.Nil(t, err)
	assert.Equal(t, cfg["page"], "intro")
}

func TestScopeResources(t *testing.T) {
	d := rdispatch.NewDispatcher()
	admin := d.Scope("admin", map[string]string{"layout": "admin"})
	assert.Nil(t, admin.Resources("reports"))
	assert.Equal(t, d.Routes().Len(), 4)

	cfg, err := d.Routes().Recognize("admin/reports/5/edit")
	assert.Nil(t, err)
	want := rtr.DispatchConfig{"controller": "reports", "action": "edit", "id": "5", "layout": "admin"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	d.RegisterController("ReportsController", rdispatch.NewBaseController().
		Handle("edit", func(ctx rdispatch.Context) error {
			assert.Equal(t, ctx.Param("layout"), "admin")
			return nil
		}))
	assert.Nil(t, d.Dispatch(context.Background(), "admin/reports/5/edit"))

	assert.True(t, admin.Resources("") != nil)
	_, err = admin.Name("", "x", rtr.RouteOptions{})
	assert.True(t, err != nil)
}

func TestScopeBadPatternPanics(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil)
	}()

	rdispatch.NewDispatcher().Scope("admin", nil).MustConnect(":id/:id", rtr.RouteOptions{})
	t.Fatal("expected a panic")
}
