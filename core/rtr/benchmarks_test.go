package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/rdispatch/core/rtr"
)

func BenchmarkAdmin(b *testing.B) {
	table := rtr.NewRouteTable()
	for _, route := range loadFixture("testdata/admin.txt") {
		table.MustConnect(route.Pattern, rtr.RouteOptions{Conditions: route.Conditions})
	}

	b.Run("Static", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = table.Recognize("session/new")
		}
	})

	b.Run("Condition", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = table.Recognize("users/7/edit")
		}
	})

	b.Run("Fallback", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = table.Recognize("users/index")
		}
	})

	b.Run("NoMatch", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = table.Recognize("a/b/c/d/e")
		}
	})
}

func BenchmarkGenerate(b *testing.B) {
	table := rtr.NewRouteTable()
	_ = table.Resources("users", "posts")
	table.MustConnect(":controller/:action/:id", rtr.RouteOptions{})
	params := map[string]string{"controller": "posts", "action": "edit", "id": "3"}

	for i := 0; i < b.N; i++ {
		_, _ = table.Generate(params)
	}
}
