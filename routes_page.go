package rdispatch

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rdispatch/core/rtr"
)

// routesPage renders a route table as an HTML page, in match order.
type routesPage struct {
	Title  string
	Routes []rtr.RouteList
}

func (p routesPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: monospace; margin: 20px; }
				table { border-collapse: collapse; }
				th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
			`),
		),
		b.Body().R(
			b.H1().T(p.Title),
			b.Table().R(
				b.Tr().R(
					b.Th().T("#"),
					b.Th().T("Name"),
					b.Th().T("Pattern"),
					b.Th().T("Conditions"),
					b.Th().T("Params"),
				),
				func() any {
					for _, route := range p.Routes {
						b.Tr().R(
							b.Td().T(strconv.Itoa(route.Index)),
							b.Td().T(route.Name),
							b.Td().T(route.Pattern),
							b.Td().T(joinPairs(route.Conditions, ":")),
							b.Td().T(joinPairs(route.Params, "")),
						)
					}
					return nil
				}(),
			),
		),
	)
	return nil
}

// RoutesPage renders the dispatcher's route table as HTML.
func RoutesPage(d *Dispatcher) string {
	b := element.NewBuilder()
	element.RenderComponents(b, routesPage{Title: "Routes", Routes: d.Routes().Routes()})
	return b.String()
}

// joinPairs formats a map as sorted "key=value" pairs, each key prefixed by keyPrefix.
func joinPairs(m map[string]string, keyPrefix string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, keyPrefix+k+"="+m[k])
	}
	return strings.Join(pairs, " ")
}
