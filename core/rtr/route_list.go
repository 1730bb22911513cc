package rtr

// RouteList describes a registered route for inspection and debugging.
// Tables return them in registration order, which is also match order.
type RouteList struct {
	Index      int
	Name       string
	Pattern    string
	Conditions map[string]string
	Params     map[string]string
}
