package rdispatch

// Action handles a dispatched path. Middleware are Actions too;
// they continue the chain with ctx.Next().
type Action func(ctx Context) error

// Controller exposes actions by name.
type Controller interface {
	Action(name string) (Action, bool)
}

// ControllerFactory creates a fresh controller for each dispatch.
type ControllerFactory func() Controller

// BaseController is a Controller backed by a map of named actions.
// Embed it, or use it directly:
//
//	users := rdispatch.NewBaseController()
//	users.Handle("index", listUsers)
type BaseController struct {
	actions map[string]Action
}

// NewBaseController creates a controller with no actions.
func NewBaseController() *BaseController {
	return &BaseController{actions: make(map[string]Action)}
}

// Handle registers action under name, replacing any earlier one.
func (bc *BaseController) Handle(name string, action Action) *BaseController {
	if bc.actions == nil {
		bc.actions = make(map[string]Action)
	}
	bc.actions[name] = action
	return bc
}

// Action returns the action registered under name.
func (bc *BaseController) Action(name string) (Action, bool) {
	action, ok := bc.actions[name]
	return action, ok && action != nil
}

// Actions lists the registered action names.
func (bc *BaseController) Actions() []string {
	names := make([]string, 0, len(bc.actions))
	for name := range bc.actions {
		names = append(names, name)
	}
	return names
}
