package consts

const (
	RuneColon = ':'
	RuneHash  = '#'
	RuneStar  = '*'

	SegmentSeparator = "/"
	IDSeparator      = ","
)

// DefaultSegmentPattern is what a named segment matches when no condition is given.
// Commas are allowed so a list of ids like "1,2,3" is captured as one value.
const DefaultSegmentPattern = `[a-zA-Z0-9_,]+`

// Well known dispatch parameter keys
const (
	ParamController = "controller"
	ParamAction     = "action"
	ParamID         = "id"
)

// Conventional action names registered by Resources
const (
	ActionIndex = "index"
	ActionBuild = "build"
	ActionShow  = "show"
	ActionEdit  = "edit"
)

// ControllerSuffix is appended to the camelized controller param to find a controller.
const ControllerSuffix = "Controller"
