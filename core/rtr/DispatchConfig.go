package rtr

import (
	"strings"

	"github.com/rohanthewiz/rdispatch/consts"
)

// DispatchConfig is the result of recognizing a path:
// every extracted segment value plus the static params of the matched route.
type DispatchConfig map[string]string

// Controller returns the controller param.
func (dc DispatchConfig) Controller() string {
	return dc[consts.ParamController]
}

// Action returns the action param.
func (dc DispatchConfig) Action() string {
	return dc[consts.ParamAction]
}

// ID returns the raw id param, which may be a comma joined list.
func (dc DispatchConfig) ID() string {
	return dc[consts.ParamID]
}

// IDs splits a comma joined id param. It returns nil when there is no id.
func (dc DispatchConfig) IDs() []string {
	id := dc.ID()
	if id == "" {
		return nil
	}

	var ids []string
	for _, s := range strings.Split(id, consts.IDSeparator) {
		if s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}
