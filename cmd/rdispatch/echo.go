package main

import (
	"github.com/rohanthewiz/rdispatch"
)

// echoController answers every action by printing the dispatch params.
type echoController struct{}

func newEchoController() rdispatch.Controller {
	return echoController{}
}

func (echoController) Action(string) (rdispatch.Action, bool) {
	return func(ctx rdispatch.Context) error {
		return ctx.WriteString(formatPairs(ctx.Params()))
	}, true
}
