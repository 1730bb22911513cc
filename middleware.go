package rdispatch

import (
	"time"

	"github.com/rohanthewiz/logger"
)

// DispatchInfo is a middleware logging each dispatch with its duration
func DispatchInfo(ctx Context) error {
	start := time.Now()
	err := ctx.Next()
	elapsed := time.Since(start).String()

	if err != nil {
		logger.LogErr(err, "Dispatch failed", "path", ctx.Path(),
			"controller", ctx.Controller(), "action", ctx.Action(), "duration", elapsed)
		return err
	}

	logger.Info("Dispatched", "path", ctx.Path(),
		"controller", ctx.Controller(), "action", ctx.Action(), "duration", elapsed)
	return nil
}
