package rdispatch

import (
	stdctx "context"
	"errors"
	"io"

	"github.com/rohanthewiz/rdispatch/core/rtr"
)

// Context is handed to every middleware and action of a dispatch.
type Context interface {
	Context() stdctx.Context
	Path() string
	Params() rtr.DispatchConfig
	Param(key string) string
	Controller() string
	Action() string
	Next() error
	Writer() io.Writer
	WriteString(string) error
	Error(...any) error
	Set(key string, value any)
	Get(key string) any
	Has(key string) bool
	Delete(key string)
	Dispatcher() *Dispatcher
	Redispatch(path string) error
}

// context holds the state of a single dispatch.
type context struct {
	ctx        stdctx.Context
	path       string
	params     rtr.DispatchConfig
	writer     io.Writer
	data       map[string]any
	dispatcher *Dispatcher
	handlers   []Action
	handlerIdx int
	depth      int
}

// Context returns the context.Context the dispatch was started with.
func (ctx *context) Context() stdctx.Context {
	return ctx.ctx
}

// Path returns the path that was recognized.
// It is empty when the dispatch started from a config.
func (ctx *context) Path() string {
	return ctx.path
}

// Params returns the full parameter map of the dispatch.
func (ctx *context) Params() rtr.DispatchConfig {
	return ctx.params
}

func (ctx *context) Param(key string) string {
	return ctx.params[key]
}

func (ctx *context) Controller() string {
	return ctx.params.Controller()
}

func (ctx *context) Action() string {
	return ctx.params.Action()
}

// Next runs the next handler in the chain.
// Returning without calling Next stops the chain.
func (ctx *context) Next() error {
	ctx.handlerIdx++
	if ctx.handlerIdx >= len(ctx.handlers) {
		return nil
	}
	return ctx.handlers[ctx.handlerIdx](ctx)
}

// Writer returns where the action should write its output.
func (ctx *context) Writer() io.Writer {
	if ctx.writer == nil {
		return io.Discard
	}
	return ctx.writer
}

// WriteString writes s to the dispatch output.
func (ctx *context) WriteString(s string) error {
	_, err := io.WriteString(ctx.Writer(), s)
	return err
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// Set stores request scoped data.
func (ctx *context) Set(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any)
	}
	ctx.data[key] = value
}

// Get retrieves request scoped data, nil if absent.
func (ctx *context) Get(key string) any {
	if ctx.data == nil {
		return nil
	}
	return ctx.data[key]
}

func (ctx *context) Has(key string) bool {
	if ctx.data == nil {
		return false
	}
	_, ok := ctx.data[key]
	return ok
}

func (ctx *context) Delete(key string) {
	if ctx.data != nil {
		delete(ctx.data, key)
	}
}

func (ctx *context) Dispatcher() *Dispatcher {
	return ctx.dispatcher
}

// Redispatch dispatches path with the same context.Context and output.
// Request scoped data is not carried over.
func (ctx *context) Redispatch(path string) error {
	return ctx.dispatcher.dispatchPath(ctx.ctx, path, ctx.writer, ctx.depth+1)
}
