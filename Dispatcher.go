package rdispatch

import (
	stdctx "context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rdispatch/core/rtr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrControllerNotFound is returned when no controller is registered
	// under the conventional name of the controller param.
	ErrControllerNotFound = errors.New("controller not found")

	// ErrActionNotFound is returned when the controller has no action named by the action param.
	ErrActionNotFound = errors.New("action not found")

	// ErrRedispatchLoop is returned when actions keep redispatching past MaxRedispatch.
	ErrRedispatchLoop = errors.New("too many redispatches")
)

// MaxRedispatch bounds how deep Context.Redispatch can nest.
const MaxRedispatch = 8

const defaultTracerName = "rdispatch"

// Options configure a Dispatcher.
type Options struct {
	// Verbose logs every registration and dispatch.
	Verbose bool

	// TracerName names the OpenTelemetry tracer (default: "rdispatch").
	// Spans go to the global tracer provider.
	TracerName string

	// Registerer receives the dispatch metrics. Metrics are off when nil.
	Registerer prometheus.Registerer

	// Namespace prefixes metric names (default: "rdispatch").
	Namespace string
}

// Dispatcher recognizes paths with its route table and invokes
// the action of the conventionally named controller.
type Dispatcher struct {
	opts        Options
	routes      *rtr.RouteTable
	mu          sync.RWMutex
	controllers map[string]ControllerFactory
	fallback    ControllerFactory
	filters     []filter
	tracer      trace.Tracer
	metrics     *metrics
}

// filter is middleware that only runs for configs its matcher admits.
type filter struct {
	matcher rtr.Matcher
	action  Action
}

// NewDispatcher creates a dispatcher with an empty route table.
func NewDispatcher(options ...Options) *Dispatcher {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.TracerName == "" {
		opts.TracerName = defaultTracerName
	}
	if opts.Namespace == "" {
		opts.Namespace = defaultTracerName
	}

	return &Dispatcher{
		opts:        opts,
		routes:      rtr.NewRouteTable(),
		controllers: make(map[string]ControllerFactory),
		tracer:      otel.Tracer(opts.TracerName),
		metrics:     newMetrics(opts.Registerer, opts.Namespace),
	}
}

// Routes returns the dispatcher's route table.
func (d *Dispatcher) Routes() *rtr.RouteTable {
	return d.routes
}

// Connect appends a route to the dispatcher's table.
func (d *Dispatcher) Connect(pattern string, opts rtr.RouteOptions) (*rtr.Route, error) {
	return d.Scope("", nil).Connect(pattern, opts)
}

// Register makes a controller available under name, e.g. "UsersController".
func (d *Dispatcher) Register(name string, factory ControllerFactory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.controllers[name] = factory

	if d.opts.Verbose {
		logger.Info("Registered controller", "name", name)
	}
}

// RegisterController registers a single controller instance shared by every dispatch.
func (d *Dispatcher) RegisterController(name string, ctrl Controller) {
	d.Register(name, func() Controller { return ctrl })
}

// Fallback sets the controller used when none is registered under the conventional name.
func (d *Dispatcher) Fallback(factory ControllerFactory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fallback = factory
}

// Use adds middleware that runs on every dispatch, in the order added.
func (d *Dispatcher) Use(actions ...Action) {
	d.UseFor(nil, actions...)
}

// UseFor adds middleware that only runs when matcher admits the dispatch config.
func (d *Dispatcher) UseFor(matcher rtr.Matcher, actions ...Action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range actions {
		d.filters = append(d.filters, filter{matcher: matcher, action: a})
	}
}

// Dispatch recognizes path and runs the matching action. Output is discarded.
func (d *Dispatcher) Dispatch(ctx stdctx.Context, path string) error {
	return d.dispatchPath(ctx, path, nil, 0)
}

// DispatchTo is like Dispatch but actions write to w.
func (d *Dispatcher) DispatchTo(ctx stdctx.Context, path string, w io.Writer) error {
	return d.dispatchPath(ctx, path, w, 0)
}

// DispatchConfig runs the action for an already recognized config.
func (d *Dispatcher) DispatchConfig(ctx stdctx.Context, cfg rtr.DispatchConfig, w io.Writer) error {
	ctx, span := d.tracer.Start(ctx, "rdispatch.DispatchConfig")
	defer span.End()

	return d.run(ctx, span, "", cfg, w, 0)
}

func (d *Dispatcher) dispatchPath(ctx stdctx.Context, path string, w io.Writer, depth int) error {
	if depth > MaxRedispatch {
		return fmt.Errorf("%w: %q", ErrRedispatchLoop, path)
	}

	ctx, span := d.tracer.Start(ctx, "rdispatch.Dispatch",
		trace.WithAttributes(attribute.String("rdispatch.path", path)))
	defer span.End()

	start := time.Now()
	cfg, err := d.routes.Recognize(path)
	if err != nil {
		d.metrics.observe("", "", OutcomeNoRoute, start)
		d.fail(span, err, path)
		return err
	}

	return d.run(ctx, span, path, cfg, w, depth)
}

// run finds the controller and action for cfg and executes the middleware chain.
func (d *Dispatcher) run(ctx stdctx.Context, span trace.Span, path string, cfg rtr.DispatchConfig,
	w io.Writer, depth int) error {
	start := time.Now()
	controller, action := cfg.Controller(), cfg.Action()
	span.SetAttributes(
		attribute.String("rdispatch.controller", controller),
		attribute.String("rdispatch.action", action),
	)

	name := ControllerName(controller)

	d.mu.RLock()
	factory, ok := d.controllers[name]
	if !ok && d.fallback != nil {
		factory, ok = d.fallback, true
	}
	var handlers []Action
	for _, f := range d.filters {
		if f.matcher.Matches(cfg) {
			handlers = append(handlers, f.action)
		}
	}
	d.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %q for %q", ErrControllerNotFound, name, path)
		d.metrics.observe(controller, action, OutcomeNoController, start)
		d.fail(span, err, path)
		return err
	}

	act, ok := factory().Action(action)
	if !ok {
		err := fmt.Errorf("%w: %s#%s", ErrActionNotFound, name, action)
		d.metrics.observe(controller, action, OutcomeNoAction, start)
		d.fail(span, err, path)
		return err
	}

	c := &context{
		ctx:        ctx,
		path:       path,
		params:     cfg,
		writer:     w,
		dispatcher: d,
		handlers:   append(handlers, act),
		handlerIdx: -1,
		depth:      depth,
	}

	if d.opts.Verbose {
		logger.Debug("Dispatching", "path", path, "controller", name, "action", action)
	}

	if err := c.Next(); err != nil {
		d.metrics.observe(controller, action, OutcomeError, start)
		d.fail(span, err, path)
		return err
	}

	d.metrics.observe(controller, action, OutcomeOK, start)
	span.SetStatus(codes.Ok, "")
	return nil
}

func (d *Dispatcher) fail(span trace.Span, err error, path string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if d.opts.Verbose {
		logger.LogErr(err, "Dispatch failed", "path", path)
	}
}
