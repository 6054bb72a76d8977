package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/lithium/log"
)

// Mode selects the direction of an [Accessor] call.
type Mode uint8

const (
	ModeGet Mode = iota // get
	ModeSet             // set
)

// Accessor bridges a script property to a field of a host object.
//
// In [ModeGet] the accessor stores the property value in *v. In [ModeSet]
// it reads the new value from *v. Returning false means the property does
// not support mode; the contents of *v are then unspecified. Accessors must
// not panic and must not call back into [Context.Execute].
type Accessor func(object any, v *Value, mode Mode) bool

type variable struct {
	value Value
	scope int
}

// Context holds the variables, host accessors, and module links a script
// executes against, optionally bound to one opaque host object.
//
// A Context is not safe for concurrent use. Hosts that share one across
// goroutines must serialize every call, including [Context.Execute].
type Context struct {
	object    any
	variables map[string]variable
	accessors map[string]Accessor
	modules   map[string]*Context
	logger    log.Logger
	maxLoop   int
}

// New returns an empty Context bound to object, which may be nil.
func New(object any, opts ...Option) *Context {
	c := &Context{
		object:    object,
		variables: make(map[string]variable),
		accessors: make(map[string]Accessor),
		modules:   make(map[string]*Context),
	}

	applyOptions(c, opts...)

	return c
}

// Object returns the host object the Context was created with.
func (c *Context) Object() any { return c.object }

// AddModule links module under name.
func (c *Context) AddModule(name string, module *Context) error {
	if _, ok := c.modules[name]; ok {
		return ErrNameConflict.
			Wrapf("module %q already exists", name).
			With(slog.String("module", name))
	}

	c.modules[name] = module

	return nil
}

// RemoveModule unlinks the module named name.
func (c *Context) RemoveModule(name string) error {
	if _, ok := c.modules[name]; !ok {
		return ErrNoSuchModule.
			Wrapf("module %q does not exist", name).
			With(slog.String("module", name))
	}

	delete(c.modules, name)

	return nil
}

// SetModule replaces the module linked under name.
func (c *Context) SetModule(name string, module *Context) error {
	if _, ok := c.modules[name]; !ok {
		return ErrNoSuchModule.
			Wrapf("module %q does not exist", name).
			With(slog.String("module", name))
	}

	c.modules[name] = module

	return nil
}

// GetModule returns the module linked under name.
func (c *Context) GetModule(name string) (*Context, bool) {
	m, ok := c.modules[name]

	return m, ok
}

// AddAccessor binds fn to the property name.
func (c *Context) AddAccessor(name string, fn Accessor) error {
	if _, ok := c.accessors[name]; ok {
		return ErrNameConflict.
			Wrapf("property %q already exists", name).
			With(slog.String("property", name))
	}

	c.accessors[name] = fn

	return nil
}

// SetAccessor replaces the accessor bound to the property name.
func (c *Context) SetAccessor(name string, fn Accessor) error {
	if _, ok := c.accessors[name]; !ok {
		return ErrNameNotFound.
			Wrapf("property %q does not exist", name).
			With(slog.String("property", name))
	}

	c.accessors[name] = fn

	return nil
}

// GetAccessor returns the accessor bound to the property name.
func (c *Context) GetAccessor(name string) (Accessor, bool) {
	fn, ok := c.accessors[name]

	return fn, ok
}

// AddVariable declares a top-level variable.
// It fails with [ErrNameConflict] if a variable with the same name is live
// at any depth.
func (c *Context) AddVariable(name string, value Value) error {
	return c.declare(name, value, 0)
}

func (c *Context) declare(name string, value Value, scope int) error {
	if _, ok := c.variables[name]; ok {
		return ErrNameConflict.
			Wrapf("variable %q already exists", name).
			With(slog.String("variable", name), slog.Int("scope", scope))
	}

	c.variables[name] = variable{value: value, scope: scope}

	return nil
}

// GetVariable returns the value of the named variable, or Null if no such
// variable is live. Use [Context.LookupVariable] to tell an absent variable
// from one holding Null.
func (c *Context) GetVariable(name string) Value {
	v, _ := c.LookupVariable(name)

	return v
}

// LookupVariable returns the value of the named variable and whether it is
// live.
func (c *Context) LookupVariable(name string) (Value, bool) {
	v, ok := c.variables[name]

	return v.value, ok
}

// SetVariable assigns an existing variable, keeping its scope depth.
func (c *Context) SetVariable(name string, value Value) error {
	v, ok := c.variables[name]
	if !ok {
		return ErrNameNotFound.
			Wrapf("variable %q does not exist", name).
			With(slog.String("variable", name))
	}

	v.value = value
	c.variables[name] = v

	return nil
}

// RemoveVariable deletes a live variable.
func (c *Context) RemoveVariable(name string) error {
	if _, ok := c.variables[name]; !ok {
		return ErrNameNotFound.
			Wrapf("variable %q does not exist", name).
			With(slog.String("variable", name))
	}

	delete(c.variables, name)

	return nil
}

// GetProperty invokes the accessor bound to name in [ModeGet].
// It returns Null if no accessor is bound or the accessor rejects the read.
func (c *Context) GetProperty(name string) Value {
	v, _ := c.property(name)

	return v
}

func (c *Context) property(name string) (Value, bool) {
	fn, ok := c.accessors[name]
	if !ok || fn == nil {
		return Null(), false
	}

	var v Value
	if !fn(c.object, &v, ModeGet) {
		return Null(), true
	}

	return v, true
}

// SetProperty invokes the accessor bound to name in [ModeSet].
func (c *Context) SetProperty(name string, value Value) error {
	fn, ok := c.accessors[name]
	if !ok || fn == nil {
		return ErrNameNotFound.
			Wrapf("property %q does not exist", name).
			With(slog.String("property", name))
	}

	if !fn(c.object, &value, ModeSet) {
		return ErrPropertyRejected.
			Wrapf("property %q cannot be set", name).
			With(slog.String("property", name), slog.Any("value", value))
	}

	return nil
}

// Variables returns the names of every live variable in sorted order.
func (c *Context) Variables() []string { return sortedKeys(c.variables) }

// Accessors returns the names of every bound property in sorted order.
func (c *Context) Accessors() []string { return sortedKeys(c.accessors) }

// Modules returns the names of every linked module in sorted order.
func (c *Context) Modules() []string { return sortedKeys(c.modules) }

// Execute evaluates source against c.
//
// Statements run in order until the input is exhausted or one fails. The
// first failure is returned; effects of the statements before it are kept.
func (c *Context) Execute(source string) error {
	return c.ExecuteContext(context.Background(), source)
}

// ExecuteContext is like [Context.Execute] but stops with [ErrCanceled]
// once ctx is done. Cancellation is observed between statements and between
// loop iterations.
func (c *Context) ExecuteContext(ctx context.Context, source string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c.logger.TraceContext(ctx, "execute start",
		slog.Int("length", len(source)),
	)

	p := newParser(ctx, c, source)

	err := p.run()

	c.logger.TraceContext(ctx, "execute done",
		slog.Int("offset", p.pos),
		slog.Int("iterations", p.iterations),
		slog.Bool("ok", err == nil),
	)

	return err
}

// Evaluate evaluates a single expression against c and returns its value.
func (c *Context) Evaluate(source string) (Value, error) {
	return c.EvaluateContext(context.Background(), source)
}

// EvaluateContext is like [Context.Evaluate] but fails with [ErrCanceled]
// if ctx is already done. Anything but whitespace after the expression is
// a syntax error.
func (c *Context) EvaluateContext(ctx context.Context, source string) (Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p := newParser(ctx, c, source)
	if err := p.canceled(0); err != nil {
		return Null(), err
	}

	v, err := p.expression()
	if err != nil {
		return Null(), err
	}

	if p.skipSpace(); !p.eof() {
		return Null(), p.syntaxError(p.pos, "unexpected %q after expression", p.src[p.pos:])
	}

	c.logger.TraceContext(ctx, "evaluate", slog.Any("value", v))

	return v, nil
}
