package cliapp

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/organic-programming/cliapp/internal/optparse"
)

// Keys of global options handled by the application itself.
const (
	KeyHelp    = "help"
	KeyVersion = "version"
	KeyList    = "list"
)

// Result tells whether a callback fully handled the invocation.
type Result int

const (
	// NotHandled lets dispatch continue.
	NotHandled Result = iota

	// Handled stops dispatch successfully.
	Handled
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case NotHandled:
		return "NotHandled"
	case Handled:
		return "Handled"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// GlobalHandler is called with parsed global options that were not handled
// by the application itself (help, version, list).
type GlobalHandler func(gopts *Options) (Result, error)

// NotSpecifiedFunc is called when no action name remains after global options.
type NotSpecifiedFunc func(app *Application, gopts *Options) (Result, error)

// ApplicationOpts represents optional Application settings.
type ApplicationOpts struct {
	GlobalHandler GlobalHandler
	NotSpecified  NotSpecifiedFunc // defaults to printing application help
	Logger        *zap.Logger      // defaults to no-op logger
	Stdout        io.Writer        // defaults to os.Stdout
	Stderr        io.Writer        // defaults to os.Stderr
}

// Application holds configuration, global options and registered actions.
//
// Register actions before calling Run or Main; registration is not safe
// for concurrent use with dispatch.
type Application struct {
	config        *Config
	globalHandler GlobalHandler
	notSpecified  NotSpecifiedFunc
	l             *zap.Logger
	stdout        io.Writer
	stderr        io.Writer

	globalSchema Schema
	actions      map[string]*Action
	names        []string // registration order
}

// New creates a config with the given name, description and version,
// and an application using it.
func New(name, desc, version string, opts *ApplicationOpts) *Application {
	config := NewConfig(name, desc)
	config.Version = version

	return NewApplication(config, opts)
}

// NewApplication creates an application for the given config.
func NewApplication(config *Config, opts *ApplicationOpts) *Application {
	if opts == nil {
		opts = new(ApplicationOpts)
	}

	app := &Application{
		config:        config,
		globalHandler: opts.GlobalHandler,
		notSpecified:  opts.NotSpecified,
		l:             opts.Logger,
		stdout:        opts.Stdout,
		stderr:        opts.Stderr,
		actions:       make(map[string]*Action),
	}

	if app.notSpecified == nil {
		app.notSpecified = printApplicationHelp
	}

	if app.l == nil {
		app.l = zap.NewNop()
	}

	if app.stdout == nil {
		app.stdout = os.Stdout
	}

	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	return app
}

// Config returns application config.
func (app *Application) Config() *Config {
	return app.config
}

// GlobalOptions sets the global option schema.
//
// It panics if the schema is malformed.
func (app *Application) GlobalOptions(schema Schema) {
	mustCompile("global options", schema)
	app.globalSchema = schema
}

// GlobalSchema returns the global option schema.
func (app *Application) GlobalSchema() Schema {
	return app.globalSchema
}

// Action registers an action and returns it.
// An action registered under an existing name replaces the previous one
// and keeps its position in registration order.
//
// It panics if the schema is malformed.
func (app *Application) Action(name, desc string, schema Schema, params Params, handler HandlerFunc) *Action {
	mustCompile(fmt.Sprintf("action %q", name), schema)

	action := NewAction(name, desc, schema, params, handler)

	if _, ok := app.actions[name]; !ok {
		app.names = append(app.names, name)
	}
	app.actions[name] = action

	app.l.Debug("Action registered", zap.String("action", name), zap.Int("min", action.arity.Min), zap.Int("max", action.arity.Max))

	return action
}

// GetAction returns the action registered under name, or nil.
func (app *Application) GetAction(name string) *Action {
	return app.actions[name]
}

// Actions returns a sequence of registered actions, in registration order
// or sorted by name.
//
// The sequence reflects the registry at the time of iteration
// and may be iterated several times.
func (app *Application) Actions(sorted bool) iter.Seq[*Action] {
	return func(yield func(*Action) bool) {
		names := app.names
		if sorted {
			names = slices.Sorted(slices.Values(names))
		}

		for _, name := range names {
			if !yield(app.actions[name]) {
				return
			}
		}
	}
}

// mustCompile panics if schema can't be registered with the option parser.
func mustCompile(what string, schema Schema) {
	if _, err := optparse.NewFromSchema(what, schema, 0, ""); err != nil {
		panic(fmt.Sprintf("cliapp: %s: %s", what, err))
	}
}

// printApplicationHelp is the default NotSpecifiedFunc.
func printApplicationHelp(app *Application, _ *Options) (Result, error) {
	fmt.Fprint(app.stdout, app.ApplicationHelpMessage(nil))
	return Handled, nil
}
