package cliapp

import (
	"github.com/organic-programming/cliapp/internal/optparse"
)

// OptionSpec describes one option of a schema.
type OptionSpec = optparse.Spec

// Schema is an ordered list of options.
type Schema = optparse.Schema

// Options holds parsed option values keyed by schema key.
type Options = optparse.Values

// OptionValue is a single parsed option value.
type OptionValue = optparse.Value

// HandlerFunc runs an action with its positional arguments and parsed options.
//
// It is called only after the number of arguments has been checked against
// the action's Params.
type HandlerFunc func(args []string, opts *Options) error

// Action is a named sub-command.
type Action struct {
	name    string
	desc    string
	schema  Schema
	params  Params
	arity   Arity
	handler HandlerFunc
}

// NewAction creates an action. Most callers use Application.Action instead.
func NewAction(name, desc string, schema Schema, params Params, handler HandlerFunc) *Action {
	return &Action{
		name:    name,
		desc:    desc,
		schema:  schema,
		params:  params,
		arity:   params.Arity(),
		handler: handler,
	}
}

// Name returns the action name.
func (a *Action) Name() string { return a.name }

// Desc returns the action description.
func (a *Action) Desc() string { return a.desc }

// Schema returns the action's own options.
func (a *Action) Schema() Schema { return a.schema }

// Params returns declared positional parameters.
func (a *Action) Params() Params { return a.params }

// Arity returns the accepted number of positional arguments.
func (a *Action) Arity() Arity { return a.arity }

// Call checks the number of positional arguments and invokes the handler.
// Handler errors are returned as is.
func (a *Action) Call(args []string, opts *Options) error {
	if len(args) < a.arity.Min {
		return &ActionTooFewArgsError{Action: a.name, Got: len(args), Min: a.arity.Min}
	}

	if a.arity.Bounded() && len(args) > a.arity.Max {
		return &ActionTooManyArgsError{Action: a.name, Got: len(args), Max: a.arity.Max}
	}

	if opts == nil {
		opts = new(Options)
	}

	if a.handler == nil {
		return nil
	}

	return a.handler(args, opts)
}
