package cliapp

import (
	"fmt"

	"github.com/organic-programming/cliapp/internal/optparse"
)

// ActionError is implemented by every error raised by action lookup or
// argument validation. Pass a pointer to a variable of this type
// to errors.As to match the whole category.
type ActionError interface {
	error
	actionError()
}

// OptionParseError is returned for malformed or unknown options
// and for option values outside of the allowed choices.
type OptionParseError = optparse.ParseError

// ActionNotFoundError is returned when no action is registered under the given name.
type ActionNotFoundError struct {
	Name string
}

// Error implements error interface.
func (e *ActionNotFoundError) Error() string {
	return fmt.Sprintf("%s: Action not found.", e.Name)
}

func (*ActionNotFoundError) actionError() {}

// ActionTooFewArgsError is returned when fewer positional arguments than
// required are given.
type ActionTooFewArgsError struct {
	Action string
	Got    int
	Min    int
}

// Error implements error interface.
func (e *ActionTooFewArgsError) Error() string {
	return "Too few arguments."
}

func (*ActionTooFewArgsError) actionError() {}

// ActionTooManyArgsError is returned when more positional arguments than
// accepted are given.
type ActionTooManyArgsError struct {
	Action string
	Got    int
	Max    int
}

// Error implements error interface.
func (e *ActionTooManyArgsError) Error() string {
	return "Too many arguments."
}

func (*ActionTooManyArgsError) actionError() {}

// check interfaces
var (
	_ ActionError = (*ActionNotFoundError)(nil)
	_ ActionError = (*ActionTooFewArgsError)(nil)
	_ ActionError = (*ActionTooManyArgsError)(nil)
)
