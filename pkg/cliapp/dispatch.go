package cliapp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/organic-programming/cliapp/internal/optparse"
)

// helpSpec is added to every action's options when parsing.
var helpSpec = OptionSpec{Key: KeyHelp, Short: "-h", Long: "--help", Desc: "print help message"}

// Main runs the application and returns the process exit status.
//
// Action errors and option parse errors are passed to onError, or reported
// on stderr as "[ERROR] <message>" if onError is nil; the status is 1.
// Any other error returned by a handler is logged, reported on stderr
// prefixed with the command name, and also results in status 1.
func (app *Application) Main(args []string, onError func(error)) int {
	err := app.Run(args)
	if err == nil {
		return 0
	}

	var actionErr ActionError
	var parseErr *OptionParseError

	if errors.As(err, &actionErr) || errors.As(err, &parseErr) {
		if onError != nil {
			onError(err)
		} else {
			fmt.Fprintf(app.stderr, "[ERROR] %s\n", err)
		}

		return 1
	}

	app.l.Error("Action failed", zap.Error(err))
	fmt.Fprintf(app.stderr, "%s: %s\n", app.config.Command, err)

	return 1
}

// Run parses global options, dispatches to the action named by the first
// remaining argument, and invokes it.
//
// It does not handle errors; see Main. The args slice is not modified.
func (app *Application) Run(args []string) error {
	gopts, rest, err := app.ParseGlobalOptions(args)
	if err != nil {
		return err
	}

	app.l.Debug("Global options parsed", zap.String("options", gopts.GoString()), zap.Strings("rest", rest))

	res, err := app.HandleGlobalOptions(gopts)
	if err != nil {
		return err
	}

	if res == Handled {
		app.l.Debug("Handled by global options")
		return nil
	}

	if len(rest) == 0 {
		if res, err = app.notSpecified(app, gopts); err != nil {
			return err
		}

		if res == Handled {
			app.l.Debug("Handled without action")
			return nil
		}

		return &ActionNotFoundError{Name: ""}
	}

	name := rest[0]

	action := app.GetAction(name)
	if action == nil {
		return &ActionNotFoundError{Name: name}
	}

	aopts, pargs, err := app.ParseActionOptions(action, rest[1:])
	if err != nil {
		return err
	}

	app.l.Debug(
		"Action options parsed",
		zap.String("action", name), zap.String("options", aopts.GoString()), zap.Strings("args", pargs),
	)

	if aopts.Bool(KeyHelp) {
		fmt.Fprint(app.stdout, app.ActionHelpMessage(action, nil))
		return nil
	}

	return action.Call(pargs, aopts)
}

// HandleGlobalOptions prints help, version or action list if requested,
// otherwise calls the global handler, if any.
func (app *Application) HandleGlobalOptions(gopts *Options) (Result, error) {
	switch {
	case gopts.Bool(KeyHelp):
		fmt.Fprint(app.stdout, app.ApplicationHelpMessage(nil))
		return Handled, nil

	case gopts.Bool(KeyVersion):
		fmt.Fprintln(app.stdout, app.config.Version)
		return Handled, nil

	case gopts.Bool(KeyList):
		fmt.Fprint(app.stdout, app.ListActions())
		return Handled, nil
	}

	if app.globalHandler != nil {
		return app.globalHandler(gopts)
	}

	return NotHandled, nil
}

// ParseGlobalOptions parses options preceding the first positional argument.
// It returns parsed options and the remaining arguments, starting with the
// action name if there is one.
func (app *Application) ParseGlobalOptions(args []string) (*Options, []string, error) {
	p, err := optparse.NewFromSchema("global options", app.globalSchema, app.config.HelpOptionWidth, app.config.HelpIndent)
	if err != nil {
		return nil, nil, err
	}

	return p.Order(args)
}

// ParseActionOptions parses the action's options wherever they appear in args,
// plus the implicit -h/--help option.
// It returns parsed options and positional arguments.
func (app *Application) ParseActionOptions(action *Action, args []string) (*Options, []string, error) {
	p, err := optparse.NewFromSchema(action.name, action.schema, app.config.HelpOptionWidth, app.config.HelpIndent)
	if err != nil {
		return nil, nil, err
	}

	if !p.DefinesLong(KeyHelp) {
		spec := helpSpec
		if p.DefinesShort("h") {
			spec.Short = ""
		}

		if err = p.On(spec); err != nil {
			return nil, nil, err
		}
	}

	return p.Permute(args)
}
