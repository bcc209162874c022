// Package cliapp is a framework for command-line programs exposing several
// named actions (sub-commands), each with its own options and positional
// arguments, like "git <subcommand>".
//
// An Application owns a Config, a schema of global options and a registry of
// actions. Dispatch happens in two phases:
//
//   - global options are parsed up to the first positional argument;
//     help, version and action list requests are answered right away;
//   - the first remaining argument selects an action, whose options are then
//     parsed anywhere among the rest of the arguments (an implicit -h/--help
//     is always available).
//
// Each action declares its positional parameters with Params. The declared
// Arity is checked before the handler runs, and the same declaration is used
// to render the usage line of the action's help message.
//
// Main is the usual entry point:
//
//	app := cliapp.New("Sample", "Sample Application", "1.0.0", nil)
//	app.GlobalOptions(cliapp.Schema{
//		{Key: "help", Short: "-h", Long: "--help", Desc: "print help message"},
//	})
//	app.Action("hello", "greeting message", nil, cliapp.Params{cliapp.Optional("name")},
//		func(args []string, opts *cliapp.Options) error {
//			// ...
//			return nil
//		},
//	)
//	os.Exit(app.Main(os.Args[1:], nil))
//
// See Skeleton for a complete example.
package cliapp
