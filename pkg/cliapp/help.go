package cliapp

import (
	"fmt"
	"strings"

	"github.com/organic-programming/cliapp/internal/optparse"
)

// HelpOpts overrides config settings for a single help message.
// Zero fields keep config values.
type HelpOpts struct {
	Width  int
	Indent string
}

// resolve returns option width, action width and indent to use.
func (app *Application) resolve(opts *HelpOpts) (int, int, string) {
	c := app.config
	optionWidth, actionWidth, indent := c.HelpOptionWidth, c.HelpActionWidth, c.HelpIndent

	if opts != nil {
		if opts.Width > 0 {
			optionWidth, actionWidth = opts.Width, opts.Width
		}
		if opts.Indent != "" {
			indent = opts.Indent
		}
	}

	return optionWidth, actionWidth, indent
}

// ApplicationHelpMessage builds the help message of the whole program.
func (app *Application) ApplicationHelpMessage(opts *HelpOpts) string {
	c := app.config
	optionWidth, actionWidth, indent := app.resolve(opts)

	options := optionHelpMessage(app.globalSchema, optionWidth, indent)

	var actions strings.Builder
	for action := range app.Actions(true) {
		fmt.Fprintf(&actions, "%s%-*s %s\n", indent, actionWidth, action.name, action.desc)
	}

	var sb strings.Builder

	sb.WriteString(c.Name)
	if c.Version != "" {
		sb.WriteString(" (" + c.Version + ")")
	}
	sb.WriteString(" --- " + c.Desc + "\n")

	sb.WriteString("\nUsage:\n")
	sb.WriteString(indent + "$ " + c.Command)
	if options != "" {
		sb.WriteString(" [<options>]")
	}
	if actions.Len() > 0 {
		sb.WriteString(" <action> [<arguments>...]")
	}
	sb.WriteString("\n")

	if options != "" {
		sb.WriteString("\nOptions:\n" + options)
	}

	if actions.Len() > 0 {
		sb.WriteString("\nActions:\n" + actions.String())
	}

	return sb.String()
}

// ActionHelpMessage builds the help message of a single action.
func (app *Application) ActionHelpMessage(action *Action, opts *HelpOpts) string {
	c := app.config
	optionWidth, _, indent := app.resolve(opts)

	options := optionHelpMessage(action.schema, optionWidth, indent)

	var sb strings.Builder

	sb.WriteString(c.Command + " " + action.name + " --- " + action.desc + "\n")

	sb.WriteString("\nUsage:\n")
	sb.WriteString(indent + "$ " + c.Command + " " + action.name)
	if options != "" {
		sb.WriteString(" [<options>]")
	}
	sb.WriteString(action.params.UsageFragment() + "\n")

	if options != "" {
		sb.WriteString("\nOptions:\n" + options)
	}

	return sb.String()
}

// ListActions returns one line per action, sorted by name, with the first
// line of its description.
func (app *Application) ListActions() string {
	format := app.config.actionListFormat()

	var sb strings.Builder
	for action := range app.Actions(true) {
		desc, _, _ := strings.Cut(action.desc, "\n")
		fmt.Fprintf(&sb, format, action.name, desc)
	}

	return sb.String()
}

// optionHelpMessage renders option summary lines.
func optionHelpMessage(schema Schema, width int, indent string) string {
	// schemas are validated on registration
	p, err := optparse.NewFromSchema("help", schema, width, indent)
	if err != nil {
		panic(err)
	}

	return strings.Join(p.Summarize(), "")
}
