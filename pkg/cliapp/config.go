package cliapp

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds program metadata and help formatting settings.
//
// Formatting fields may be changed at any time; they are read each time help
// text is rendered.
type Config struct {
	Name    string `yaml:"name"`    // "FooBar"
	Desc    string `yaml:"desc"`    // "Foo Bar application"
	Command string `yaml:"command"` // "foobar"
	Version string `yaml:"version"` // "1.0.0"

	HelpIndent       string `yaml:"help_indent"`
	HelpOptionWidth  int    `yaml:"help_option_width"`
	HelpActionWidth  int    `yaml:"help_action_width"`
	ActionListWidth  int    `yaml:"actionlist_width"`
	ActionListFormat string `yaml:"actionlist_format"` // "%-16s : %s"; empty means derived from ActionListWidth
}

// Default formatting settings.
const (
	DefaultHelpIndent      = "  "
	DefaultHelpOptionWidth = 22
	DefaultHelpActionWidth = 22
	DefaultActionListWidth = 16
)

// NewConfig returns a config with default settings.
// The command name is the program's basename; name defaults to the command name.
func NewConfig(name, desc string) *Config {
	command := filepath.Base(os.Args[0])
	if name == "" {
		name = command
	}

	return &Config{
		Name:            name,
		Desc:            desc,
		Command:         command,
		HelpIndent:      DefaultHelpIndent,
		HelpOptionWidth: DefaultHelpOptionWidth,
		HelpActionWidth: DefaultHelpActionWidth,
		ActionListWidth: DefaultActionListWidth,
	}
}

// Load reads a YAML file and overlays its values on c.
// Keys absent from the file keep their current values.
//
// If the file does not exist, the returned error matches fs.ErrNotExist.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// validate checks formatting settings.
func (c *Config) validate() error {
	for _, w := range []struct {
		name string
		v    int
	}{
		{"help_option_width", c.HelpOptionWidth},
		{"help_action_width", c.HelpActionWidth},
		{"actionlist_width", c.ActionListWidth},
	} {
		if w.v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", w.name, w.v)
		}
	}

	return nil
}

// actionListFormat returns the format used for each line of the action list.
func (c *Config) actionListFormat() string {
	format := c.ActionListFormat
	if format == "" {
		format = fmt.Sprintf("%%-%ds : %%s", c.ActionListWidth)
	}

	if format[len(format)-1] != '\n' {
		format += "\n"
	}

	return format
}
