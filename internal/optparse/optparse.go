// Package optparse turns an ordered option schema into pflag flag sets.
//
// It is the token-level collaborator of the dispatcher: it knows how to
// register options, how to pull them out of a token list (either stopping at
// the first positional token or extracting them from anywhere), and how to
// render a summary line per option for help text. It never interprets what
// the options mean.
package optparse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// displayAnnotation keeps the flag text exactly as written in the schema.
const displayAnnotation = "optparse_display"

// omitted is handed to Value.Set when an optional-argument flag
// is given without its argument.
const omitted = "\x00omitted"

// Spec describes a single option.
type Spec struct {
	Key     string   // symbolic key the parsed value is stored under
	Short   string   // "-l", optionally followed by a placeholder ("-n <num>")
	Long    string   // "--lang=<en|fr|it>", "--all", "--indent[=<n>]"
	Desc    string   // one line of help text
	Choices []string // allowed values, if constrained
}

// Schema is an ordered list of option specs; order drives help output.
type Schema []Spec

type argMode int

const (
	argNone argMode = iota
	argRequired
	argOptional
)

// flagSpec is a validated Spec.
type flagSpec struct {
	Spec
	name    string
	short   string
	mode    argMode
	display string
}

// Parser parses option tokens for one schema.
//
// Every parse builds a fresh pflag.FlagSet, so a Parser may be reused.
type Parser struct {
	name   string
	width  int
	indent string
	specs  []*flagSpec
}

// New creates a parser. Width and indent only affect Summarize.
func New(name string, width int, indent string) *Parser {
	return &Parser{
		name:   name,
		width:  width,
		indent: indent,
	}
}

// NewFromSchema creates a parser and registers every spec of the schema.
func NewFromSchema(name string, schema Schema, width int, indent string) (*Parser, error) {
	p := New(name, width, indent)
	for _, s := range schema {
		if err := p.On(s); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// On registers one option.
func (p *Parser) On(s Spec) error {
	fs, err := compile(s)
	if err != nil {
		return err
	}

	for _, other := range p.specs {
		if other.name == fs.name {
			return fmt.Errorf("optparse: option %q defined twice", "--"+fs.name)
		}
		if fs.short != "" && other.short == fs.short {
			return fmt.Errorf("optparse: option %q defined twice", "-"+fs.short)
		}
	}

	p.specs = append(p.specs, fs)

	return nil
}

// DefinesLong reports whether an option with the given long name is registered.
func (p *Parser) DefinesLong(name string) bool {
	for _, s := range p.specs {
		if s.name == name {
			return true
		}
	}

	return false
}

// DefinesShort reports whether an option with the given shorthand is registered.
func (p *Parser) DefinesShort(short string) bool {
	for _, s := range p.specs {
		if s.short == short {
			return true
		}
	}

	return false
}

// Len returns the number of registered options.
func (p *Parser) Len() int {
	return len(p.specs)
}

// Order parses the leading run of option tokens and stops at the first
// positional token. It returns parsed values and the untouched rest.
func (p *Parser) Order(tokens []string) (*Values, []string, error) {
	return p.parse(tokens, false)
}

// Permute parses option tokens wherever they appear and returns parsed values
// and the positional tokens in their original order.
func (p *Parser) Permute(tokens []string) (*Values, []string, error) {
	return p.parse(tokens, true)
}

// Summarize returns one formatted help line per option, in schema order.
// Each line ends with a newline.
func (p *Parser) Summarize() []string {
	set, _ := p.flagSet(false)

	var lines []string
	set.VisitAll(func(f *pflag.Flag) {
		left := f.Annotations[displayAnnotation][0]

		if len(left) <= p.width {
			lines = append(lines, fmt.Sprintf("%s%-*s %s\n", p.indent, p.width, left, f.Usage))
			return
		}

		lines = append(lines, p.indent+left+"\n")
		if f.Usage != "" {
			lines = append(lines, p.indent+strings.Repeat(" ", p.width+1)+f.Usage+"\n")
		}
	})

	return lines
}

func (p *Parser) parse(tokens []string, interspersed bool) (*Values, []string, error) {
	set, values := p.flagSet(interspersed)

	if err := set.Parse(tokens); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			err = errors.New("unknown flag: --help")
		}
		return nil, nil, &ParseError{err: err}
	}

	res := new(Values)
	for _, s := range p.specs {
		if v := values[s.name]; v.set {
			res.Set(s.Key, v.val)
		}
	}

	rest := set.Args()
	if rest == nil {
		rest = []string{}
	}

	return res, rest, nil
}

func (p *Parser) flagSet(interspersed bool) (*pflag.FlagSet, map[string]*flagValue) {
	set := pflag.NewFlagSet(p.name, pflag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.Usage = func() {}
	set.SortFlags = false
	set.SetInterspersed(interspersed)

	values := make(map[string]*flagValue, len(p.specs))
	for _, s := range p.specs {
		v := &flagValue{spec: s}
		f := set.VarPF(v, s.name, s.short, s.Desc)

		switch s.mode {
		case argNone:
			f.NoOptDefVal = "true"
		case argOptional:
			f.NoOptDefVal = omitted
		case argRequired:
		}

		// cannot fail: the flag was defined just above
		_ = set.SetAnnotation(s.name, displayAnnotation, []string{s.display})

		values[s.name] = v
	}

	return set, values
}

// compile validates a Spec and derives flag name, shorthand and argument mode.
func compile(s Spec) (*flagSpec, error) {
	fs := &flagSpec{Spec: s}

	var shortPlaceholder bool

	if s.Short != "" {
		short := strings.TrimSpace(s.Short)
		if len(short) < 2 || short[0] != '-' || short[1] == '-' {
			return nil, fmt.Errorf("optparse: invalid short option %q", s.Short)
		}
		fs.short = short[1:2]
		shortPlaceholder = strings.TrimSpace(short[2:]) != ""
	}

	switch {
	case s.Long != "":
		if !strings.HasPrefix(s.Long, "--") {
			return nil, fmt.Errorf("optparse: invalid long option %q", s.Long)
		}

		long := s.Long[2:]
		name := long

		switch {
		case strings.Contains(long, "[="):
			name = long[:strings.Index(long, "[=")]
			fs.mode = argOptional
		case strings.ContainsAny(long, "= "):
			name = long[:strings.IndexAny(long, "= ")]
			fs.mode = argRequired
		}

		fs.name = name

	case s.Key != "":
		fs.name = s.Key
		if shortPlaceholder {
			fs.mode = argRequired
		}

	default:
		return nil, errors.New("optparse: option needs a key or a long flag")
	}

	if fs.name == "" || strings.ContainsAny(fs.name, " \t=") {
		return nil, fmt.Errorf("optparse: invalid option name %q", fs.name)
	}

	if fs.Key == "" {
		fs.Key = fs.name
	}

	switch {
	case s.Short != "" && s.Long != "":
		fs.display = strings.TrimSpace(s.Short) + ", " + s.Long
	case s.Long != "":
		fs.display = "    " + s.Long
	default:
		fs.display = strings.TrimSpace(s.Short)
	}

	return fs, nil
}

// ParseError is returned for malformed option syntax,
// unknown options and values outside of allowed choices.
type ParseError struct {
	err error
}

// Error implements error interface.
func (e *ParseError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying flag error.
func (e *ParseError) Unwrap() error {
	return e.err
}
