package cliapp

import (
	"strings"
)

// ParamKind tells how a positional parameter is consumed.
type ParamKind int

// Positional parameter kinds.
const (
	ParamRequired ParamKind = iota
	ParamOptional
	ParamVariadic
)

// Param declares one positional parameter of an action handler.
type Param struct {
	Name string
	Kind ParamKind
}

// Required declares a required positional parameter.
func Required(name string) Param {
	return Param{Name: name, Kind: ParamRequired}
}

// Optional declares an optional positional parameter.
func Optional(name string) Param {
	return Param{Name: name, Kind: ParamOptional}
}

// Variadic declares a trailing parameter taking any number of arguments.
func Variadic(name string) Param {
	return Param{Name: name, Kind: ParamVariadic}
}

// Params is the declared positional parameter list of a handler.
type Params []Param

// Unbounded is the Arity.Max value of handlers with a variadic parameter.
const Unbounded = -1

// Arity is the accepted number of positional arguments.
type Arity struct {
	Min int
	Max int // Unbounded if there is no upper limit
}

// Bounded reports whether there is an upper limit.
func (a Arity) Bounded() bool {
	return a.Max != Unbounded
}

// Accepts reports whether n positional arguments are acceptable.
func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (!a.Bounded() || n <= a.Max)
}

// Arity computes the minimum and maximum number of positional arguments.
func (ps Params) Arity() Arity {
	var a Arity
	var variadic bool

	for _, p := range ps {
		switch p.Kind {
		case ParamRequired:
			a.Min++
			a.Max++
		case ParamOptional:
			a.Max++
		case ParamVariadic:
			variadic = true
		}
	}

	if variadic {
		a.Max = Unbounded
	}

	return a
}

// UsageFragment renders positional parameters for a usage line,
// for example " <aa> <bb> [<cc> [<dd>]]".
func (ps Params) UsageFragment() string {
	n := ps.Arity().Min

	var sb strings.Builder
	var open int

	for _, p := range ps {
		name := DisplayName(p.Name)

		switch p.Kind {
		case ParamRequired, ParamOptional:
			// the first Min parameters are mandatory regardless of how they were declared
			n--
			if n >= 0 {
				sb.WriteString(" <" + name + ">")
				continue
			}

			sb.WriteString(" [<" + name + ">")
			open++

		case ParamVariadic:
			sb.WriteString(" [<" + name + ">...]")
		}
	}

	sb.WriteString(strings.Repeat("]", open))

	return sb.String()
}

// DisplayName converts a parameter name into the name shown in usage lines:
// "yes_or_no" becomes "yes|no", "file__html" becomes "file.html",
// and "src_dir" becomes "src-dir".
func DisplayName(name string) string {
	name = strings.ReplaceAll(name, "_or_", "|")
	name = strings.ReplaceAll(name, "__", ".")
	name = strings.ReplaceAll(name, "_", "-")

	return name
}
