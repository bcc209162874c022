package optparse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind tells what sort of value an option carries.
type Kind int

// Option value kinds.
const (
	KindBool Kind = iota + 1
	KindString
	KindChoice
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a parsed option value.
type Value struct {
	Kind Kind
	Bool bool
	Str  string
}

// BoolValue returns a boolean flag value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// StringValue returns a free-form string value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// ChoiceValue returns a value picked from a fixed set of choices.
func ChoiceValue(s string) Value {
	return Value{Kind: KindChoice, Str: s}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.Kind == KindBool {
		return strconv.FormatBool(v.Bool)
	}

	return v.Str
}

// Values is an ordered set of parsed option values keyed by schema key.
//
// Only options present on the command line are stored.
// The zero value is an empty set ready to use.
type Values struct {
	keys []string
	m    map[string]Value
}

// Set stores a value, keeping the position of an existing key.
func (vs *Values) Set(key string, v Value) {
	if vs.m == nil {
		vs.m = make(map[string]Value)
	}

	if _, ok := vs.m[key]; !ok {
		vs.keys = append(vs.keys, key)
	}

	vs.m[key] = v
}

// Get returns the value stored under key.
func (vs *Values) Get(key string) (Value, bool) {
	if vs == nil {
		return Value{}, false
	}

	v, ok := vs.m[key]

	return v, ok
}

// Has reports whether the option was given.
func (vs *Values) Has(key string) bool {
	_, ok := vs.Get(key)
	return ok
}

// Bool returns true if a boolean option was set to true,
// or if a string option was given at all.
func (vs *Values) Bool(key string) bool {
	v, ok := vs.Get(key)
	if !ok {
		return false
	}

	if v.Kind == KindBool {
		return v.Bool
	}

	return true
}

// StringOr returns the string value of an option, or def if it was not given.
func (vs *Values) StringOr(key, def string) string {
	v, ok := vs.Get(key)
	if !ok {
		return def
	}

	return v.String()
}

// Keys returns keys in the order options were first seen.
func (vs *Values) Keys() []string {
	if vs == nil {
		return nil
	}

	return slices.Clone(vs.keys)
}

// Len returns the number of stored values.
func (vs *Values) Len() int {
	if vs == nil {
		return 0
	}

	return len(vs.keys)
}

// GoString implements fmt.GoStringer; used by debug logging.
func (vs *Values) GoString() string {
	parts := make([]string, 0, vs.Len())
	for _, k := range vs.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%s", k, vs.m[k]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// flagValue implements pflag.Value for one option during one parse.
type flagValue struct {
	spec *flagSpec
	val  Value
	set  bool
}

// String implements pflag.Value.
func (fv *flagValue) String() string {
	return fv.val.String()
}

// Set implements pflag.Value.
func (fv *flagValue) Set(s string) error {
	switch fv.spec.mode {
	case argNone:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.val = BoolValue(b)

	case argOptional:
		if s == omitted {
			fv.val = StringValue("")
			break
		}
		fallthrough

	case argRequired:
		if len(fv.spec.Choices) == 0 {
			fv.val = StringValue(s)
			break
		}

		if !slices.Contains(fv.spec.Choices, s) {
			return fmt.Errorf("must be one of %s", strings.Join(fv.spec.Choices, ", "))
		}
		fv.val = ChoiceValue(s)
	}

	fv.set = true

	return nil
}

// Type implements pflag.Value.
func (fv *flagValue) Type() string {
	if fv.spec.mode == argNone {
		return "bool"
	}

	return "string"
}
