package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	{Key: "help", Short: "-h", Long: "--help", Desc: "print help message"},
	{Key: "lang", Short: "-l", Long: "--lang=<en|fr|it>", Desc: "language", Choices: []string{"en", "it", "fr"}},
	{Key: "indent", Long: "--indent[=<n>]", Desc: "indent width"},
	{Key: "quiet", Short: "-q", Desc: "no output"},
}

func newTestParser(t *testing.T) *Parser {
	t.Helper()

	p, err := NewFromSchema("test", testSchema, 22, "  ")
	require.NoError(t, err)

	return p
}

func TestOrder(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	values, rest, err := p.Order([]string{"-h", "--lang=fr", "hello", "--indent", "-q"})
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "--indent", "-q"}, rest)
	assert.Equal(t, []string{"help", "lang"}, values.Keys())
	assert.True(t, values.Bool("help"))
	assert.Equal(t, "fr", values.StringOr("lang", "en"))

	v, ok := values.Get("lang")
	require.True(t, ok)
	assert.Equal(t, KindChoice, v.Kind)

	assert.False(t, values.Has("indent"))
	assert.False(t, values.Has("quiet"))
}

func TestOrderNoOptions(t *testing.T) {
	t.Parallel()

	p := New("empty", 22, "  ")

	values, rest, err := p.Order([]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, values.Len())
	assert.Equal(t, []string{}, rest)
}

func TestPermute(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	values, rest, err := p.Permute([]string{"Alice", "--lang", "it", "Bob", "--indent", "-q", "Carol"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, rest)
	assert.Equal(t, "it", values.StringOr("lang", ""))

	indent, ok := values.Get("indent")
	require.True(t, ok)
	assert.Equal(t, StringValue(""), indent)

	assert.True(t, values.Bool("quiet"))
}

func TestPermuteOptionalArgument(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	values, rest, err := p.Permute([]string{"--indent=4", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, rest)
	assert.Equal(t, "4", values.StringOr("indent", ""))
}

func TestPermuteDoubleDash(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	values, rest, err := p.Permute([]string{"a", "--", "-q", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "-q", "b"}, rest)
	assert.False(t, values.Has("quiet"))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	for name, tokens := range map[string][]string{
		"Unknown":       {"--unknown"},
		"UnknownShort":  {"-x"},
		"BadChoice":     {"--lang=de"},
		"MissingArg":    {"--lang"},
		"BadBoolean":    {"--help=maybe"},
		"MissingArgEnd": {"arg", "-l"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := p.Permute(tokens)
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
		})
	}

	t.Run("BadChoiceMessage", func(t *testing.T) {
		t.Parallel()

		_, _, err := p.Permute([]string{"-l", "de"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of en, it, fr")
	})
}

func TestHelpNotDefined(t *testing.T) {
	t.Parallel()

	p := New("nohelp", 22, "  ")
	require.NoError(t, p.On(Spec{Key: "all", Short: "-a", Long: "--all", Desc: "all"}))

	for _, token := range []string{"-h", "--help"} {
		_, _, err := p.Order([]string{token})

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "unknown flag: --help", pe.Error())
	}
}

func TestReuse(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	first, _, err := p.Permute([]string{"-q"})
	require.NoError(t, err)
	assert.True(t, first.Has("quiet"))

	second, _, err := p.Permute([]string{"-h"})
	require.NoError(t, err)
	assert.False(t, second.Has("quiet"))
	assert.True(t, second.Has("help"))
}

func TestOn(t *testing.T) {
	t.Parallel()

	t.Run("Duplicates", func(t *testing.T) {
		t.Parallel()

		p := New("dup", 22, "  ")
		require.NoError(t, p.On(Spec{Key: "all", Short: "-a", Long: "--all"}))
		assert.Error(t, p.On(Spec{Key: "all2", Long: "--all"}))
		assert.Error(t, p.On(Spec{Key: "any", Short: "-a", Long: "--any"}))
		assert.Equal(t, 1, p.Len())
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()

		p := New("invalid", 22, "  ")
		assert.Error(t, p.On(Spec{}))
		assert.Error(t, p.On(Spec{Key: "x", Short: "x"}))
		assert.Error(t, p.On(Spec{Key: "x", Short: "--x"}))
		assert.Error(t, p.On(Spec{Key: "x", Long: "-x"}))
		assert.Error(t, p.On(Spec{Key: "x", Long: "--=<v>"}))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("Lookup", func(t *testing.T) {
		t.Parallel()

		p := newTestParser(t)
		assert.True(t, p.DefinesLong("help"))
		assert.True(t, p.DefinesLong("quiet"))
		assert.True(t, p.DefinesShort("l"))
		assert.False(t, p.DefinesShort("x"))
		assert.False(t, p.DefinesLong("lang=<en|fr|it>"))
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	expected := []string{
		"  -h, --help             print help message\n",
		"  -l, --lang=<en|fr|it>  language\n",
		"      --indent[=<n>]     indent width\n",
		"  -q                     no output\n",
	}
	assert.Equal(t, expected, p.Summarize())

	narrow, err := NewFromSchema("narrow", testSchema[:2], 14, "  | ")
	require.NoError(t, err)

	expected = []string{
		"  | -h, --help     print help message\n",
		"  | -l, --lang=<en|fr|it>\n",
		"  |                language\n",
	}
	assert.Equal(t, expected, narrow.Summarize())

	assert.Empty(t, New("empty", 22, "  ").Summarize())
}
