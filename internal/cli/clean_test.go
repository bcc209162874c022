package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// seedTree creates files (and their parent directories) under root.
func seedTree(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o644))
	}
}

func exists(t *testing.T, root, f string) bool {
	t.Helper()

	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(f)))
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)

	return true
}

var testTree = []string{
	".DS_Store",
	"a.txt",
	"a.txt~",
	"build/out.bin",
	"sub/b.bak",
	"sub/c.go",
	".git/index.bak",
}

func TestCleanAction(t *testing.T) {
	t.Run("Garbage", func(t *testing.T) {
		root := t.TempDir()
		seedTree(t, root, testTree...)

		code, stdout, stderr := runForTest(t, root, "clean")
		require.Equal(t, 0, code, stderr)

		assert.Equal(t, "rm -rf .DS_Store\nrm -rf a.txt~\nrm -rf sub/b.bak\n", stdout)
		assert.False(t, exists(t, root, "a.txt~"))
		assert.False(t, exists(t, root, "sub/b.bak"))
		assert.True(t, exists(t, root, "a.txt"))
		assert.True(t, exists(t, root, "sub/c.go"))
		assert.True(t, exists(t, root, "build/out.bin"))
		assert.True(t, exists(t, root, ".git/index.bak"), ".git is not descended into")
	})

	t.Run("All", func(t *testing.T) {
		root := t.TempDir()
		seedTree(t, root, testTree...)

		code, stdout, stderr := runForTest(t, root, "clean", "-a")
		require.Equal(t, 0, code, stderr)

		assert.Equal(t, "rm -rf .DS_Store\nrm -rf a.txt~\nrm -rf build\nrm -rf sub/b.bak\n", stdout)
		assert.False(t, exists(t, root, "build"))
		assert.True(t, exists(t, root, "sub/c.go"))
	})

	t.Run("DryRun", func(t *testing.T) {
		root := t.TempDir()
		seedTree(t, root, testTree...)

		code, stdout, stderr := runForTest(t, root, "clean", "--all", "-n")
		require.Equal(t, 0, code, stderr)

		assert.Equal(t, "rm -rf .DS_Store\nrm -rf a.txt~\nrm -rf build\nrm -rf sub/b.bak\n", stdout)
		for _, f := range testTree {
			assert.True(t, exists(t, root, f), f)
		}
	})

	t.Run("Dir", func(t *testing.T) {
		root := t.TempDir()
		seedTree(t, root, testTree...)

		code, stdout, stderr := runForTest(t, root, "clean", "sub")
		require.Equal(t, 0, code, stderr)

		assert.Equal(t, "rm -rf sub/b.bak\n", stdout)
		assert.True(t, exists(t, root, "a.txt~"))
	})

	t.Run("MissingDir", func(t *testing.T) {
		code, stdout, stderr := runForTest(t, t.TempDir(), "clean", "nosuchdir")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "clean nosuchdir:")
	})
}

func TestCleanRules(t *testing.T) {
	t.Parallel()

	rules, err := compileRules([]string{"*.bak", "docs/**/*.html", " /tmp/ ", ""})
	require.NoError(t, err)
	require.Len(t, rules, 3)

	c := &cleaner{rules: rules}

	for rel, expected := range map[string]bool{
		"x.bak":              true,
		"deep/down/x.bak":    true,
		"x.bak.txt":          false,
		"docs/a/index.html":  true,
		"docs/a/b/page.html": true,
		"src/docs/a/x.html":  false,
		"tmp":                true,
		"src/tmp":            true,
		"tmpfile":            false,
	} {
		assert.Equal(t, expected, c.matches(rel), rel)
	}
}

func TestCleanerDryRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	seedTree(t, root, "a.tmp", "b/c.tmp", "b/d.go")

	rules, err := compileRules(defaultGarbage)
	require.NoError(t, err)

	var out bytes.Buffer
	c := &cleaner{rules: rules, dryRun: true, out: &out, l: zaptest.NewLogger(t)}

	removed, err := c.clean(root)
	require.NoError(t, err)

	expected := []string{
		filepath.ToSlash(filepath.Join(root, "a.tmp")),
		filepath.ToSlash(filepath.Join(root, "b", "c.tmp")),
	}
	assert.Equal(t, expected, removed)
	assert.True(t, exists(t, root, "a.tmp"))
	assert.True(t, exists(t, root, "b/c.tmp"))
}
