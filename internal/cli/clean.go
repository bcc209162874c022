package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// Default patterns of the clean action.
// A pattern without a slash matches file names at any depth;
// other patterns match slash-separated paths relative to the cleaned directory.
var (
	defaultGarbage = []string{"*~", "*.bak", "*.tmp", "*.swp", ".DS_Store"}
	defaultProduct = []string{"build", "dist", "*.gem"}
)

type cleanRule struct {
	pattern  string
	g        glob.Glob
	hasSlash bool
}

func compileRules(patterns []string) ([]cleanRule, error) {
	rules := make([]cleanRule, 0, len(patterns))

	for _, p := range patterns {
		p = strings.Trim(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}

		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid clean pattern %q: %w", p, err)
		}

		rules = append(rules, cleanRule{
			pattern:  p,
			g:        g,
			hasSlash: strings.Contains(p, "/"),
		})
	}

	return rules, nil
}

func (r cleanRule) match(rel string) bool {
	if !r.hasSlash {
		return r.g.Match(path.Base(rel))
	}

	return r.g.Match(rel)
}

// cleaner removes files and directories matching its rules.
type cleaner struct {
	rules  []cleanRule
	dryRun bool
	out    io.Writer
	l      *zap.Logger
}

// clean walks root and removes every matching entry, printing "rm -rf <path>"
// for each one. Matching directories are removed as a whole.
// It returns removed paths in walk order.
func (c *cleaner) clean(root string) ([]string, error) {
	var removed []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !c.matches(rel) {
			if d.IsDir() && d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		fmt.Fprintf(c.out, "rm -rf %s\n", filepath.ToSlash(p))
		removed = append(removed, filepath.ToSlash(p))

		if c.dryRun {
			c.l.Debug("Skipped removal", zap.String("path", p))
		} else {
			if err := os.RemoveAll(p); err != nil {
				return err
			}
			c.l.Debug("Removed", zap.String("path", p))
		}

		if d.IsDir() {
			return filepath.SkipDir
		}

		return nil
	})

	return removed, err
}

func (c *cleaner) matches(rel string) bool {
	for _, r := range c.rules {
		if r.match(rel) {
			return true
		}
	}

	return false
}
