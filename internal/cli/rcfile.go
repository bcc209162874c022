package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/organic-programming/cliapp/pkg/cliapp"
)

const (
	rcFileName = ".cliapp.yaml"
	rcEnv      = "CLIAPP_CONFIG"
)

// rcFile holds settings of the sample program itself.
// Help formatting keys of the same file are read by cliapp.Config.Load.
type rcFile struct {
	Clean cleanPatterns `yaml:"clean"`
}

type cleanPatterns struct {
	Garbage []string `yaml:"garbage"`
	Product []string `yaml:"product"`
}

// rcPath returns the settings file path and whether it was set explicitly.
func rcPath() (string, bool) {
	if p := strings.TrimSpace(os.Getenv(rcEnv)); p != "" {
		return p, true
	}

	return rcFileName, false
}

// loadRC overlays the settings file on config and returns the program settings.
// A missing .cliapp.yaml is not an error; a missing $CLIAPP_CONFIG file is.
func loadRC(config *cliapp.Config) (*rcFile, error) {
	rc := &rcFile{
		Clean: cleanPatterns{
			Garbage: slices.Clone(defaultGarbage),
			Product: slices.Clone(defaultProduct),
		},
	}

	path, explicit := rcPath()

	if err := config.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return rc, nil
		}
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, rc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, patterns := range [][]string{rc.Clean.Garbage, rc.Clean.Product} {
		if _, err := compileRules(patterns); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return rc, nil
}
