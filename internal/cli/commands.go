// Package cli implements the cliapp sample program: its global options,
// actions and settings file.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/organic-programming/cliapp/internal/logging"
	"github.com/organic-programming/cliapp/pkg/cliapp"
)

const (
	appName = "CLIApp"
	appDesc = "sample application built with cliapp"
)

var globalSchema = cliapp.Schema{
	{Key: cliapp.KeyHelp, Short: "-h", Long: "--help", Desc: "print help message"},
	{Key: cliapp.KeyVersion, Short: "-V", Long: "--version", Desc: "print version number"},
	{Key: cliapp.KeyList, Short: "-l", Long: "--list", Desc: "list action names"},
	{Key: "debug", Short: "-D", Long: "--debug", Desc: "debug mode"},
}

// Run dispatches the command line and returns an exit code.
func Run(args []string, version string) int {
	return run(args, version, os.Stdout, os.Stderr)
}

func run(args []string, version string, stdout, stderr io.Writer) int {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	l := logging.New(level, writeSyncer(stderr))
	defer l.Sync() //nolint:errcheck

	app, err := newApp(version, level, l, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		return 1
	}

	return app.Main(args, nil)
}

// sample holds state shared by the sample actions.
type sample struct {
	rc     *rcFile
	l      *zap.Logger
	stdout io.Writer
}

func newApp(version string, level zap.AtomicLevel, l *zap.Logger, stdout, stderr io.Writer) (*cliapp.Application, error) {
	config := cliapp.NewConfig(appName, appDesc)
	config.Version = version

	rc, err := loadRC(config)
	if err != nil {
		return nil, err
	}

	app := cliapp.NewApplication(config, &cliapp.ApplicationOpts{
		GlobalHandler: func(gopts *cliapp.Options) (cliapp.Result, error) {
			if gopts.Bool("debug") {
				level.SetLevel(zap.DebugLevel)
				l.Debug("Debug logging enabled")
			}

			return cliapp.NotHandled, nil
		},
		Logger: l.Named("cliapp"),
		Stdout: stdout,
		Stderr: stderr,
	})

	app.GlobalOptions(globalSchema)

	s := &sample{
		rc:     rc,
		l:      l.Named("action"),
		stdout: stdout,
	}

	app.Action("hello", "greeting message", cliapp.Schema{
		{Key: "lang", Short: "-l", Long: "--lang=<en|fr|it>", Desc: "language", Choices: []string{"en", "it", "fr"}},
	}, cliapp.Params{cliapp.Optional("name")}, s.hello)

	app.Action("clean", "delete garbage files (& product files too if '-a')", cliapp.Schema{
		{Key: "all", Short: "-a", Long: "--all", Desc: "delete product files, too"},
		{Key: "dry_run", Short: "-n", Long: "--dry-run", Desc: "print paths without deleting"},
	}, cliapp.Params{cliapp.Optional("dir")}, s.clean)

	app.Action("skeleton", "print an example program", cliapp.Schema{
		{Key: "output", Short: "-o", Long: "--output=<file>", Desc: "write to file instead of stdout"},
	}, nil, s.skeleton)

	return app, nil
}

func (s *sample) hello(args []string, opts *cliapp.Options) error {
	name := "world"
	if len(args) > 0 {
		name = args[0]
	}

	switch lang := opts.StringOr("lang", "en"); lang {
	case "en":
		fmt.Fprintf(s.stdout, "Hello, %s!\n", name)
	case "fr":
		fmt.Fprintf(s.stdout, "Bonjour, %s!\n", name)
	case "it":
		fmt.Fprintf(s.stdout, "Chao, %s!\n", name)
	default:
		return fmt.Errorf("internal error: lang=%q", lang)
	}

	return nil
}

func (s *sample) clean(args []string, opts *cliapp.Options) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	patterns := s.rc.Clean.Garbage
	if opts.Bool("all") {
		patterns = append(patterns[:len(patterns):len(patterns)], s.rc.Clean.Product...)
	}

	rules, err := compileRules(patterns)
	if err != nil {
		return err
	}

	c := &cleaner{
		rules:  rules,
		dryRun: opts.Bool("dry_run"),
		out:    s.stdout,
		l:      s.l.With(zap.String("action", "clean")),
	}

	removed, err := c.clean(root)
	if err != nil {
		return fmt.Errorf("clean %s: %w", root, err)
	}

	s.l.Debug("Clean finished", zap.Int("removed", len(removed)), zap.Bool("dry_run", c.dryRun))

	return nil
}

func (s *sample) skeleton(_ []string, opts *cliapp.Options) error {
	output := opts.StringOr("output", "")
	if output == "" {
		_, err := io.WriteString(s.stdout, cliapp.Skeleton())
		return err
	}

	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err = io.WriteString(f, cliapp.Skeleton()); err != nil {
		_ = f.Close()
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(s.stdout, "Created %s\n", output)

	return nil
}

// writeSyncer keeps *os.File as is so that terminal detection still works.
func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if ws, ok := w.(zapcore.WriteSyncer); ok {
		return ws
	}

	return zapcore.AddSync(w)
}
