// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into bundler configs.
package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	ib "github.com/ffcss/ffbundle/internal/bundler"
	"github.com/ffcss/ffbundle/internal/docs"
	"github.com/ffcss/ffbundle/internal/manifest"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the parsed command line.
type Options struct {
	ManifestPath string
	RootDir      string
	Vars         map[string]string

	// Docs builds the component docs site instead of the bundles.
	Docs bool
}

// varFlags collects repeated -var name=value flags.
type varFlags map[string]string

func (v varFlags) String() string {
	pairs := make([]string, 0, len(v))
	for name, val := range v {
		pairs = append(pairs, name+"="+val)
	}
	return strings.Join(pairs, ",")
}

func (v varFlags) Set(s string) error {
	name, val, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v[strings.TrimSpace(name)] = val
	return nil
}

// Parse processes command-line arguments. It returns the parsed Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("ffbundle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ffbundle - Concatenates the Final Fantasy CSS Library into a single stylesheet.

Usage:
  ffbundle [options]

With no options, builds dist/final-fantasy.css from the built-in source list.
With -docs, renders docs/components/*.md into docs/site/generated instead.

Options:
`)
		flagSet.PrintDefaults()
	}

	vars := varFlags{}
	manifestFlag := flagSet.String("manifest", "", "Path to a "+manifest.DefaultFileName+" manifest describing the bundles to build.")
	rootFlag := flagSet.String("root", ".", "Directory the built-in source list and docs layout are resolved against. Ignored with -manifest.")
	docsFlag := flagSet.Bool("docs", false, "Build the component docs site instead of the bundles.")
	flagSet.Var(vars, "var", "Set a manifest variable (name=value), available as var.<name>. May be repeated.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	if len(vars) > 0 && *manifestFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "-var requires -manifest"}
	}

	return &Options{
		ManifestPath: *manifestFlag,
		RootDir:      *rootFlag,
		Vars:         vars,
		Docs:         *docsFlag,
	}, false, nil
}

// Bundles resolves the options into the configs to build, in build order.
func (o *Options) Bundles(logger ib.Logger) ([]*ib.Config, error) {
	if o.ManifestPath == "" {
		config := ib.DefaultConfig()
		config.RootDir = filepath.Clean(o.RootDir)
		config.Logger = logger
		return []*ib.Config{config}, nil
	}

	loader := manifest.NewLoader(o.Vars)
	loader.Logger = logger

	configs, err := loader.Load(o.ManifestPath)
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}
	return configs, nil
}

// DocsSite resolves the options into the docs site to build. A manifest
// without a docs block gets the default layout rooted at its directory.
func (o *Options) DocsSite(logger ib.Logger) (*docs.Config, error) {
	if o.ManifestPath == "" {
		config := docs.DefaultConfig()
		config.RootDir = filepath.Clean(o.RootDir)
		config.Logger = logger
		return config, nil
	}

	loader := manifest.NewLoader(o.Vars)
	loader.Logger = logger

	config, err := loader.LoadDocs(o.ManifestPath)
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}
	if config == nil {
		config = docs.DefaultConfig()
		config.RootDir = filepath.Dir(o.ManifestPath)
		config.Logger = logger
	}
	return config, nil
}
