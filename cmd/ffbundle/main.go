package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sjc5/kit/pkg/colorlog"

	ib "github.com/ffcss/ffbundle/internal/bundler"
	"github.com/ffcss/ffbundle/internal/cli"
)

func main() {
	logger := &colorlog.Log{}

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		logger.Errorf("error: %v", err)
		os.Exit(1)
	}
}

// run builds everything the arguments ask for. Failures are returned, not
// logged, so main reports each one exactly once.
func run(args []string, usageW io.Writer, logger ib.Logger) error {
	opts, shouldExit, err := cli.Parse(args, usageW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	if opts.Docs {
		site, err := opts.DocsSite(logger)
		if err != nil {
			return err
		}
		if err := site.Build(); err != nil {
			return fmt.Errorf("failed to build docs: %w", err)
		}
		return nil
	}

	bundles, err := opts.Bundles(logger)
	if err != nil {
		return err
	}

	for _, b := range bundles {
		if err := b.Build(); err != nil {
			return fmt.Errorf("failed to build %s: %w", b.Name, err)
		}
	}
	return nil
}
