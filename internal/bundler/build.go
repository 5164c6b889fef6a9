package ib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("invalid UTF-8")

type buildError struct {
	task string
	err  error
}

func (e buildError) Error() string {
	return fmt.Sprintf("error during build task %s: %v", e.task, e.err)
}

func (e buildError) Unwrap() error {
	return e.err
}

// Build concatenates the configured sources, in order, into
// OutDir/Name.css. Missing sources are skipped with a warning. Anything
// else that goes wrong stops the build, and whatever was already written
// to the bundle is left on disk.
func (c *Config) Build() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := c.getLogger()

	if err := SetupDistDir(c.getCleanRootDir(), c.getOutDir()); err != nil {
		return buildError{task: "setupDistDir", err: err}
	}

	log.Infof("Building %s...", c.getOutputRef())

	if err := c.writeBundle(); err != nil {
		return buildError{task: "writeBundle", err: err}
	}

	if c.Audit != nil {
		if err := c.auditSources(); err != nil {
			return buildError{task: "auditSources", err: err}
		}
	}

	if err := c.copyBundle(); err != nil {
		return buildError{task: "copyBundle", err: err}
	}

	log.Infof("Build complete!")
	return nil
}

func (c *Config) writeBundle() (err error) {
	out, err := os.Create(c.getOutputPath())
	if err != nil {
		return fmt.Errorf("error creating bundle file: %w", err)
	}
	// Whatever was written before a failure is flushed and left in place.
	w := bufio.NewWriter(out)
	defer func() {
		flushErr := w.Flush()
		closeErr := out.Close()
		if err != nil {
			return
		}
		if flushErr != nil {
			err = fmt.Errorf("error writing bundle file: %w", flushErr)
		} else if closeErr != nil {
			err = fmt.Errorf("error closing bundle file: %w", closeErr)
		}
	}()

	return c.writeSources(w)
}

// writeSources writes the header and one block per present source to w,
// stopping at the first read or write error.
func (c *Config) writeSources(w io.Writer) error {
	log := c.getLogger()

	if _, err := io.WriteString(w, header(c.getTitle(), c.Version)); err != nil {
		return fmt.Errorf("error writing bundle file: %w", err)
	}

	for _, src := range c.Sources {
		content, found, err := c.readSource(src)
		if err != nil {
			return err
		}
		if !found {
			log.Warning("  WARNING: File not found: " + src)
			continue
		}

		log.Infof("  Adding %s", src)
		if err := writeBlock(w, src, content); err != nil {
			return fmt.Errorf("error writing %s to bundle file: %w", src, err)
		}
	}

	return nil
}

func writeBlock(w io.Writer, relPath string, content []byte) error {
	if _, err := io.WriteString(w, banner(relPath)); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	_, err := io.WriteString(w, blockSep)
	return err
}

// readSource reports found=false, with no error, only when the file does
// not exist.
func (c *Config) readSource(relPath string) (content []byte, found bool, err error) {
	content, err = os.ReadFile(c.resolve(relPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading %s: %w", relPath, err)
	}
	if !utf8.Valid(content) {
		return nil, false, fmt.Errorf("error decoding %s: %w", relPath, ErrInvalidUTF8)
	}
	return content, true, nil
}
