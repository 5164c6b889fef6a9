package ib

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	defaultOutDir = "dist"
	cssExt        = ".css"
	blockSep      = "\n\n"
)

func (c *Config) getCleanRootDir() string {
	return filepath.Clean(c.RootDir)
}

func (c *Config) getOutDir() string {
	if c.OutDir == "" {
		return defaultOutDir
	}
	return filepath.Clean(filepath.FromSlash(c.OutDir))
}

func (c *Config) getTitle() string {
	if c.Title == "" {
		return c.Name
	}
	return c.Title
}

func (c *Config) getLogger() Logger {
	if c.Logger == nil {
		return Log
	}
	return c.Logger
}

// getOutputRef is the output path as shown to humans, relative to the RootDir.
func (c *Config) getOutputRef() string {
	return filepath.Join(c.getOutDir(), c.Name+cssExt)
}

func (c *Config) getOutputPath() string {
	return filepath.Join(c.getCleanRootDir(), c.getOutputRef())
}

// resolve turns a RootDir-relative, possibly slash-separated path into a
// path usable with the os package.
func (c *Config) resolve(relPath string) string {
	return filepath.Join(c.getCleanRootDir(), filepath.FromSlash(relPath))
}

func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("bundle name is required")
	}
	if strings.ContainsAny(c.Name, `/\`) {
		return fmt.Errorf("bundle name %q must not contain path separators", c.Name)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("bundle %q has no sources", c.Name)
	}
	for i, src := range c.Sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("bundle %q: source %d is empty", c.Name, i)
		}
	}
	return nil
}

func header(title, version string) string {
	return fmt.Sprintf("/* %s v%s - Bundled */\n\n", title, version)
}

func banner(relPath string) string {
	return fmt.Sprintf("/* --- %s --- */\n", filepath.Base(filepath.FromSlash(relPath)))
}
