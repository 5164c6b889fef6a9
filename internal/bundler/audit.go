package ib

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindUnlistedSources returns the files under the RootDir that match the
// audit pattern but are neither listed in Sources nor ignored. Paths are
// slash-separated and sorted.
func (c *Config) FindUnlistedSources() ([]string, error) {
	if c.Audit == nil || c.Audit.Pattern == "" {
		return nil, nil
	}

	pattern := cleanPattern(c.Audit.Pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid audit pattern %q", c.Audit.Pattern)
	}

	ignore := make([]string, 0, len(c.Audit.Ignore))
	for _, p := range c.Audit.Ignore {
		cleaned := cleanPattern(p)
		if !doublestar.ValidatePattern(cleaned) {
			return nil, fmt.Errorf("invalid audit ignore pattern %q", p)
		}
		ignore = append(ignore, cleaned)
	}

	rootFS := os.DirFS(c.getCleanRootDir())
	matches, err := doublestar.Glob(rootFS, pattern)
	if err != nil {
		return nil, fmt.Errorf("error globbing %q: %w", pattern, err)
	}

	listed := make(map[string]bool, len(c.Sources))
	for _, src := range c.Sources {
		listed[cleanPattern(src)] = true
	}

	var unlisted []string
	for _, m := range matches {
		if listed[m] || c.getIsIgnored(m, ignore) {
			continue
		}
		info, err := fs.Stat(rootFS, m)
		if err != nil {
			return nil, fmt.Errorf("error checking %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		unlisted = append(unlisted, m)
	}
	sort.Strings(unlisted)

	return unlisted, nil
}

func (c *Config) auditSources() error {
	unlisted, err := c.FindUnlistedSources()
	if err != nil {
		return err
	}
	for _, u := range unlisted {
		c.getLogger().Warning("  NOTICE: Unlisted source: " + u)
	}
	return nil
}
