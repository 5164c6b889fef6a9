package ib

import (
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// cleanPattern puts a RootDir-relative path or glob into the slash-separated,
// "./"-free form that doublestar.Glob reports matches in.
func cleanPattern(pattern string) string {
	return path.Clean(filepath.ToSlash(pattern))
}

func (c *Config) getIsMatch(pattern string, path string) bool {
	normalizedPath := filepath.ToSlash(path)

	matches, err := doublestar.Match(filepath.ToSlash(pattern), normalizedPath)
	if err != nil {
		c.getLogger().Errorf("error: failed to match file: %v", err)
		return false
	}
	return matches
}

func (c *Config) getIsIgnored(path string, ignoredPatterns []string) bool {
	for _, pattern := range ignoredPatterns {
		if c.getIsMatch(pattern, path) {
			return true
		}
	}
	return false
}
