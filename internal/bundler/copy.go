package ib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sjc5/kit/pkg/fsutil"
)

func (c *Config) copyBundle() error {
	for _, dir := range c.CopyTo {
		destDir := c.resolve(dir)
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}

		dest := filepath.Join(destDir, c.Name+cssExt)
		if dest == c.getOutputPath() {
			continue
		}
		if err := fsutil.CopyFile(c.getOutputPath(), dest); err != nil {
			return fmt.Errorf("error copying bundle to %s: %w", dir, err)
		}

		c.getLogger().Infof("  Copied to %s", filepath.Join(filepath.FromSlash(dir), c.Name+cssExt))
	}
	return nil
}
