package ib

import (
	"fmt"
	"os"
	"path/filepath"
)

// SetupDistDir makes sure rootDir/outDir exists. It never removes or
// touches anything already inside it.
func SetupDistDir(rootDir, outDir string) error {
	path := filepath.Join(filepath.Clean(rootDir), filepath.FromSlash(outDir))
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("error making output directory: %w", err)
	}
	return nil
}
