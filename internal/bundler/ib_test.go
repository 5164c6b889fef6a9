package ib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type logLine struct {
	level string
	msg   string
}

// recordingLogger keeps every message so tests can assert on console output.
type recordingLogger struct {
	lines []logLine
}

func (l *recordingLogger) record(level, msg string) {
	l.lines = append(l.lines, logLine{level: level, msg: msg})
}

func (l *recordingLogger) Infof(format string, v ...any) {
	l.record("info", fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warning(v ...any) {
	l.record("warning", fmt.Sprint(v...))
}

func (l *recordingLogger) Errorf(format string, v ...any) {
	l.record("error", fmt.Sprintf(format, v...))
}

func (l *recordingLogger) messages(level string) []string {
	var msgs []string
	for _, line := range l.lines {
		if line.level == level {
			msgs = append(msgs, line.msg)
		}
	}
	return msgs
}

// testEnv holds our testing environment
type testEnv struct {
	rootDir string
	config  *Config
	log     *recordingLogger
}

// setupTestEnv creates a new test environment rooted in a temp dir
func setupTestEnv(t *testing.T, sources ...string) *testEnv {
	t.Helper()

	rootDir := t.TempDir()
	log := &recordingLogger{}

	config := &Config{
		Name:    "test-bundle",
		Title:   "Test Library",
		Version: "1.0",
		RootDir: rootDir,
		OutDir:  "dist",
		Sources: sources,
		Logger:  log,
	}

	return &testEnv{
		rootDir: rootDir,
		config:  config,
		log:     log,
	}
}

// createTestFile creates a file with given content in the test environment
func (env *testEnv) createTestFile(t *testing.T, relativePath, content string) {
	t.Helper()

	fullPath := filepath.Join(env.rootDir, filepath.FromSlash(relativePath))
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

func (env *testEnv) readFile(t *testing.T, relativePath string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(env.rootDir, filepath.FromSlash(relativePath)))
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", relativePath, err)
	}
	return string(content)
}

func (env *testEnv) readOutput(t *testing.T) string {
	t.Helper()
	return env.readFile(t, "dist/test-bundle.css")
}

// expectedBundle builds the exact bundle text for the given name/content pairs.
func expectedBundle(blocks ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("/* Test Library v1.0 - Bundled */\n\n")
	for _, b := range blocks {
		sb.WriteString("/* --- " + b[0] + " --- */\n")
		sb.WriteString(b[1])
		sb.WriteString("\n\n")
	}
	return sb.String()
}
