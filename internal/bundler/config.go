package ib

import (
	"github.com/sjc5/kit/pkg/colorlog"
)

// Logger is the part of colorlog.Logger the bundler writes to, so tests can
// swap in a recorder.
type Logger interface {
	Infof(format string, v ...any)
	Warning(v ...any)
	Errorf(format string, v ...any)
}

// Log is used by any Config whose Logger is nil.
var Log Logger = &colorlog.Log{}

type Config struct {
	// Name is the bundle's file name without extension, e.g. "final-fantasy"
	// for "dist/final-fantasy.css". Required.
	Name string

	// Title is the human-readable bundle name written into the header
	// comment. Defaults to Name.
	Title string

	Version string

	/*
		RootDir is the directory that Sources, OutDir, CopyTo and the audit
		pattern are resolved against. Set it relative to wherever you run
		the build from (or make it absolute). We do run filepath.Clean on
		the RootDir, so if you leave it blank, it will default to ".".
	*/
	RootDir string

	// Set OutDir relative to the RootDir. Defaults to "dist".
	OutDir string

	/*
		Sources are the stylesheets to concatenate, relative to the RootDir.
		Order matters: later files win the cascade, so they are written
		exactly in the order listed here. Missing files are skipped with a
		warning. Slash-separated paths work on every OS.
	*/
	Sources []string

	// CopyTo lists extra directories (relative to the RootDir) that get a
	// copy of the finished bundle, e.g. a docs site that links to it.
	CopyTo []string

	Audit *AuditConfig

	Logger Logger
}

type AuditConfig struct {
	Pattern string   // Glob pattern (set relative to Config.RootDir), e.g. "css/**/*.css"
	Ignore  []string // Glob patterns (set relative to Config.RootDir)
}
