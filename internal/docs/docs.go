// Package docs renders the component documentation pages (one Markdown file
// per component) into static HTML through a shared page template, plus an
// index page linking them all.
package docs

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	ib "github.com/ffcss/ffbundle/internal/bundler"
)

const (
	defaultSourceDir = "docs/components"
	defaultTemplate  = "docs/site/template.html"
	defaultOutDir    = "docs/site/generated"

	mdExt   = ".md"
	htmlExt = ".html"

	titlePlaceholder   = "{{title}}"
	contentPlaceholder = "{{content}}"
)

type Config struct {
	// RootDir is the directory the other paths are resolved against. We run
	// filepath.Clean on it, so blank means ".".
	RootDir string

	// SourceDir holds the component Markdown files. Defaults to
	// "docs/components".
	SourceDir string

	/*
		Template is the HTML page every component is rendered into. The first
		"{{title}}" is replaced with the page title and the first
		"{{content}}" with the rendered Markdown. Defaults to
		"docs/site/template.html".
	*/
	Template string

	// OutDir receives one .html page per component plus index.html.
	// Defaults to "docs/site/generated".
	OutDir string

	Logger ib.Logger
}

// DefaultConfig returns the docs site layout of the Final Fantasy CSS Library.
func DefaultConfig() *Config {
	return &Config{
		RootDir:   ".",
		SourceDir: defaultSourceDir,
		Template:  defaultTemplate,
		OutDir:    defaultOutDir,
	}
}

type page struct {
	Name  string
	Title string
	Path  string
}

var h1Re = regexp.MustCompile(`(?m)^# (.*)$`)

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Docs Index</title><link rel="stylesheet" href="../styles.css"></head><body><div style="max-width:900px;margin:20px">
<h1>Component docs</h1>
<ul>
{{- range .}}
<li><a href="{{.Path}}">{{.Title}}</a></li>
{{- end}}
</ul>
<p><a href="../index.html">Open interactive docs</a></p>
</div></body></html>
`))

// Build renders every .md file in SourceDir, in file name order, then writes
// the index. The first error stops the run.
func (c *Config) Build() error {
	log := c.getLogger()

	outDir := c.resolve(c.OutDir, defaultOutDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("error making docs output directory: %w", err)
	}

	templatePath := c.resolve(c.Template, defaultTemplate)
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("error reading docs template %s: %w", templatePath, err)
	}

	sourceDir := c.resolve(c.SourceDir, defaultSourceDir)
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("error reading docs source directory: %w", err)
	}

	var pages []page
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != mdExt {
			continue
		}

		p, err := renderPage(string(tmpl), filepath.Join(sourceDir, entry.Name()), outDir)
		if err != nil {
			return err
		}
		log.Infof("Written %s", filepath.Join(outDir, p.Name+htmlExt))
		pages = append(pages, p)
	}

	var index bytes.Buffer
	if err := indexTmpl.Execute(&index, pages); err != nil {
		return fmt.Errorf("error rendering docs index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index"+htmlExt), index.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing docs index: %w", err)
	}

	log.Infof("Docs generated to %s", outDir)
	return nil
}

func renderPage(tmpl, srcPath, outDir string) (page, error) {
	name := strings.TrimSuffix(filepath.Base(srcPath), mdExt)

	md, err := os.ReadFile(srcPath)
	if err != nil {
		return page{}, fmt.Errorf("error reading %s: %w", srcPath, err)
	}

	var body bytes.Buffer
	if err := goldmark.Convert(md, &body); err != nil {
		return page{}, fmt.Errorf("error rendering %s: %w", srcPath, err)
	}

	title := pageTitle(md, name)
	out := strings.Replace(tmpl, titlePlaceholder, template.HTMLEscapeString(title), 1)
	out = strings.Replace(out, contentPlaceholder, body.String(), 1)

	if err := os.WriteFile(filepath.Join(outDir, name+htmlExt), []byte(out), 0644); err != nil {
		return page{}, fmt.Errorf("error writing page for %s: %w", srcPath, err)
	}

	return page{Name: name, Title: title, Path: "./" + name + htmlExt}, nil
}

// pageTitle is the text of the first level-one heading, or fallback.
func pageTitle(md []byte, fallback string) string {
	m := h1Re.FindSubmatch(md)
	if m == nil {
		return fallback
	}
	if title := strings.TrimSpace(string(m[1])); title != "" {
		return title
	}
	return fallback
}

func (c *Config) getLogger() ib.Logger {
	if c.Logger == nil {
		return ib.Log
	}
	return c.Logger
}

func (c *Config) resolve(relPath, fallback string) string {
	if relPath == "" {
		relPath = fallback
	}
	return filepath.Join(filepath.Clean(c.RootDir), filepath.FromSlash(relPath))
}
