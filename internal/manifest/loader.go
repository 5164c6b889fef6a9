// Package manifest loads bundle definitions from HCL files, so a project can
// describe its bundles declaratively instead of in Go.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	ib "github.com/ffcss/ffbundle/internal/bundler"
	"github.com/ffcss/ffbundle/internal/docs"
)

// DefaultFileName is the manifest looked up when none is given explicitly.
const DefaultFileName = "bundle.hcl"

// fileRoot is the top-level shape of a manifest file.
type fileRoot struct {
	Bundles []*bundleBlock `hcl:"bundle,block"`
	Docs    []*docsBlock   `hcl:"docs,block"`
}

type bundleBlock struct {
	Name    string      `hcl:"name,label"`
	Title   string      `hcl:"title,optional"`
	Version string      `hcl:"version,optional"`
	OutDir  string      `hcl:"out_dir,optional"`
	Sources []string    `hcl:"sources"`
	CopyTo  []string    `hcl:"copy_to,optional"`
	Audit   *auditBlock `hcl:"audit,block"`
}

type auditBlock struct {
	Pattern string   `hcl:"pattern"`
	Ignore  []string `hcl:"ignore,optional"`
}

type docsBlock struct {
	SourceDir string `hcl:"source_dir,optional"`
	Template  string `hcl:"template,optional"`
	OutDir    string `hcl:"out_dir,optional"`
}

// Loader turns manifest files into bundler configs.
type Loader struct {
	// Vars are exposed to the manifest as var.<name>.
	Vars map[string]string

	Logger ib.Logger
}

// NewLoader creates a loader exposing vars to manifests. vars may be nil.
func NewLoader(vars map[string]string) *Loader {
	return &Loader{Vars: vars}
}

// Load parses the manifest at path and returns one config per bundle block,
// in file order. Every config is rooted at the manifest's directory.
func (l *Loader) Load(path string) ([]*ib.Config, error) {
	root, err := l.decode(path)
	if err != nil {
		return nil, err
	}

	if len(root.Bundles) == 0 {
		return nil, fmt.Errorf("no bundle blocks found in %s", path)
	}

	rootDir := filepath.Dir(path)
	seen := make(map[string]bool, len(root.Bundles))
	configs := make([]*ib.Config, 0, len(root.Bundles))

	for _, b := range root.Bundles {
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicate bundle %q in %s", b.Name, path)
		}
		seen[b.Name] = true
		configs = append(configs, l.translateBundle(b, rootDir))
	}

	return configs, nil
}

// LoadDocs returns the docs site declared by the manifest at path, rooted
// at the manifest's directory, or nil if it declares none.
func (l *Loader) LoadDocs(path string) (*docs.Config, error) {
	root, err := l.decode(path)
	if err != nil {
		return nil, err
	}

	switch len(root.Docs) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("more than one docs block in %s", path)
	}

	d := root.Docs[0]
	return &docs.Config{
		RootDir:   filepath.Dir(path),
		SourceDir: d.SourceDir,
		Template:  d.Template,
		OutDir:    d.OutDir,
		Logger:    l.Logger,
	}, nil
}

func (l *Loader) decode(path string) (*fileRoot, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return &root, nil
}

func (l *Loader) translateBundle(b *bundleBlock, rootDir string) *ib.Config {
	config := &ib.Config{
		Name:    b.Name,
		Title:   b.Title,
		Version: b.Version,
		RootDir: rootDir,
		OutDir:  b.OutDir,
		Sources: b.Sources,
		CopyTo:  b.CopyTo,
		Logger:  l.Logger,
	}
	if b.Audit != nil {
		config.Audit = &ib.AuditConfig{
			Pattern: b.Audit.Pattern,
			Ignore:  b.Audit.Ignore,
		}
	}
	return config
}

func (l *Loader) evalContext() *hcl.EvalContext {
	vars := cty.EmptyObjectVal
	if len(l.Vars) > 0 {
		attrs := make(map[string]cty.Value, len(l.Vars))
		for name, val := range l.Vars {
			attrs[name] = cty.StringVal(val)
		}
		vars = cty.ObjectVal(attrs)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": vars,
		},
		Functions: map[string]function.Function{
			"concat":     stdlib.ConcatFunc,
			"format":     stdlib.FormatFunc,
			"formatlist": stdlib.FormatListFunc,
			"join":       stdlib.JoinFunc,
			"lower":      stdlib.LowerFunc,
			"upper":      stdlib.UpperFunc,
		},
	}
}
