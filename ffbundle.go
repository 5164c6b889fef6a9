package ffbundle

import (
	ib "github.com/ffcss/ffbundle/internal/bundler"
	"github.com/ffcss/ffbundle/internal/docs"
	"github.com/ffcss/ffbundle/internal/manifest"
)

type Config = ib.Config
type AuditConfig = ib.AuditConfig
type Logger = ib.Logger
type DocsConfig = docs.Config

type Bundler struct {
	Config *ib.Config
}

func (b Bundler) Build() error {
	return b.Config.Build()
}

/*
 * FindUnlistedSources returns the files matched by the config's audit
 * pattern that the bundle does not list, e.g. a new component stylesheet
 * that was never added to the source list.
 */
func (b Bundler) FindUnlistedSources() ([]string, error) {
	return b.Config.FindUnlistedSources()
}

func New(config *ib.Config) *Bundler {
	if config.Logger == nil {
		config.Logger = ib.Log
	}
	return &Bundler{
		Config: config,
	}
}

// LoadManifest reads every bundle declared in an HCL manifest.
func LoadManifest(path string, vars map[string]string) ([]*Bundler, error) {
	configs, err := manifest.NewLoader(vars).Load(path)
	if err != nil {
		return nil, err
	}
	bundlers := make([]*Bundler, 0, len(configs))
	for _, c := range configs {
		bundlers = append(bundlers, New(c))
	}
	return bundlers, nil
}

var DefaultConfig = ib.DefaultConfig
var SetupDistDir = ib.SetupDistDir
var DefaultDocsConfig = docs.DefaultConfig
var ErrInvalidUTF8 = ib.ErrInvalidUTF8
