package ib

// The Final Fantasy CSS Library, foundation first, then components.
// Themes (css/ff7.css etc.) are usually imported separately and are
// not part of the default bundle.
var defaultSources = []string{
	// Foundation
	"css/_breakpoints.css",
	"css/fonts.css",
	"css/core.css",
	"css/_utilities.css",
	"css/_grid.css",

	// Components
	"css/components/ff-navbar.css",
	"css/components/ff-nav.css",
	"css/components/ff-breadcrumb.css",
	"css/components/ff-pagination.css",
	"css/components/ff-card.css",
	"css/components/ff-accordion.css",
	"css/components/ff-tabs.css",
	"css/components/ff-modal.css",
	"css/components/ff-alert.css",
	"css/components/ff-toast.css",
	"css/components/ff-popover.css",
	"css/components/ff-tooltip.css",
	"css/components/ff-spinner.css",
	"css/components/ff-table.css",
	"css/components/ff-list-group.css",
	"css/components/ff-avatar.css",
	"css/components/ff-chips.css",
	"css/components/ff-forms.css",
	"css/components/ff-input-group.css",
	"css/components/ff-dropdown.css",
	"css/components/ff-battle-menu.css",
	"css/components/ff-materia.css",
	"css/components/ff-junction.css",
}

// DefaultConfig returns a fresh config for the standard library bundle,
// dist/final-fantasy.css, rooted at the current directory.
func DefaultConfig() *Config {
	sources := make([]string, len(defaultSources))
	copy(sources, defaultSources)
	return &Config{
		Name:    "final-fantasy",
		Title:   "Final Fantasy CSS Library",
		Version: "2.0",
		RootDir: ".",
		OutDir:  defaultOutDir,
		Sources: sources,
	}
}
