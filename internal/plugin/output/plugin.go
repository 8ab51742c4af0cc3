// Package output provides the interface and registry for output plugins.
package output

import (
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/plugin/output/template"
	"github.com/jmylchreest/twtheme/internal/theme"
)

// Plugin represents an output plugin that renders files from a resolved theme.
type Plugin interface {
	// Name returns the plugin's name (e.g., "tailwind", "tokens").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the resolved palettes.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(resolved *theme.Resolved) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// DefaultOutputDir returns the default output directory for this plugin.
	DefaultOutputDir() string
}

// LoggerSetter is implemented by plugins that log while generating.
type LoggerSetter interface {
	SetLogger(logger hclog.Logger)
}

// TemplateProvider is implemented by plugins whose templates can be
// overridden by the user.
type TemplateProvider interface {
	TemplateLoader() *template.Loader
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered plugins.
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}
