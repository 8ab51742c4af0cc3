// Package tokens provides an output plugin that writes the resolved palettes
// and the Tailwind plugin descriptor as JSON design tokens.
package tokens

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/theme"
)

const tokensFile = "theme.json"

// Plugin implements the output.Plugin interface for JSON design tokens.
type Plugin struct {
	outputDir string
}

// New creates a new tokens output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tokens"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate JSON design tokens (resolved palettes and Tailwind plugin descriptor)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "tokens.output-dir", "", "Output directory (default: current directory)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return "."
}

// Document is the layout of theme.json.
type Document struct {
	Light       *theme.Palette `json:"light"`
	Dark        *theme.Palette `json:"dark"`
	Plugin      *theme.Plugin  `json:"plugin"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}

// Diagnostic is a colour value that was kept in its raw form.
type Diagnostic struct {
	Mode  string `json:"mode"`
	Token string `json:"token"`
	Value string `json:"value"`
	Error string `json:"error"`
}

// Generate renders theme.json.
func (p *Plugin) Generate(resolved *theme.Resolved) (map[string][]byte, error) {
	if resolved == nil {
		return nil, fmt.Errorf("resolved theme cannot be nil")
	}

	doc := Document{
		Light:  resolved.Light,
		Dark:   resolved.Dark,
		Plugin: theme.Emit(resolved),
	}
	for _, d := range resolved.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
			Mode:  d.Mode.String(),
			Token: d.Token.String(),
			Value: d.Value,
			Error: d.Err.Error(),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tokens: %w", err)
	}

	return map[string][]byte{tokensFile: append(data, '\n')}, nil
}
