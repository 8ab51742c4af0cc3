// Package tailwind provides a Tailwind CSS / shadcn/ui output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	tmplloader "github.com/jmylchreest/twtheme/internal/plugin/output/template"
	"github.com/jmylchreest/twtheme/internal/theme"
)

//go:embed *.tmpl
var templates embed.FS

// Output formats.
const (
	FormatCSS    = "css"
	FormatConfig = "config"
)

// Output file names.
const (
	cssFile    = "globals.css"
	configFile = "tailwind.theme.js"
)

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	format    string // "css" or "config"
	outputDir string
	loader    *tmplloader.Loader
}

// New creates a new Tailwind CSS output plugin.
func New() *Plugin {
	return NewWithFormat(FormatCSS)
}

// NewWithFormat creates a new Tailwind CSS output plugin with a specific format.
func NewWithFormat(format string) *Plugin {
	return &Plugin{
		format: format,
		loader: tmplloader.New("tailwind", templates),
	}
}

// SetLogger sets the logger used while loading templates.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.loader.WithLogger(logger)
}

// TemplateLoader returns the loader for the plugin's templates.
func (p *Plugin) TemplateLoader() *tmplloader.Loader {
	return p.loader
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Tailwind CSS / shadcn/ui theme (CSS variables or plugin preset)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.format, "tailwind.format", FormatCSS, "Output format (css or config)")
	cmd.Flags().StringVar(&p.outputDir, "tailwind.output-dir", "", "Output directory (default: detected from project layout)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.format != FormatCSS && p.format != FormatConfig {
		return fmt.Errorf("invalid format: %s (must be 'css' or 'config')", p.format)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}

	// Presets live next to tailwind.config.js.
	if p.format == FormatConfig {
		return "."
	}

	// For CSS, follow the Next.js app directory when present.
	if _, err := os.Stat("app"); err == nil {
		return "app"
	}
	if _, err := os.Stat("src"); err == nil {
		return filepath.Join("src", "app")
	}

	return "."
}

// Generate renders the theme in the configured format.
func (p *Plugin) Generate(resolved *theme.Resolved) (map[string][]byte, error) {
	if resolved == nil {
		return nil, fmt.Errorf("resolved theme cannot be nil")
	}

	descriptor := theme.Emit(resolved)
	files := make(map[string][]byte)

	if p.format == FormatConfig {
		content, err := p.render(configFile, descriptor)
		if err != nil {
			return nil, err
		}
		files[configFile] = content
	} else {
		content, err := p.render(cssFile, descriptor)
		if err != nil {
			return nil, err
		}
		files[cssFile] = content
	}

	return files, nil
}

// render executes the template for name against the descriptor.
// A custom template overrides the embedded one.
func (p *Plugin) render(name string, descriptor *theme.Plugin) ([]byte, error) {
	tmplContent, _, err := p.loader.Load(name + ".tmpl")
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, descriptor); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", name, err)
	}

	return buf.Bytes(), nil
}

// jsIdentifier matches keys that can be written unquoted in a JS object literal.
var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsKey formats an object key, quoting it only when required.
func jsKey(key string) string {
	if jsIdentifier.MatchString(key) {
		return key
	}
	return jsString(key)
}

// jsString formats a JS string literal. JSON strings are valid JS.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// baseJSON renders the base rules as indented JSON, continuing lines with prefix.
func baseJSON(descriptor *theme.Plugin, prefix string) (string, error) {
	raw, err := descriptor.MarshalBase()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// templateFuncs returns template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"jsKey":    jsKey,
		"jsString": jsString,
		"baseJSON": baseJSON,
	}
}
