// Package template loads output plugin templates, preferring user overrides
// to the embedded defaults.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/twtheme/internal/security"
)

// EnvTemplateDir overrides the base directory for custom templates.
const EnvTemplateDir = "TWTHEME_TEMPLATE_DIR"

// ErrTemplateExists is returned when dumping over an existing custom template.
var ErrTemplateExists = errors.New("custom template already exists")

// Loader reads templates from {customBase}/{pluginName}/ when present and
// falls back to the plugin's embedded templates.
type Loader struct {
	pluginName string
	embedded   fs.FS
	customBase string
	logger     hclog.Logger
}

// DefaultBase returns the custom template base directory:
// $TWTHEME_TEMPLATE_DIR, or ~/.config/twtheme/templates.
func DefaultBase() string {
	if dir := os.Getenv(EnvTemplateDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ".config", "twtheme", "templates")
}

// New creates a loader for pluginName backed by the embedded templates.
func New(pluginName string, embedded fs.FS) *Loader {
	return &Loader{
		pluginName: pluginName,
		embedded:   embedded,
		customBase: DefaultBase(),
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the base directory for custom templates.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	l.logger = logger
	return l
}

// PluginName returns the plugin the loader serves.
func (l *Loader) PluginName() string {
	return l.pluginName
}

// Load reads a template, checking for a custom override first.
// It reports whether the content came from the override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if err := security.ValidateFilePath(filename, l.CustomDir()); err != nil {
		return nil, false, fmt.Errorf("invalid template name %q: %w", filename, err)
	}

	customPath := l.CustomPath(filename)
	if content, err := os.ReadFile(customPath); err == nil {
		l.logger.Debug("using custom template", "plugin", l.pluginName, "path", customPath)
		return content, true, nil
	}

	content, err = fs.ReadFile(l.embedded, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	l.logger.Trace("using embedded template", "plugin", l.pluginName, "template", filename)

	return content, false, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.CustomDir(), filename)
}

// CustomDir returns the directory holding this plugin's custom templates.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns the embedded *.tmpl files, sorted.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	slices.Sort(templates)
	return templates, nil
}

// DumpTemplate copies an embedded template to the custom template directory.
// Without force an existing custom template is left alone and
// ErrTemplateExists is returned.
func (l *Loader) DumpTemplate(filename string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedded, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force && l.HasCustomTemplate(filename) {
		return outputPath, fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return outputPath, nil
}

// DumpAllTemplates copies every embedded template to the custom template
// directory. Existing templates are skipped unless force is set; the skips
// are reported together in the returned error after the rest are written.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []string

	for _, tmpl := range templates {
		path, err := l.DumpTemplate(tmpl, force)
		if errors.Is(err, ErrTemplateExists) {
			skipped = append(skipped, path)
			continue
		}
		if err != nil {
			return dumped, err
		}
		dumped = append(dumped, path)
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, strings.Join(skipped, ", "))
	}

	return dumped, nil
}

// TemplateInfo describes where a template will be loaded from.
type TemplateInfo struct {
	Filename     string
	CustomPath   string
	CustomExists bool
}

// Source returns "custom" or "embedded".
func (i TemplateInfo) Source() string {
	if i.CustomExists {
		return "custom"
	}
	return "embedded"
}

// GetInfo returns information about a specific template.
func (l *Loader) GetInfo(filename string) TemplateInfo {
	return TemplateInfo{
		Filename:     filename,
		CustomPath:   l.CustomPath(filename),
		CustomExists: l.HasCustomTemplate(filename),
	}
}
