package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/plugin/output"
	"github.com/jmylchreest/twtheme/internal/plugin/output/tailwind"
	"github.com/jmylchreest/twtheme/internal/plugin/output/tokens"
	"github.com/jmylchreest/twtheme/internal/security"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	overrides overrideFlags
	outputs   []string
	dryRun    bool
	strict    bool
}

// newRegistry registers the built-in output plugins.
func newRegistry() *output.Registry {
	registry := output.NewRegistry()
	registry.Register(tailwind.New())
	registry.Register(tokens.New())
	return registry
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	registry := newRegistry()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Tailwind theme files",
		Long: `Generate Tailwind CSS theme files from the default palettes and any
colour overrides.

Overrides are read from a config file and from --light/--dark flags, with
flags taking precedence per token. Values that cannot be converted are
kept verbatim and reported as warnings.

Examples:
  # CSS variables for the default theme
  twtheme generate

  # Override a few tokens
  twtheme generate --light primary=#7aa2f7 --dark background=#1a1b26

  # Plugin preset next to tailwind.config.js
  twtheme generate --outputs tailwind --tailwind.format config

  # Preview without writing
  twtheme generate --config theme.toml --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, registry, opts)
		},
	}

	opts.overrides.register(cmd)
	cmd.Flags().StringSliceVarP(&opts.outputs, "outputs", "o", []string{"all"},
		"Output plugins (comma-separated or 'all'; available: "+strings.Join(registry.List(), ", ")+")")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview without writing files")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail if any colour cannot be converted")

	for _, name := range registry.List() {
		p, _ := registry.Get(name)
		p.RegisterFlags(cmd)
	}

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, a *app, registry *output.Registry, opts *generateOptions) error {
	logger := a.log()

	plugins, err := selectPlugins(registry, opts.outputs)
	if err != nil {
		return err
	}

	resolved, err := opts.overrides.resolve(a)
	if err != nil {
		return err
	}
	if opts.strict && resolved.Degraded() {
		return fmt.Errorf("%d colour(s) could not be converted: %s",
			len(resolved.Diagnostics), resolved.Diagnostics[0])
	}

	out := cmd.OutOrStdout()
	for _, p := range plugins {
		if ls, ok := p.(output.LoggerSetter); ok {
			ls.SetLogger(logger.Named(p.Name()))
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}

		files, err := p.Generate(resolved)
		if err != nil {
			return fmt.Errorf("%s: failed to generate: %w", p.Name(), err)
		}

		dir := p.DefaultOutputDir()
		names := make([]string, 0, len(files))
		for name := range files {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			if err := security.ValidateFilePath(name, dir); err != nil {
				return fmt.Errorf("%s: invalid output file %q: %w", p.Name(), name, err)
			}
			path := filepath.Join(dir, name)
			content := files[name]

			if opts.dryRun {
				fmt.Fprintf(out, "would write %s (%d bytes)\n", path, len(content))
				continue
			}

			if err := writeFile(path, content); err != nil {
				return fmt.Errorf("%s: %w", p.Name(), err)
			}
			logger.Debug("wrote file", "plugin", p.Name(), "path", path, "bytes", len(content))
			if !a.quiet {
				fmt.Fprintf(out, "wrote %s\n", path)
			}
		}
	}

	return nil
}

// selectPlugins resolves the --outputs flag against the registry.
func selectPlugins(registry *output.Registry, names []string) ([]output.Plugin, error) {
	if len(names) == 0 || slices.Contains(names, "all") {
		names = registry.List()
	}

	plugins := make([]output.Plugin, 0, len(names))
	for _, name := range names {
		p, ok := registry.Get(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown output plugin: %s (available: %s)",
				name, strings.Join(registry.List(), ", "))
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// writeFile writes content to path, creating parent directories as needed.
func writeFile(path string, content []byte) error {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
