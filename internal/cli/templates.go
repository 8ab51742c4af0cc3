package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/plugin/output"
	"github.com/jmylchreest/twtheme/internal/plugin/output/template"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Manage the templates used by output plugins.

Templates are embedded in twtheme. A copy placed under the custom template
directory (default ~/.config/twtheme/templates/<plugin>/, or
$` + template.EnvTemplateDir + `) is used instead.`,
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesDumpCmd(a))

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plugin templates and where they are loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaders, err := templateLoaders(newRegistry(), nil)
			if err != nil {
				return err
			}

			table := NewTable([]string{"PLUGIN", "TEMPLATE", "SOURCE", "CUSTOM PATH"})
			for _, loader := range loaders {
				names, err := loader.ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, name := range names {
					info := loader.GetInfo(name)
					table.AddRow([]string{loader.PluginName(), name, info.Source(), info.CustomPath})
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func newTemplatesDumpCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "dump [plugin]...",
		Short: "Copy embedded templates to the custom template directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaders, err := templateLoaders(newRegistry(), args)
			if err != nil {
				return err
			}

			var skipped bool
			for _, loader := range loaders {
				dumped, err := loader.WithLogger(a.log()).DumpAllTemplates(force)
				for _, path := range dumped {
					if !a.quiet {
						fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
					}
				}
				if errors.Is(err, template.ErrTemplateExists) {
					a.log().Warn("skipped existing templates", "plugin", loader.PluginName(), "error", err)
					skipped = true
					continue
				}
				if err != nil {
					return err
				}
			}

			if skipped {
				return fmt.Errorf("some templates already exist (use --force to overwrite)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing custom templates")

	return cmd
}

// templateLoaders returns the loaders of the named plugins, or of every
// plugin with templates when names is empty.
func templateLoaders(registry *output.Registry, names []string) ([]*template.Loader, error) {
	if len(names) == 0 {
		names = registry.List()
	}

	var loaders []*template.Loader
	for _, name := range names {
		p, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown output plugin: %s", name)
		}
		tp, ok := p.(output.TemplateProvider)
		if !ok {
			if len(names) == 1 {
				return nil, fmt.Errorf("output plugin %s has no templates", name)
			}
			continue
		}
		loaders = append(loaders, tp.TemplateLoader())
	}

	return loaders, nil
}
