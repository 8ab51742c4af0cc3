package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/config"
	"github.com/jmylchreest/twtheme/internal/theme"
)

// overrideFlags are the theme input flags shared by generate and palette.
type overrideFlags struct {
	configPath string
	light      map[string]string
	dark       map[string]string
}

func (f *overrideFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Theme config file (.toml or .json; default $"+config.EnvConfig+" or ./"+config.DefaultFile+")")
	cmd.Flags().StringToStringVar(&f.light, "light", nil, "Light colour override (token=colour, repeatable)")
	cmd.Flags().StringToStringVar(&f.dark, "dark", nil, "Dark colour override (token=colour, repeatable)")
}

// resolve loads the config file, layers the flag overrides on top and
// normalises both palettes.
func (f *overrideFlags) resolve(a *app) (*theme.Resolved, error) {
	logger := a.log()

	opts, path, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if path != "" {
		logger.Debug("loaded config", "path", path,
			"light", len(opts.LightColors), "dark", len(opts.DarkColors))
	}

	opts = config.ApplyOverrides(opts, f.light, f.dark)
	return theme.NewResolver(logger).Resolve(opts), nil
}
