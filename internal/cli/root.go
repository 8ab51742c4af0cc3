// Package cli provides the command-line interface for twtheme.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/version"
)

// app holds state shared by every subcommand of one root command.
type app struct {
	verbose bool
	quiet   bool
	logger  hclog.Logger
}

// newLogger builds the named logger for the global verbosity flags.
func (a *app) newLogger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case a.quiet:
		level = hclog.Error
	case a.verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "twtheme",
		Level:  level,
		Output: w,
		Color:  hclog.AutoColor,
	})
}

// log returns the command logger, discarding output before the root has run.
func (a *app) log() hclog.Logger {
	if a.logger == nil {
		return hclog.NewNullLogger()
	}
	return a.logger
}

// NewRootCmd creates the root command with all subcommands attached.
// Each call returns an independent command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "twtheme",
		Short: "A Tailwind CSS theme generator",
		Long: `twtheme builds a shadcn/ui-style Tailwind CSS theme from a small set of
colour overrides.

Colours may be given as hex, rgb(), hsl(), oklch(), oklab() or CSS colour
names. Every value is normalised to the "H S% L%" form used by the theme's
CSS custom properties, and merged into the default light and dark palettes.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = a.newLogger(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newNormaliseCmd(a))
	rootCmd.AddCommand(newTemplatesCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the twtheme release, commit, build date, Go version and platform.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.GetInfo())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")

	return cmd
}
