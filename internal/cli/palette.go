package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/twtheme/internal/colour"
	"github.com/jmylchreest/twtheme/internal/theme"
)

const swatchWidth = 6

// paletteOptions holds the palette command flags.
type paletteOptions struct {
	overrides overrideFlags
	mode      string
	preview   bool
}

func newPaletteCmd(a *app) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the resolved light and dark palettes",
		Long: `Show the resolved palettes as a table of token, value and conversion status.

Status is "canonical" for values already in "H S% L%" form, "converted" for
values translated from another colour syntax and "fallback" for values kept
verbatim because they could not be parsed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, a, opts)
		},
	}

	opts.overrides.register(cmd)
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "both", "Palette to show (light, dark or both)")
	cmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "Show colour swatches (terminal only)")

	return cmd
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, a *app, opts *paletteOptions) error {
	modes, err := paletteModes(opts.mode)
	if err != nil {
		return err
	}

	resolved, err := opts.overrides.resolve(a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	preview := opts.preview && isTerminal(out)
	if opts.preview && !preview {
		a.log().Debug("swatch preview disabled, output is not a terminal")
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", mode, mode.Selector())
		fmt.Fprint(out, paletteTable(resolved, mode, preview).Render())
	}

	return nil
}

// paletteModes parses the --mode flag.
func paletteModes(s string) ([]theme.Mode, error) {
	if s == "both" || s == "" {
		return []theme.Mode{theme.ModeLight, theme.ModeDark}, nil
	}
	mode, err := theme.ParseMode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid mode: %s (must be 'light', 'dark' or 'both')", s)
	}
	return []theme.Mode{mode}, nil
}

// paletteTable builds the table for one mode.
func paletteTable(resolved *theme.Resolved, mode theme.Mode, preview bool) *Table {
	headers := []string{"TOKEN", "VALUE", "STATUS"}
	if preview {
		headers = append(headers, "SWATCH")
	}
	table := NewTable(headers)

	for token, value := range resolved.Palette(mode).All() {
		status, _ := resolved.Status(mode, token)
		row := []string{token.String(), value, status.String()}
		if preview {
			row = append(row, colour.Swatch(value, swatchWidth))
		}
		table.AddRow(row)
	}

	return table
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
