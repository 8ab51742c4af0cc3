package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twtheme/internal/colour"
)

func newNormaliseCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "normalise <colour>...",
		Aliases: []string{"normalize"},
		Short:   "Convert colours to the \"H S% L%\" form",
		Long: `Convert each colour to the space-separated "H S% L%" form used by the
theme's CSS custom properties, printing one value per line.

Colours that cannot be parsed are printed unchanged and reported as a warning.

Examples:
  twtheme normalise '#ff0000' 'rgb(0 128 0)' rebeccapurple
  twtheme normalise --strict 'oklch(0.7 0.1 250)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.log()
			out := cmd.OutOrStdout()

			failed := 0
			for _, arg := range args {
				result := colour.Normalise(arg)
				if result.Degraded() {
					failed++
					logger.Warn("failed to convert colour, keeping raw value", "value", arg, "error", result.Err)
				}
				fmt.Fprintln(out, result.Value)
			}

			if strict && failed > 0 {
				return fmt.Errorf("%d colour(s) could not be converted", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any colour cannot be converted")

	return cmd
}
