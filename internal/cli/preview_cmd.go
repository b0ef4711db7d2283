package cli

import (
	"fmt"

	"github.com/alexanderramin/gradecalc/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPreviewCmd(app *App) *cobra.Command {
	var (
		src  schemeSource
		full bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the sheet a scheme would generate, without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := resolveScheme(ctx, app, src, app.Config.Output.Preset)
			if err != nil {
				return err
			}

			res, err := app.Workbooks.Preview(ctx, cfg)
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatPreview(res.Sheet, res.Layout, res.Recorder, !full))
			if res.Warning != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.FormatWeightWarning(res.Warning))
			}
			return nil
		},
	}

	addSchemeFlags(cmd, &src, true)
	cmd.Flags().BoolVar(&full, "full", false, "Show every score row")

	return cmd
}
