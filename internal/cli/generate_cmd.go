package cli

import (
	"fmt"

	"github.com/alexanderramin/gradecalc/internal/cli/formatter"
	"github.com/alexanderramin/gradecalc/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		src      schemeSource
		fromPath string
		outPath  string
		yes      bool
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a grade calculator workbook",
		Example: `  gradecalc generate --preset mat137
  gradecalc generate --scheme sta130.json --out grades.xlsx
  gradecalc generate --interactive --from old.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := resolveScheme(ctx, app, src, "")
			if err != nil {
				return err
			}

			confirmed := yes
			if w := cfg.WeightWarning(); w != nil {
				fmt.Fprintln(out, formatter.FormatWeightWarning(w))
				if !confirmed && app.interactive() {
					confirmed, err = app.Prompt.ConfirmWeights(w)
					if err != nil {
						return err
					}
				}
				if !confirmed {
					return fmt.Errorf("%w (pass --yes to generate anyway)", service.ErrWeightNotConfirmed)
				}
			}

			res, err := app.Workbooks.Generate(ctx, service.GenerateRequest{
				Config:         cfg,
				FromPath:       fromPath,
				OutPath:        outPath,
				OutDir:         app.Config.Output.Dir,
				ConfirmWeights: confirmed,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, formatter.FormatGenerated(res.Path, res.Sheet, res.Layout))

			if (open || app.Config.Output.Open) && app.OpenFile != nil {
				if err := app.OpenFile(res.Path); err != nil {
					fmt.Fprintln(out, formatter.Warn(fmt.Sprintf("could not open %s: %v", res.Path, err)))
				}
			}
			return nil
		},
	}

	addSchemeFlags(cmd, &src, true)
	cmd.Flags().StringVar(&fromPath, "from", "", "Existing workbook to regenerate into (other sheets are kept)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default <class>_Grade_Calculator.xlsx in the output dir)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Generate even if weights do not total 100%")
	cmd.Flags().BoolVar(&open, "open", false, "Open the workbook after saving")

	return cmd
}
