package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/cli/formatter"
	"github.com/alexanderramin/gradecalc/internal/service"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	var (
		src  schemeSource
		sets []string
		save bool
	)

	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Compute the grade recorded in a generated workbook",
		Long: `Reads the score cells of a workbook produced by "generate", optionally
writes new scores first, and prints the category breakdown and final grade.
The grading scheme must be the one the workbook was generated from.`,
		Example: `  gradecalc score MAT137_Grade_Calculator.xlsx --preset mat137
  gradecalc score grades.xlsx -s sta130.json --set "Homework=90,85,70" --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			updates, err := parseScoreSets(sets)
			if err != nil {
				return err
			}

			cfg, err := resolveScheme(ctx, app, src, app.Config.Output.Preset)
			if err != nil {
				return err
			}

			res, err := app.Scores.Score(ctx, service.ScoreRequest{
				Path:    args[0],
				Config:  cfg,
				Updates: updates,
				Save:    save,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatScoreResult(res.Result, res.Layout))
			switch {
			case res.Saved:
				fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Saved %d score(s) to %s", len(res.Written), args[0])))
			case len(res.Written) > 0:
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d score(s) applied but not saved; pass --save to keep them.", len(res.Written))))
			}
			return nil
		},
	}

	addSchemeFlags(cmd, &src, false)
	cmd.Flags().StringArrayVar(&sets, "set", nil, `Scores for a category, in item order ("Term Tests=80,75,90")`)
	cmd.Flags().BoolVar(&save, "save", false, "Write the --set scores back to the workbook")

	return cmd
}

// parseScoreSets parses --set values of the form "Category=v1,v2,...".
func parseScoreSets(sets []string) ([]service.ScoreUpdate, error) {
	updates := make([]service.ScoreUpdate, 0, len(sets))
	for _, s := range sets {
		name, list, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: expected CATEGORY=SCORE[,SCORE...]", s)
		}
		u := service.ScoreUpdate{Category: name}
		for i, field := range strings.Split(list, ",") {
			field = strings.TrimSpace(field)
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --set %q: score %d (%q) is not a number", s, i+1, field)
			}
			u.Scores = append(u.Scores, v)
		}
		updates = append(updates, u)
	}
	return updates, nil
}
