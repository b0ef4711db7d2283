package cli

import (
	"fmt"

	"github.com/alexanderramin/gradecalc/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Browse built-in grading schemes",
	}

	cmd.AddCommand(
		newPresetListCmd(app),
		newPresetShowCmd(app),
	)

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in grading schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := app.Schemes.Presets(cmd.Context())
			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No presets found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPresetList(presets))
			return nil
		},
	}
}

func newPresetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the categories of a built-in grading scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Schemes.Preset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScheme(cfg))
			return nil
		},
	}
}
