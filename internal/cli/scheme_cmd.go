package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/gradecalc/internal/cli/formatter"
	"github.com/alexanderramin/gradecalc/internal/importer"
	"github.com/spf13/cobra"
)

func newSchemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Work with JSON grading scheme files",
	}

	cmd.AddCommand(
		newSchemeValidateCmd(app),
		newSchemeExportCmd(app),
	)

	return cmd
}

func newSchemeValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a scheme file and report every error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			errs, err := app.Schemes.ValidateFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				fmt.Fprint(out, formatter.FormatValidationErrors(args[0], errs))
				return fmt.Errorf("%s is not a valid grading scheme", args[0])
			}

			cfg, err := app.Schemes.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success(args[0]+" is valid"))
			fmt.Fprintln(out, formatter.FormatScheme(cfg))
			if w := cfg.WeightWarning(); w != nil {
				fmt.Fprintln(out, formatter.FormatWeightWarning(w))
			}
			return nil
		},
	}
}

func newSchemeExportCmd(app *App) *cobra.Command {
	var (
		src     schemeSource
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a preset or form-entered scheme as a JSON scheme file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveScheme(cmd.Context(), app, src, "")
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(importer.FromConfig(cfg), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding scheme: %w", err)
			}
			data = append(data, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+outPath))
			return nil
		},
	}

	addSchemeFlags(cmd, &src, true)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}
