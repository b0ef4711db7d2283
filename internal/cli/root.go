package cli

import (
	"strings"

	"github.com/alexanderramin/gradecalc/internal/config"
	"github.com/alexanderramin/gradecalc/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schemes   service.SchemeService
	Workbooks service.WorkbookService
	Scores    service.ScoreService

	Config config.Config

	// Prompt drives the interactive form. Nil disables interactive input.
	Prompt Prompter
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// OpenFile opens a saved workbook with the desktop handler.
	OpenFile func(path string) error
	// Setup runs after flags are parsed and before any command, so services
	// can be wired with the final configuration (--verbose included).
	Setup func(app *App) error
}

func (a *App) interactive() bool {
	return a.Prompt != nil && a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "gradecalc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gradecalc",
		Short: "Build weighted grade calculator spreadsheets",
		Long: `gradecalc turns a grading scheme (weighted categories, each with a number
of items and an optional best-of rule) into an .xlsx workbook whose formulas
compute category averages, contributions and the final grade.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				app.Config.Log.Enabled = true
			}
			if app.Setup != nil {
				return app.Setup(app)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each operation to stderr")
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	root.AddCommand(
		newGenerateCmd(app),
		newPreviewCmd(app),
		newPresetCmd(app),
		newScoreCmd(app),
		newSchemeCmd(app),
	)

	return root
}

var flagAliases = map[string]string{
	"output": "out",
	"file":   "scheme",
}

// normalizeFlagName accepts underscores for dashes and a few long-form
// aliases, so --output and --out name the same flag.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ReplaceAll(name, "_", "-")
	if alias, ok := flagAliases[name]; ok {
		name = alias
	}
	return pflag.NormalizedName(name)
}
