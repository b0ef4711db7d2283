package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/preset"
	"github.com/spf13/cobra"
)

var errNoScheme = errors.New("no grading scheme: use --preset NAME or --scheme FILE, or run in a terminal for the interactive form")

// schemeSource holds the flags that pick where a class configuration
// comes from. At most one may be set.
type schemeSource struct {
	preset      string
	scheme      string
	interactive bool
}

func addSchemeFlags(cmd *cobra.Command, src *schemeSource, withInteractive bool) {
	cmd.Flags().StringVarP(&src.preset, "preset", "p", "", "Built-in grading scheme (see `preset list`)")
	cmd.Flags().StringVarP(&src.scheme, "scheme", "s", "", "JSON grading scheme file")
	if withInteractive {
		cmd.Flags().BoolVarP(&src.interactive, "interactive", "i", false, "Enter the grading scheme in a form")
		cmd.MarkFlagsMutuallyExclusive("preset", "scheme", "interactive")
		return
	}
	cmd.MarkFlagsMutuallyExclusive("preset", "scheme")
}

func (s schemeSource) empty() bool {
	return s.preset == "" && s.scheme == "" && !s.interactive
}

// resolveScheme loads the class configuration named by src. With no source
// the form runs when a terminal is attached; otherwise fallbackPreset is
// used, and errNoScheme is returned when that is empty too.
func resolveScheme(ctx context.Context, app *App, src schemeSource, fallbackPreset string) (domain.ClassConfig, error) {
	switch {
	case src.preset != "":
		return app.Schemes.Preset(ctx, src.preset)
	case src.scheme != "":
		return app.Schemes.LoadFile(ctx, src.scheme)
	case src.interactive || (src.empty() && fallbackPreset == "" && app.interactive()):
		if !app.interactive() {
			return domain.ClassConfig{}, errors.New("--interactive needs a terminal")
		}
		seed, _ := preset.Lookup(app.Config.Output.Preset)
		return app.Prompt.ClassConfig(seed)
	case fallbackPreset != "":
		return app.Schemes.Preset(ctx, fallbackPreset)
	default:
		return domain.ClassConfig{}, errNoScheme
	}
}
