package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/cli/formatter"
	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Prompter collects input interactively.
type Prompter interface {
	// ClassConfig asks for a class configuration, prefilled from seed.
	ClassConfig(seed domain.ClassConfig) (domain.ClassConfig, error)
	// ConfirmWeights asks whether to continue when weights do not total 100%.
	ConfirmWeights(w *domain.WeightWarning) (bool, error)
}

// huhPrompter implements Prompter with huh forms.
type huhPrompter struct {
	run func(*huh.Form) error
}

// NewFormPrompter returns a Prompter backed by terminal forms.
func NewFormPrompter() Prompter {
	return &huhPrompter{run: func(f *huh.Form) error { return f.Run() }}
}

// gradecalcHuhTheme returns a custom huh theme using the Gruvbox palette.
func gradecalcHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themed(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(gradecalcHuhTheme()).WithShowHelp(false)
}

// categoryInput holds the string-typed form fields for one category.
type categoryInput struct {
	Name   string
	Weight string
	Total  string
	BestOf string
	Keep   bool
	More   bool
}

func newCategoryInput(c domain.CategoryConfig) categoryInput {
	return categoryInput{
		Name:   c.Name,
		Weight: domain.FormatNumber(c.Weight),
		Total:  strconv.Itoa(c.TotalItems),
		BestOf: strconv.Itoa(c.BestOf),
		Keep:   true,
	}
}

// category converts validated form fields to a CategoryConfig. An empty
// best-of means every item counts.
func (in categoryInput) category() (domain.CategoryConfig, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(in.Weight), 64)
	if err != nil {
		return domain.CategoryConfig{}, fmt.Errorf("weight %q is not a number", in.Weight)
	}
	total := parsePositiveInt(strings.TrimSpace(in.Total), 0)
	return domain.CategoryConfig{
		Name:       strings.TrimSpace(in.Name),
		Weight:     weight,
		TotalItems: total,
		BestOf:     parsePositiveInt(strings.TrimSpace(in.BestOf), total),
	}, nil
}

func (p *huhPrompter) ClassConfig(seed domain.ClassConfig) (domain.ClassConfig, error) {
	name := seed.ClassName
	if err := p.run(classNameForm(&name)); err != nil {
		return domain.ClassConfig{}, err
	}

	cfg := domain.ClassConfig{ClassName: strings.TrimSpace(name)}
	for i := 0; ; i++ {
		in := categoryInput{Keep: true}
		if i < len(seed.Categories) {
			in = newCategoryInput(seed.Categories[i])
		}
		in.More = i+1 < len(seed.Categories)

		if err := p.run(categoryForm(i, &in)); err != nil {
			return domain.ClassConfig{}, err
		}
		if in.Keep {
			cat, err := in.category()
			if err != nil {
				return domain.ClassConfig{}, err
			}
			cfg.Categories = append(cfg.Categories, cat)
		}
		if !in.More {
			break
		}
	}

	if err := cfg.Validate(); err != nil {
		return domain.ClassConfig{}, err
	}
	return cfg, nil
}

func (p *huhPrompter) ConfirmWeights(w *domain.WeightWarning) (bool, error) {
	ok := false
	if err := p.run(weightConfirmForm(w, &ok)); err != nil {
		return false, err
	}
	return ok, nil
}

// classNameForm asks for the class name.
func classNameForm(name *string) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewInput().
				Title("Class Name").
				Placeholder("MAT137").
				Value(name).
				Validate(validateRequired("class name")),
		),
	)
}

// categoryForm edits one category and asks whether another follows.
func categoryForm(index int, in *categoryInput) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Category %d", index+1)),
			huh.NewInput().
				Title("Name").
				Placeholder("Term Tests").
				Value(&in.Name).
				Validate(validateRequired("category name")),
			weightInput(&in.Weight),
			itemCountInput("Total Items", &in.Total),
			bestOfInput(&in.BestOf, &in.Total),
			huh.NewConfirm().
				Title("Include this category?").
				Affirmative("Include").
				Negative("Drop").
				Value(&in.Keep),
			huh.NewConfirm().
				Title("Another category after this one?").
				Value(&in.More),
		),
	)
}

// weightConfirmForm asks whether to generate despite a weight warning.
func weightConfirmForm(w *domain.WeightWarning, ok *bool) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Weights don't add up").
				Description(fmt.Sprintf("Total weight is %s, not 100%%. Continue anyway?", formatter.Percent(w.Total))).
				Affirmative("Continue").
				Negative("Cancel").
				Value(ok),
		),
	)
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive. Used after huh form validation has
// already ensured the string is valid, so this is a safe conversion.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
