package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/preset"
)

// FormatPresetList renders the built-in presets inside a bordered box.
func FormatPresetList(presets []preset.Preset) string {
	headers := []string{"KEY", "CLASS", "CATEGORIES", "ITEMS", "WEIGHT"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			Bold(p.Key),
			p.Config.ClassName,
			strconv.Itoa(len(p.Config.Categories)),
			strconv.Itoa(p.Config.TotalItems()),
			weightTotal(p.Config),
		})
	}
	table := RenderTableAligned(headers, rows, []bool{false, false, true, true, true})
	return RenderBox("Presets", table)
}

// FormatScheme renders a class configuration as a category table with the
// weight total underneath.
func FormatScheme(cfg domain.ClassConfig) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(cfg.ClassName) + "\n\n")

	headers := []string{"#", "CATEGORY", "WEIGHT", "ITEMS", "RULE"}
	rows := make([][]string, 0, len(cfg.Categories))
	for i, c := range cfg.Categories {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			c.Name,
			Percent(c.Weight),
			strconv.Itoa(c.TotalItems),
			Rule(c),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []bool{true, false, true, true, false}))
	b.WriteString("\n")
	b.WriteString(KeyValue("total", 6, weightTotal(cfg)))

	return RenderBox("", b.String())
}

// FormatWeightWarning renders the weight-total warning shown before
// generating a workbook whose weights do not add up.
func FormatWeightWarning(w *domain.WeightWarning) string {
	return Warn(fmt.Sprintf("Weights total %s, not 100%%. Final grades will not be out of 100.", Percent(w.Total)))
}

// FormatValidationErrors renders a numbered list of scheme errors.
func FormatValidationErrors(path string, errs []error) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("✖ %s: %d error(s)", path, len(errs))) + "\n")
	for i, e := range errs {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(strconv.Itoa(i+1)+"."), e.Error()))
	}
	return b.String()
}

func weightTotal(cfg domain.ClassConfig) string {
	total := Percent(cfg.TotalWeight())
	if cfg.WeightWarning() != nil {
		return StyleYellow.Render(total)
	}
	return StyleGreen.Render(total)
}
