package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Percent renders a weight such as 39 or 33.3 as "39%" / "33.3%".
func Percent(v float64) string {
	return domain.FormatNumber(math.Round(v*100)/100) + "%"
}

// Score renders a computed score with two decimals.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Rule describes how a category's items are combined.
func Rule(c domain.CategoryConfig) string {
	switch {
	case c.IsSingle():
		return "single"
	case c.DropsItems():
		return fmt.Sprintf("best %d of %d", c.BestOf, c.TotalItems)
	default:
		return fmt.Sprintf("average of %d", c.TotalItems)
	}
}

// KeyValue renders an aligned "  LABEL  value" line.
func KeyValue(label string, width int, value string) string {
	return fmt.Sprintf("  %s  %s\n", StyleDim.Render(fmt.Sprintf("%-*s", width, strings.ToUpper(label))), value)
}
