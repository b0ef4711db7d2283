package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGradeBar renders a 0-100 grade as a bar like [████░░░░] 45.00%,
// colored with GradeColor.
func RenderGradeBar(grade float64, width int) string {
	pct := min(max(grade/100, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %s", GradeColor(grade).Render(bar), Score(grade)+"%")
}
