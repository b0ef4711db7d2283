package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/grading"
	"github.com/alexanderramin/gradecalc/internal/layout"
)

const gradeBarWidth = 20

// FormatScoreResult renders the per-category breakdown and final grade of a
// scored workbook.
func FormatScoreResult(res *grading.Result, l *layout.Layout) string {
	var b strings.Builder

	headers := []string{"CATEGORY", "WEIGHT", "RULE", "AVERAGE", "CONTRIBUTION", "CELL"}
	rows := make([][]string, 0, len(res.Categories))
	for i, c := range res.Categories {
		cell := ""
		if i < len(l.Blocks) {
			cell = l.Blocks[i].ContributionCell()
		}
		rows = append(rows, []string{
			c.Category.Name,
			Percent(c.Category.Weight),
			Dim(Rule(c.Category)),
			GradeColor(c.Aggregate).Render(Score(c.Aggregate)),
			Score(c.Contribution),
			Dim(cell),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []bool{false, true, false, true, true, false}))
	b.WriteString("\n")
	b.WriteString(KeyValue("final", 5, RenderGradeBar(res.Final, gradeBarWidth)+"  "+Dim(l.FinalCell())))

	return RenderBox(res.ClassName+" grade", b.String())
}

// FormatGenerated renders the summary shown after a workbook is saved.
func FormatGenerated(path, sheet string, l *layout.Layout) string {
	var b strings.Builder
	b.WriteString(Success("Grade calculator saved") + "\n\n")
	b.WriteString(KeyValue("file", 11, Bold(path)))
	b.WriteString(KeyValue("sheet", 11, sheet))
	b.WriteString(KeyValue("categories", 11, strconv.Itoa(len(l.Blocks))))
	b.WriteString(KeyValue("score cells", 11, strconv.Itoa(scoreCells(l))))
	b.WriteString(KeyValue("final", 11, l.FinalCell()))
	return b.String()
}

func scoreCells(l *layout.Layout) int {
	n := 0
	for _, b := range l.Blocks {
		n += len(b.InputCells())
	}
	return n
}
