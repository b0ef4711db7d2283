package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/layout"
)

// compactRunLimit is the longest run of item rows shown in full when a
// preview is compacted.
const compactRunLimit = 4

// FormatPreview renders the recorded sheet as a grid of rows A-D. With
// compact set, long runs of score rows are collapsed to their first and
// last rows.
func FormatPreview(sheet string, l *layout.Layout, rec *layout.Recorder, compact bool) string {
	hidden := make(map[int]int)
	if compact {
		for _, b := range l.Blocks {
			n := b.LastItemRow - b.FirstItemRow + 1
			if b.Category.IsSingle() || n <= compactRunLimit {
				continue
			}
			for row := b.FirstItemRow + 1; row < b.LastItemRow; row++ {
				hidden[row] = b.FirstItemRow + 1
			}
		}
	}

	headers := append([]string{""}, layout.Columns...)
	var rows [][]string
	for i, line := range rec.Grid() {
		row := i + 1
		if first, ok := hidden[row]; ok {
			if row == first {
				rows = append(rows, []string{"", Dim(fmt.Sprintf("… %d more rows", countHidden(hidden, first)))})
			}
			continue
		}
		cells := make([]string, 0, len(line)+1)
		cells = append(cells, Dim(strconv.Itoa(row)))
		for _, v := range line {
			cells = append(cells, styleCell(v))
		}
		rows = append(rows, cells)
	}

	var b strings.Builder
	b.WriteString(StyleBold.Render(sheet) + "\n\n")
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(KeyValue("merged", 10, strings.Join(rec.Merges, ", ")))
	for _, v := range rec.Validations {
		b.WriteString(KeyValue("validated", 10, fmt.Sprintf("%s  %s", strings.Join(v.Sqref, " "), Dim(v.Rule.ErrorMessage))))
	}
	b.WriteString(KeyValue("final", 10, l.FinalCell()))
	return b.String()
}

func styleCell(v string) string {
	if strings.HasPrefix(v, "=") {
		return StyleBlue.Render(v)
	}
	return v
}

func countHidden(hidden map[int]int, first int) int {
	n := 0
	for _, f := range hidden {
		if f == first {
			n++
		}
	}
	return n
}
