package workbook

import (
	"fmt"

	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/xuri/excelize/v2"
)

const (
	headerFill = "#DDDDDD"
	inputFill  = "#FFFF99"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "#000000", Style: 1},
	{Type: "top", Color: "#000000", Style: 1},
	{Type: "right", Color: "#000000", Style: 1},
	{Type: "bottom", Color: "#000000", Style: 1},
}

// styleFor maps a cell role to its excelize style definition.
func styleFor(s layout.CellStyle) *excelize.Style {
	st := &excelize.Style{Border: thinBorder}
	switch s {
	case layout.StyleTitle:
		st.Font = &excelize.Font{Bold: true, Size: 14}
		st.Alignment = &excelize.Alignment{Horizontal: "center"}
	case layout.StyleHeader:
		st.Font = &excelize.Font{Bold: true}
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1}
	case layout.StyleBold, layout.StyleComputed:
		st.Font = &excelize.Font{Bold: true}
	case layout.StyleInput:
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{inputFill}, Pattern: 1}
	case layout.StyleFinal:
		st.Font = &excelize.Font{Bold: true, Size: 12}
	}
	return st
}

// styleID returns the workbook style index for s, creating it on first use.
func (w *Workbook) styleID(s layout.CellStyle) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}
	id, err := w.file.NewStyle(styleFor(s))
	if err != nil {
		return 0, fmt.Errorf("creating %s style: %w", s, err)
	}
	w.styles[s] = id
	return id, nil
}
