package layout

import (
	"fmt"

	"github.com/alexanderramin/gradecalc/internal/domain"
)

// Column widths in character units.
var columnWidths = map[string]float64{
	ColLabel:        25,
	ColInput:        15,
	ColSpare:        15,
	ColContribution: 15,
}

// Generate writes the grade calculator for cfg into doc and returns the
// layout it used. The configuration is validated before the document is
// touched; on a validation error doc is left unchanged.
//
// doc may already hold a previous generation: it is reset first, so a
// smaller configuration leaves no stale rows behind.
func Generate(doc Document, cfg domain.ClassConfig) (*Layout, error) {
	l, err := Plan(cfg)
	if err != nil {
		return nil, err
	}

	if err := doc.Reset(); err != nil {
		return nil, fmt.Errorf("resetting sheet: %w", err)
	}

	w := &sheetWriter{doc: doc}
	w.columns()
	w.header(l)
	for _, b := range l.Blocks {
		if b.Category.IsSingle() {
			w.singleBlock(b)
		} else {
			w.multiBlock(b)
		}
	}
	w.final(l)
	w.validation(l)

	if w.err != nil {
		return nil, w.err
	}
	return l, nil
}

// sheetWriter keeps the first write error so the layout code reads as a
// straight sequence of cell writes.
type sheetWriter struct {
	doc Document
	err error
}

func (w *sheetWriter) fail(op, cell string, err error) {
	if w.err == nil && err != nil {
		w.err = fmt.Errorf("%s %s: %w", op, cell, err)
	}
}

func (w *sheetWriter) value(cell string, v any, style CellStyle) {
	if w.err != nil {
		return
	}
	w.fail("writing", cell, w.doc.SetValue(cell, v))
	w.style(cell, style)
}

func (w *sheetWriter) formula(cell, formula string, style CellStyle) {
	if w.err != nil {
		return
	}
	w.fail("writing formula", cell, w.doc.SetFormula(cell, formula))
	w.style(cell, style)
}

func (w *sheetWriter) style(cell string, style CellStyle) {
	if w.err != nil {
		return
	}
	w.fail("styling", cell, w.doc.SetStyle(cell, style))
}

func (w *sheetWriter) merge(from, to string) {
	if w.err != nil {
		return
	}
	w.fail("merging", from+":"+to, w.doc.Merge(from, to))
}

func (w *sheetWriter) columns() {
	for _, col := range Columns {
		if w.err != nil {
			return
		}
		w.fail("sizing column", col, w.doc.SetColumnWidth(col, columnWidths[col]))
	}
}

func (w *sheetWriter) header(l *Layout) {
	title := Cell(ColLabel, TitleRow)
	w.value(title, l.Title(), StyleTitle)
	w.merge(title, Cell(ColContribution, TitleRow))

	w.value(Cell(ColLabel, HeaderRow), "Category", StyleHeader)
	w.value(Cell(ColInput, HeaderRow), "Percentage (%)", StyleHeader)
	w.value(Cell(ColContribution, HeaderRow), "Contribution (%)", StyleHeader)
}

func (w *sheetWriter) singleBlock(b Block) {
	w.value(Cell(ColLabel, b.StartRow), b.Category.Label(), StyleBold)
	w.value(b.AggregateCell(), 0, StyleInput)
	w.formula(b.ContributionCell(), b.ContributionFormula(), StyleComputed)
}

func (w *sheetWriter) multiBlock(b Block) {
	title := Cell(ColLabel, b.StartRow)
	w.merge(title, Cell(ColInput, b.StartRow))
	w.value(title, b.Category.Label(), StyleBold)

	for i, r := 0, b.FirstItemRow; r <= b.LastItemRow; i, r = i+1, r+1 {
		w.value(Cell(ColLabel, r), fmt.Sprintf("Item %d", i+1), StyleBorder)
		w.value(Cell(ColInput, r), 0, StyleInput)
	}

	w.value(Cell(ColLabel, b.EndRow), b.AggregateLabel(), StyleBold)
	w.formula(b.AggregateCell(), b.AggregateFormula(), StyleComputed)
	w.formula(b.ContributionCell(), b.ContributionFormula(), StyleComputed)
}

func (w *sheetWriter) final(l *Layout) {
	w.value(Cell(ColLabel, l.FinalRow), "Final Grade:", StyleFinal)
	w.formula(l.FinalCell(), l.FinalFormula(), StyleFinal)
}

func (w *sheetWriter) validation(l *Layout) {
	if w.err != nil {
		return
	}
	if err := w.doc.AddValidation(l.InputRanges(), ScoreRule); err != nil {
		w.err = fmt.Errorf("adding score validation: %w", err)
	}
}
