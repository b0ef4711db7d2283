package layout

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
)

// Fixed sheet geometry.
const (
	TitleRow      = 1
	HeaderRow     = 2
	FirstBlockRow = 3

	// blankRowsAfterBlock separates consecutive category blocks.
	blankRowsAfterBlock = 1

	// maxSheetNameLen is the spreadsheet limit on sheet names.
	maxSheetNameLen = 31

	// TitleSuffix ends the title cell of every generated calculator.
	TitleSuffix = " Grade Calculator"
)

// Columns. C is left empty as a spacer.
const (
	ColLabel        = "A"
	ColInput        = "B"
	ColSpare        = "C"
	ColContribution = "D"
)

// Columns lists every column the generator may populate, left to right.
var Columns = []string{ColLabel, ColInput, ColSpare, ColContribution}

// Cell joins a column letter and row number: Cell("B", 4) == "B4".
func Cell(col string, row int) string {
	return col + strconv.Itoa(row)
}

// Block is the row range one category occupies.
//
// A single-item category uses one row: label, score and contribution.
// A multi-item category uses a title row, one row per item and an
// aggregate row holding the average and the contribution.
type Block struct {
	Index        int
	Category     domain.CategoryConfig
	StartRow     int
	FirstItemRow int
	LastItemRow  int
	EndRow       int
}

// Rows returns the inclusive row range of the block, spacing excluded.
func (b Block) Rows() (first, last int) {
	return b.StartRow, b.EndRow
}

// InputCells lists the editable score cells of the block in order.
func (b Block) InputCells() []string {
	cells := make([]string, 0, b.LastItemRow-b.FirstItemRow+1)
	for r := b.FirstItemRow; r <= b.LastItemRow; r++ {
		cells = append(cells, Cell(ColInput, r))
	}
	return cells
}

// InputRange is the A1 range covering the score cells: "B4:B26" or "B3".
func (b Block) InputRange() string {
	if b.FirstItemRow == b.LastItemRow {
		return Cell(ColInput, b.FirstItemRow)
	}
	return Cell(ColInput, b.FirstItemRow) + ":" + Cell(ColInput, b.LastItemRow)
}

// AggregateCell holds the category average. For a single-item category
// this is the score cell itself.
func (b Block) AggregateCell() string {
	return Cell(ColInput, b.EndRow)
}

// ContributionCell holds aggregate * weight/100.
func (b Block) ContributionCell() string {
	return Cell(ColContribution, b.EndRow)
}

// AggregateFormula returns the averaging formula, or "" for a single-item
// category whose aggregate is the raw score.
func (b Block) AggregateFormula() string {
	if b.Category.IsSingle() {
		return ""
	}
	if b.Category.DropsItems() {
		return BestOfFormula(b.InputRange(), b.Category.BestOf)
	}
	return AverageFormula(b.InputRange())
}

// ContributionFormula returns the weighted contribution formula.
func (b Block) ContributionFormula() string {
	return ContributionFormula(b.AggregateCell(), b.Category.Weight)
}

// AggregateLabel is the label written next to the aggregate formula.
func (b Block) AggregateLabel() string {
	return "Best " + strconv.Itoa(b.Category.BestOf) + " Average:"
}

// Layout is the full placement of a class configuration on the sheet.
type Layout struct {
	ClassName string
	Blocks    []Block
	FinalRow  int
}

// Title is the text of the merged title row.
func (l *Layout) Title() string {
	return l.ClassName + TitleSuffix
}

// ContributionCells lists every category contribution cell in input order.
func (l *Layout) ContributionCells() []string {
	cells := make([]string, len(l.Blocks))
	for i, b := range l.Blocks {
		cells[i] = b.ContributionCell()
	}
	return cells
}

// FinalCell holds the final grade.
func (l *Layout) FinalCell() string {
	return Cell(ColContribution, l.FinalRow)
}

// FinalFormula sums every contribution cell.
func (l *Layout) FinalFormula() string {
	return SumFormula(l.ContributionCells())
}

// InputRanges lists the score ranges of every block, in order.
func (l *Layout) InputRanges() []string {
	ranges := make([]string, len(l.Blocks))
	for i, b := range l.Blocks {
		ranges[i] = b.InputRange()
	}
	return ranges
}

// Plan validates cfg and computes where every category lands. It performs
// no writes.
func Plan(cfg domain.ClassConfig) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Layout{
		ClassName: strings.TrimSpace(cfg.ClassName),
		Blocks:    make([]Block, 0, len(cfg.Categories)),
	}

	row := FirstBlockRow
	for i, cat := range cfg.Categories {
		b := Block{Index: i, Category: cat, StartRow: row}
		if cat.IsSingle() {
			b.FirstItemRow = row
			b.LastItemRow = row
			b.EndRow = row
		} else {
			b.FirstItemRow = row + 1
			b.LastItemRow = row + cat.TotalItems
			b.EndRow = b.LastItemRow + 1
		}
		l.Blocks = append(l.Blocks, b)
		row = b.EndRow + 1 + blankRowsAfterBlock
	}
	l.FinalRow = row

	return l, nil
}

// SheetName derives the worksheet name for a class, trimmed to the
// spreadsheet limit and stripped of characters sheet names cannot hold.
func SheetName(className string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(className)+TitleSuffix)
	name = strings.Trim(name, "'")

	runes := []rune(name)
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	return strings.TrimSpace(string(runes))
}

// DefaultFileName is the output file name used when none is given.
func DefaultFileName(className string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(className))
	return name + "_Grade_Calculator.xlsx"
}
