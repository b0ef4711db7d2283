package layout

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RecordedCell is the state of one cell in a Recorder.
type RecordedCell struct {
	Value   any
	Formula string
	Style   CellStyle
	Styled  bool
}

// RecordedValidation is one AddValidation call.
type RecordedValidation struct {
	Sqref []string
	Rule  RangeRule
}

// Recorder is an in-memory Document. It keeps the resulting cell state and
// a log of every call, so callers can inspect a generation without any file
// I/O.
type Recorder struct {
	cells       map[string]*RecordedCell
	Merges      []string
	Validations []RecordedValidation
	Widths      map[string]float64
	Ops         []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		cells:  make(map[string]*RecordedCell),
		Widths: make(map[string]float64),
	}
}

func (r *Recorder) cell(ref string) *RecordedCell {
	c, ok := r.cells[ref]
	if !ok {
		c = &RecordedCell{}
		r.cells[ref] = c
	}
	return c
}

func (r *Recorder) Reset() error {
	r.Ops = append(r.Ops, "reset")
	r.cells = make(map[string]*RecordedCell)
	r.Merges = nil
	r.Validations = nil
	return nil
}

func (r *Recorder) SetColumnWidth(col string, width float64) error {
	r.Ops = append(r.Ops, "width "+col)
	r.Widths[col] = width
	return nil
}

func (r *Recorder) SetValue(ref string, value any) error {
	if _, _, err := SplitCell(ref); err != nil {
		return err
	}
	r.Ops = append(r.Ops, "value "+ref)
	c := r.cell(ref)
	c.Value = value
	c.Formula = ""
	return nil
}

func (r *Recorder) SetFormula(ref, formula string) error {
	if _, _, err := SplitCell(ref); err != nil {
		return err
	}
	r.Ops = append(r.Ops, "formula "+ref)
	c := r.cell(ref)
	c.Formula = formula
	c.Value = nil
	return nil
}

func (r *Recorder) SetStyle(ref string, style CellStyle) error {
	if _, _, err := SplitCell(ref); err != nil {
		return err
	}
	r.Ops = append(r.Ops, "style "+ref)
	c := r.cell(ref)
	c.Style = style
	c.Styled = true
	return nil
}

func (r *Recorder) Merge(topLeft, bottomRight string) error {
	r.Ops = append(r.Ops, "merge "+topLeft+":"+bottomRight)
	r.Merges = append(r.Merges, topLeft+":"+bottomRight)
	return nil
}

func (r *Recorder) AddValidation(sqref []string, rule RangeRule) error {
	r.Ops = append(r.Ops, "validation")
	r.Validations = append(r.Validations, RecordedValidation{
		Sqref: append([]string(nil), sqref...),
		Rule:  rule,
	})
	return nil
}

// Cell returns the recorded state of ref.
func (r *Recorder) Cell(ref string) (RecordedCell, bool) {
	c, ok := r.cells[ref]
	if !ok {
		return RecordedCell{}, false
	}
	return *c, true
}

// Display renders a cell the way a spreadsheet shows it in the formula
// bar: "=FORMULA" for formulas, the value otherwise, "" when empty.
func (r *Recorder) Display(ref string) string {
	c, ok := r.cells[ref]
	if !ok {
		return ""
	}
	if c.Formula != "" {
		return "=" + c.Formula
	}
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value)
}

// Refs returns every populated cell reference, ordered by row then column.
func (r *Recorder) Refs() []string {
	refs := make([]string, 0, len(r.cells))
	for ref, c := range r.cells {
		if c.Formula == "" && c.Value == nil {
			continue
		}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		ci, ri, _ := SplitCell(refs[i])
		cj, rj, _ := SplitCell(refs[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return refs
}

// MaxRow is the last row holding a value or formula, 0 when empty.
func (r *Recorder) MaxRow() int {
	maxRow := 0
	for _, ref := range r.Refs() {
		_, row, _ := SplitCell(ref)
		if row > maxRow {
			maxRow = row
		}
	}
	return maxRow
}

// Grid renders rows 1..MaxRow across Columns using Display.
func (r *Recorder) Grid() [][]string {
	maxRow := r.MaxRow()
	grid := make([][]string, 0, maxRow)
	for row := 1; row <= maxRow; row++ {
		line := make([]string, len(Columns))
		for i, col := range Columns {
			line[i] = r.Display(Cell(col, row))
		}
		grid = append(grid, line)
	}
	return grid
}

// SplitCell parses an A1 reference into its column letters and row number.
func SplitCell(ref string) (string, int, error) {
	i := strings.IndexFunc(ref, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 {
		return "", 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	col := ref[:i]
	for _, c := range col {
		if c < 'A' || c > 'Z' {
			return "", 0, fmt.Errorf("invalid cell reference %q", ref)
		}
	}
	row, err := strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	return col, row, nil
}
