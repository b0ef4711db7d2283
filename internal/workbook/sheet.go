package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a Workbook. It implements layout.Document.
type Sheet struct {
	wb   *Workbook
	name string
}

var _ layout.Document = (*Sheet)(nil)

// Name is the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Reset clears columns A through D of every used row, along with the
// merged ranges that start in those columns and the part of any data
// validation that covers them. Cells to the right of column D are left
// alone.
func (s *Sheet) Reset() error {
	f := s.wb.file
	lastCol := len(layout.Columns)

	merges, err := f.GetMergeCells(s.name)
	if err != nil {
		return fmt.Errorf("reading merged cells: %w", err)
	}
	for _, m := range merges {
		col, _, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil || col > lastCol {
			continue
		}
		if err := f.UnmergeCell(s.name, m.GetStartAxis(), m.GetEndAxis()); err != nil {
			return fmt.Errorf("unmerging %s:%s: %w", m.GetStartAxis(), m.GetEndAxis(), err)
		}
	}

	dvs, err := f.GetDataValidations(s.name)
	if err != nil {
		return fmt.Errorf("reading data validations: %w", err)
	}
	dvRows := 0
	for _, dv := range dvs {
		if row := lastRowInColumns(dv.Sqref, lastCol); row > dvRows {
			dvRows = row
		}
	}
	if dvRows > 0 {
		region := layout.Cell(layout.Columns[0], 1) + ":" + layout.Cell(layout.Columns[lastCol-1], dvRows)
		if err := f.DeleteDataValidation(s.name, region); err != nil {
			return fmt.Errorf("removing data validations: %w", err)
		}
	}

	maxRow, err := s.usedRows()
	if err != nil {
		return err
	}
	for r := 1; r <= maxRow; r++ {
		for _, col := range layout.Columns {
			cell := layout.Cell(col, r)
			if err := f.SetCellValue(s.name, cell, ""); err != nil {
				return fmt.Errorf("clearing %s: %w", cell, err)
			}
			if err := f.SetCellFormula(s.name, cell, ""); err != nil {
				return fmt.Errorf("clearing formula %s: %w", cell, err)
			}
			if err := f.SetCellStyle(s.name, cell, cell, 0); err != nil {
				return fmt.Errorf("clearing style %s: %w", cell, err)
			}
		}
	}
	return nil
}

// lastRowInColumns returns the last row of sqref that falls in columns
// 1..lastCol, 0 when none does.
func lastRowInColumns(sqref string, lastCol int) int {
	last := 0
	for _, ref := range strings.Fields(sqref) {
		from, to, _ := strings.Cut(ref, ":")
		if to == "" {
			to = from
		}
		c1, r1, err := excelize.CellNameToCoordinates(from)
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(to)
		if err != nil {
			continue
		}
		if min(c1, c2) > lastCol {
			continue
		}
		last = max(last, r1, r2)
	}
	return last
}

// usedRows returns the last row that may hold content, taking the larger
// of the recorded sheet dimension and the last non-empty row.
func (s *Sheet) usedRows() (int, error) {
	f := s.wb.file

	rows, err := f.GetRows(s.name)
	if err != nil {
		return 0, fmt.Errorf("reading rows: %w", err)
	}
	maxRow := len(rows)

	dim, err := f.GetSheetDimension(s.name)
	if err != nil {
		return 0, fmt.Errorf("reading sheet dimension: %w", err)
	}
	parts := strings.Split(dim, ":")
	if last := parts[len(parts)-1]; last != "" {
		if _, row, err := excelize.CellNameToCoordinates(last); err == nil && row > maxRow {
			maxRow = row
		}
	}
	return maxRow, nil
}

func (s *Sheet) SetColumnWidth(col string, width float64) error {
	return s.wb.file.SetColWidth(s.name, col, col, width)
}

func (s *Sheet) SetValue(cell string, value any) error {
	return s.wb.file.SetCellValue(s.name, cell, value)
}

func (s *Sheet) SetFormula(cell, formula string) error {
	return s.wb.file.SetCellFormula(s.name, cell, formula)
}

func (s *Sheet) SetStyle(cell string, style layout.CellStyle) error {
	id, err := s.wb.styleID(style)
	if err != nil {
		return err
	}
	return s.wb.file.SetCellStyle(s.name, cell, cell, id)
}

func (s *Sheet) Merge(topLeft, bottomRight string) error {
	return s.wb.file.MergeCell(s.name, topLeft, bottomRight)
}

func (s *Sheet) AddValidation(sqref []string, rule layout.RangeRule) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = strings.Join(sqref, " ")
	if err := dv.SetRange(rule.Min, rule.Max, excelize.DataValidationTypeDecimal, excelize.DataValidationOperatorBetween); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, rule.ErrorTitle, rule.ErrorMessage)
	return s.wb.file.AddDataValidation(s.name, dv)
}

// Value returns the raw stored value of a cell, "" when empty.
func (s *Sheet) Value(cell string) (string, error) {
	return s.wb.file.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
}

// Formula returns the formula of a cell without a leading "=", "" when the
// cell holds a plain value.
func (s *Sheet) Formula(cell string) (string, error) {
	formula, err := s.wb.file.GetCellFormula(s.name, cell)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(formula, "="), nil
}

// Number reads a numeric cell. Empty cells read as 0, matching the default
// written into every score cell.
func (s *Sheet) Number(cell string) (float64, error) {
	raw, err := s.Value(cell)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cell %s holds %q, not a number", cell, raw)
	}
	return v, nil
}

// SetNumber writes a plain number into a cell, keeping its style.
func (s *Sheet) SetNumber(cell string, v float64) error {
	return s.wb.file.SetCellFloat(s.name, cell, v, -1, 64)
}
