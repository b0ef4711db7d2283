package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when a workbook has no sheet by the
// requested name.
var ErrSheetNotFound = errors.New("sheet not found")

const defaultSheet = "Sheet1"

// Workbook wraps an excelize file. A Workbook is not safe for concurrent use.
type Workbook struct {
	file   *excelize.File
	path   string
	fresh  bool
	styles map[layout.CellStyle]int
}

// New returns an empty workbook holding only the default sheet.
func New() *Workbook {
	return &Workbook{
		file:   excelize.NewFile(),
		fresh:  true,
		styles: make(map[layout.CellStyle]int),
	}
}

// Open loads an existing .xlsx file.
func Open(path string) (*Workbook, error) {
	if path == "" {
		return nil, errors.New("workbook path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workbook not found: %w", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &Workbook{
		file:   f,
		path:   path,
		styles: make(map[layout.CellStyle]int),
	}, nil
}

// Path is the file the workbook was opened from, "" for a new workbook.
func (w *Workbook) Path() string {
	return w.path
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames lists the workbook's sheets in tab order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Sheet returns the named sheet, creating it when missing, and makes it
// the active sheet. In a new workbook the default sheet is renamed rather
// than left behind empty.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if w.fresh {
		w.fresh = false
		if name != defaultSheet {
			if err := w.file.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("naming sheet %q: %w", name, err)
			}
		}
	}

	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %q: %w", name, err)
	}
	if idx == -1 {
		idx, err = w.file.NewSheet(name)
		if err != nil {
			return nil, fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}
	w.file.SetActiveSheet(idx)

	return &Sheet{wb: w, name: name}, nil
}

// CalculatorSheet picks the sheet a regenerated calculator is written to
// and renames it to name. A sheet already called name wins, then the active
// sheet, then the first sheet whose title cell ends in layout.TitleSuffix.
// Without any of those a new sheet is created.
func (w *Workbook) CalculatorSheet(name string) (*Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %q: %w", name, err)
	}
	if idx != -1 {
		return w.Sheet(name)
	}

	active := w.file.GetSheetName(w.file.GetActiveSheetIndex())
	for _, candidate := range append([]string{active}, w.SheetNames()...) {
		if candidate == "" {
			continue
		}
		ok, err := w.isCalculator(candidate)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := w.file.SetSheetName(candidate, name); err != nil {
			return nil, fmt.Errorf("renaming sheet %q to %q: %w", candidate, name, err)
		}
		return w.Sheet(name)
	}
	return w.Sheet(name)
}

func (w *Workbook) isCalculator(sheet string) (bool, error) {
	title, err := w.file.GetCellValue(sheet, layout.Cell(layout.ColLabel, layout.TitleRow))
	if err != nil {
		return false, fmt.Errorf("reading title of %q: %w", sheet, err)
	}
	return strings.HasSuffix(strings.TrimSpace(title), layout.TitleSuffix), nil
}

// ExistingSheet returns the named sheet or ErrSheetNotFound.
func (w *Workbook) ExistingSheet(name string) (*Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %q: %w", name, err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q (sheets: %s)", ErrSheetNotFound, name, strings.Join(w.SheetNames(), ", "))
	}
	return &Sheet{wb: w, name: name}, nil
}

// SetProperties stamps the document metadata. Each call assigns a new
// identifier so regenerated files are distinguishable.
func (w *Workbook) SetProperties(title, description string) error {
	return w.file.SetDocProps(&excelize.DocProperties{
		Title:       title,
		Subject:     "Grade calculator",
		Description: description,
		Creator:     "gradecalc",
		Identifier:  uuid.NewString(),
	})
}

// Save writes the workbook to path. The content goes to a temporary file
// in the same directory which is renamed over path once fully written, so
// a failed save never leaves a truncated file behind.
func (w *Workbook) Save(path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gradecalc-*.xlsx")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = w.file.Write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	w.path = path
	return nil
}
