package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/gradecalc/internal/grading"
	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/alexanderramin/gradecalc/internal/workbook"
)

// formulaTolerance absorbs float noise between the formulas stored in a
// workbook and the natively computed grade.
const formulaTolerance = 1e-6

type scoreService struct {
	observer UseCaseObserver
}

func NewScoreService(observers ...UseCaseObserver) ScoreService {
	return &scoreService{
		observer: useCaseObserverOrNoop(observers),
	}
}

type cellWrite struct {
	cell  string
	value float64
}

func (s *scoreService) Score(ctx context.Context, req ScoreRequest) (res *ScoreResult, err error) {
	cfg := req.Config
	fields := map[string]any{
		"class":   cfg.ClassName,
		"path":    req.Path,
		"updates": len(req.Updates),
	}
	defer observe(ctx, s.observer, "score-workbook", time.Now().UTC(), fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	l, err := layout.Plan(cfg)
	if err != nil {
		return nil, err
	}

	// All updates are checked before the workbook is touched.
	writes, err := resolveUpdates(l, req.Updates)
	if err != nil {
		return nil, err
	}

	wb, err := workbook.Open(req.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = wb.Close() }()

	sheetName := layout.SheetName(cfg.ClassName)
	sheet, err := wb.ExistingSheet(sheetName)
	if err != nil {
		return nil, err
	}
	if err = checkLayout(sheet, l); err != nil {
		return nil, err
	}

	res = &ScoreResult{Layout: l, Sheet: sheetName}
	for _, w := range writes {
		if err = sheet.SetNumber(w.cell, w.value); err != nil {
			return nil, fmt.Errorf("writing %s: %w", w.cell, err)
		}
		res.Written = append(res.Written, w.cell)
	}

	cells := make(map[string]float64)
	scores := make([][]float64, len(l.Blocks))
	for i, b := range l.Blocks {
		for _, cell := range b.InputCells() {
			v, err := sheet.Number(cell)
			if err != nil {
				return nil, err
			}
			scores[i] = append(scores[i], v)
			cells[cell] = v
		}
	}

	res.Result, err = grading.Compute(cfg, scores)
	if err != nil {
		return nil, err
	}
	if err = crossCheck(sheet, l, res.Result, cells); err != nil {
		return nil, err
	}
	fields["final"] = res.Result.Final

	if req.Save && len(writes) > 0 {
		if err = wb.Save(req.Path); err != nil {
			return nil, fmt.Errorf("saving workbook: %w", err)
		}
		res.Saved = true
	}
	return res, nil
}

// resolveUpdates maps score updates to cells, validating every score.
func resolveUpdates(l *layout.Layout, updates []ScoreUpdate) ([]cellWrite, error) {
	var writes []cellWrite
	for _, u := range updates {
		b, ok := findBlock(l, u.Category)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownCategory, u.Category)
		}
		inputs := b.InputCells()
		if len(u.Scores) > len(inputs) {
			return nil, fmt.Errorf("category %q has %d items, got %d scores", b.Category.Name, len(inputs), len(u.Scores))
		}
		for i, v := range u.Scores {
			if err := grading.ValidateScore(v); err != nil {
				return nil, fmt.Errorf("category %q item %d (%s): %w. %s", b.Category.Name, i+1, inputs[i], err, layout.ScoreRule.ErrorMessage)
			}
			writes = append(writes, cellWrite{cell: inputs[i], value: v})
		}
	}
	return writes, nil
}

func findBlock(l *layout.Layout, name string) (layout.Block, bool) {
	name = strings.TrimSpace(name)
	for _, b := range l.Blocks {
		if strings.EqualFold(b.Category.Name, name) {
			return b, true
		}
	}
	return layout.Block{}, false
}

// checkLayout confirms the sheet was generated from the same scheme by
// comparing the final grade formula.
func checkLayout(sheet *workbook.Sheet, l *layout.Layout) error {
	got, err := sheet.Formula(l.FinalCell())
	if err != nil {
		return err
	}
	if want := l.FinalFormula(); got != want {
		return fmt.Errorf("%w: %s holds %q, want %q", ErrLayoutMismatch, l.FinalCell(), got, want)
	}
	return nil
}

// crossCheck evaluates the contribution and final formulas stored in the
// sheet and compares them with the computed result.
func crossCheck(sheet *workbook.Sheet, l *layout.Layout, res *grading.Result, cells map[string]float64) error {
	for i, b := range l.Blocks {
		cr := res.Categories[i]
		cells[b.AggregateCell()] = cr.Aggregate

		cell := b.ContributionCell()
		formula, err := sheet.Formula(cell)
		if err != nil {
			return err
		}
		v, err := grading.EvalFormula(formula, cells)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrLayoutMismatch, cell, err)
		}
		if math.Abs(v-cr.Contribution) > formulaTolerance {
			return fmt.Errorf("%w: %s evaluates to %g, want %g", ErrLayoutMismatch, cell, v, cr.Contribution)
		}
		cells[cell] = v
	}

	formula, err := sheet.Formula(l.FinalCell())
	if err != nil {
		return err
	}
	final, err := grading.EvalFormula(formula, cells)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLayoutMismatch, l.FinalCell(), err)
	}
	if math.Abs(final-res.Final) > formulaTolerance {
		return fmt.Errorf("%w: %s evaluates to %g, want %g", ErrLayoutMismatch, l.FinalCell(), final, res.Final)
	}
	return nil
}
