package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/alexanderramin/gradecalc/internal/workbook"
)

type workbookService struct {
	observer UseCaseObserver
}

func NewWorkbookService(observers ...UseCaseObserver) WorkbookService {
	return &workbookService{
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *workbookService) Generate(ctx context.Context, req GenerateRequest) (res *GenerateResult, err error) {
	cfg := req.Config
	fields := map[string]any{
		"class":      cfg.ClassName,
		"categories": len(cfg.Categories),
	}
	defer observe(ctx, s.observer, "generate-workbook", time.Now().UTC(), fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	warning := cfg.WeightWarning()
	if warning != nil && !req.ConfirmWeights {
		return nil, fmt.Errorf("%w (%s)", ErrWeightNotConfirmed, warning.Error())
	}

	sheetName := layout.SheetName(cfg.ClassName)
	var (
		wb    *workbook.Workbook
		sheet *workbook.Sheet
	)
	if req.FromPath != "" {
		wb, err = workbook.Open(req.FromPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = wb.Close() }()
		fields["from"] = req.FromPath
		sheet, err = wb.CalculatorSheet(sheetName)
	} else {
		wb = workbook.New()
		defer func() { _ = wb.Close() }()
		sheet, err = wb.Sheet(sheetName)
	}
	if err != nil {
		return nil, err
	}

	l, err := layout.Generate(sheet, cfg)
	if err != nil {
		return nil, err
	}
	fields["final_row"] = l.FinalRow
	fields["score_cells"] = cfg.TotalItems()

	desc := fmt.Sprintf("%d categories, %d score cells", len(cfg.Categories), cfg.TotalItems())
	if err = wb.SetProperties(l.Title(), desc); err != nil {
		return nil, fmt.Errorf("setting document properties: %w", err)
	}

	out := outputPath(req)
	fields["output"] = out
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = wb.Save(out); err != nil {
		return nil, fmt.Errorf("saving workbook: %w", err)
	}

	return &GenerateResult{
		Layout:  l,
		Path:    out,
		Sheet:   sheetName,
		Warning: warning,
	}, nil
}

func (s *workbookService) Preview(ctx context.Context, cfg domain.ClassConfig) (*PreviewResult, error) {
	rec := layout.NewRecorder()
	l, err := layout.Generate(rec, cfg)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Layout:   l,
		Sheet:    layout.SheetName(cfg.ClassName),
		Recorder: rec,
		Warning:  cfg.WeightWarning(),
	}, nil
}

// outputPath picks the file to write: an explicit path, else the base name
// of the workbook regenerated from, else <class>_Grade_Calculator.xlsx.
func outputPath(req GenerateRequest) string {
	if req.OutPath != "" {
		return req.OutPath
	}
	name := layout.DefaultFileName(req.Config.ClassName)
	if req.FromPath != "" {
		name = filepath.Base(req.FromPath)
	}
	return filepath.Join(domain.CoalesceStr(req.OutDir, "."), name)
}
