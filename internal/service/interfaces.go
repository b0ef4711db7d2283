package service

import (
	"context"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/grading"
	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/alexanderramin/gradecalc/internal/preset"
)

// SchemeService resolves class configurations from presets and scheme files.
type SchemeService interface {
	Presets(ctx context.Context) []preset.Preset
	Preset(ctx context.Context, name string) (domain.ClassConfig, error)
	LoadFile(ctx context.Context, path string) (domain.ClassConfig, error)
	ValidateFile(ctx context.Context, path string) ([]error, error)
}

// WorkbookService turns class configurations into spreadsheets.
type WorkbookService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	Preview(ctx context.Context, cfg domain.ClassConfig) (*PreviewResult, error)
}

// ScoreService reads and updates the scores in a generated workbook.
type ScoreService interface {
	Score(ctx context.Context, req ScoreRequest) (*ScoreResult, error)
}

// GenerateRequest describes one workbook generation.
type GenerateRequest struct {
	Config domain.ClassConfig
	// FromPath is an existing workbook to regenerate into. Other sheets
	// and cells outside the calculator columns are kept.
	FromPath string
	// OutPath overrides the derived output path.
	OutPath string
	// OutDir is where the derived output file goes. Defaults to ".".
	OutDir string
	// ConfirmWeights allows generation when weights do not total 100%.
	ConfirmWeights bool
}

// GenerateResult reports what was written.
type GenerateResult struct {
	Layout  *layout.Layout
	Path    string
	Sheet   string
	Warning *domain.WeightWarning
}

// PreviewResult is an in-memory rendering of the sheet.
type PreviewResult struct {
	Layout   *layout.Layout
	Sheet    string
	Recorder *layout.Recorder
	Warning  *domain.WeightWarning
}

// ScoreUpdate sets the first len(Scores) items of a category.
type ScoreUpdate struct {
	Category string
	Scores   []float64
}

// ScoreRequest reads a workbook's scores, optionally writing updates first.
type ScoreRequest struct {
	Path    string
	Config  domain.ClassConfig
	Updates []ScoreUpdate
	// Save writes the updated workbook back to Path.
	Save bool
}

// ScoreResult is the grade breakdown of a workbook.
type ScoreResult struct {
	Result  *grading.Result
	Layout  *layout.Layout
	Sheet   string
	Written []string
	Saved   bool
}
