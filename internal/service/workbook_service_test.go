package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/layout"
	"github.com/alexanderramin/gradecalc/internal/testutil"
	"github.com/alexanderramin/gradecalc/internal/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	obs := &recordingObserver{}
	svc := NewWorkbookService(obs)

	res, err := svc.Generate(context.Background(), GenerateRequest{
		Config: testutil.TwoCategoryClass(),
		OutDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "TEST101_Grade_Calculator.xlsx"), res.Path)
	assert.Equal(t, "TEST101 Grade Calculator", res.Sheet)
	assert.Equal(t, 12, res.Layout.FinalRow)
	assert.Nil(t, res.Warning)
	assert.FileExists(t, res.Path)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "generate-workbook", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "TEST101", ev.Fields["class"])
	assert.Equal(t, res.Path, ev.Fields["output"])
}

func TestGenerate_InvalidConfigWritesNothing(t *testing.T) {
	dir := t.TempDir()
	obs := &recordingObserver{}
	cfg := testutil.NewTestClass("TEST101",
		testutil.NewTestCategory("Quizzes", testutil.WithWeight(100), testutil.WithItems(4, 5)),
	)

	_, err := NewWorkbookService(obs).Generate(context.Background(), GenerateRequest{Config: cfg, OutDir: dir})
	require.ErrorIs(t, err, domain.ErrBestOfExceedsTotal)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Error(t, obs.events[0].Err)
}

func TestGenerate_WeightWarning(t *testing.T) {
	dir := t.TempDir()
	cfg := testutil.NewTestClass("TEST101",
		testutil.NewTestCategory("Quizzes", testutil.WithWeight(60), testutil.WithItems(4, 3)),
		testutil.NewTestCategory("Exam", testutil.WithWeight(30)),
	)
	svc := NewWorkbookService()

	_, err := svc.Generate(context.Background(), GenerateRequest{Config: cfg, OutDir: dir})
	require.ErrorIs(t, err, ErrWeightNotConfirmed)
	assert.Contains(t, err.Error(), "total weight is 90%")
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)

	res, err := svc.Generate(context.Background(), GenerateRequest{Config: cfg, OutDir: dir, ConfirmWeights: true})
	require.NoError(t, err)
	require.NotNil(t, res.Warning)
	assert.InDelta(t, 90, res.Warning.Total, 1e-9)
	assert.FileExists(t, res.Path)
}

func TestGenerate_ExplicitOutPath(t *testing.T) {
	out := tempFile(t, "grades.xlsx")

	res, err := NewWorkbookService().Generate(context.Background(), GenerateRequest{
		Config:  testutil.TwoCategoryClass(),
		OutPath: out,
		OutDir:  "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, out, res.Path)
	assert.FileExists(t, out)
}

func TestGenerate_FromExistingWorkbook(t *testing.T) {
	path := generateWorkbook(t, testutil.TwoCategoryClass())

	// Put user content next to the calculator before regenerating.
	wb, err := workbook.Open(path)
	require.NoError(t, err)
	notes, err := wb.Sheet("Notes")
	require.NoError(t, err)
	require.NoError(t, notes.SetValue("A1", "keep me"))
	require.NoError(t, wb.Save(path))
	require.NoError(t, wb.Close())

	smaller := testutil.NewTestClass("TEST101",
		testutil.NewTestCategory("Quizzes", testutil.WithWeight(40), testutil.WithItems(2, 2)),
		testutil.NewTestCategory("Exam", testutil.WithWeight(60)),
	)
	outDir := t.TempDir()
	res, err := NewWorkbookService().Generate(context.Background(), GenerateRequest{
		Config:   smaller,
		FromPath: path,
		OutDir:   outDir,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, filepath.Base(path)), res.Path)

	wb, err = workbook.Open(res.Path)
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t, []string{"TEST101 Grade Calculator", "Notes"}, wb.SheetNames())
	notes, err = wb.ExistingSheet("Notes")
	require.NoError(t, err)
	v, err := notes.Value("A1")
	require.NoError(t, err)
	assert.Equal(t, "keep me", v)

	sheet, err := wb.ExistingSheet("TEST101 Grade Calculator")
	require.NoError(t, err)
	final, err := sheet.Formula(res.Layout.FinalCell())
	require.NoError(t, err)
	assert.Equal(t, "SUM(D6,D8)", final)
	stale, err := sheet.Formula("D12")
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestGenerate_FromExistingWorkbook_RenamedClass(t *testing.T) {
	path := generateWorkbook(t, testutil.TwoCategoryClass())

	renamed := testutil.TwoCategoryClass()
	renamed.ClassName = "TEST102"
	res, err := NewWorkbookService().Generate(context.Background(), GenerateRequest{
		Config:   renamed,
		FromPath: path,
		OutPath:  tempFile(t, "renamed.xlsx"),
	})
	require.NoError(t, err)
	assert.Equal(t, "TEST102 Grade Calculator", res.Sheet)

	wb, err := workbook.Open(res.Path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"TEST102 Grade Calculator"}, wb.SheetNames(), "one calculator sheet")
	sheet, err := wb.ExistingSheet("TEST102 Grade Calculator")
	require.NoError(t, err)
	title, err := sheet.Value("A1")
	require.NoError(t, err)
	assert.Equal(t, "TEST102 Grade Calculator", title)
	final, err := sheet.Formula("D12")
	require.NoError(t, err)
	assert.Equal(t, "SUM(D8,D10)", final)
}

func TestGenerate_FromMissingWorkbook(t *testing.T) {
	_, err := NewWorkbookService().Generate(context.Background(), GenerateRequest{
		Config:   testutil.TwoCategoryClass(),
		FromPath: tempFile(t, "missing.xlsx"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWorkbookService().Generate(ctx, GenerateRequest{Config: testutil.TwoCategoryClass(), OutDir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPreview(t *testing.T) {
	res, err := NewWorkbookService().Preview(context.Background(), testutil.TwoCategoryClass())
	require.NoError(t, err)

	assert.Equal(t, "TEST101 Grade Calculator", res.Sheet)
	assert.Equal(t, "=SUM(D8,D10)", res.Recorder.Display("D12"))
	assert.Equal(t, 12, res.Recorder.MaxRow())
	assert.Nil(t, res.Warning)
}

func TestPreview_Invalid(t *testing.T) {
	_, err := NewWorkbookService().Preview(context.Background(), domain.ClassConfig{ClassName: "X"})
	require.ErrorIs(t, err, domain.ErrNoCategories)
}

func TestOutputPath(t *testing.T) {
	cfg := testutil.TwoCategoryClass()
	tests := []struct {
		name string
		req  GenerateRequest
		want string
	}{
		{"derived", GenerateRequest{Config: cfg}, filepath.Join(".", "TEST101_Grade_Calculator.xlsx")},
		{"derived in dir", GenerateRequest{Config: cfg, OutDir: "out"}, filepath.Join("out", "TEST101_Grade_Calculator.xlsx")},
		{"from file", GenerateRequest{Config: cfg, FromPath: "/tmp/old/mine.xlsx", OutDir: "out"}, filepath.Join("out", "mine.xlsx")},
		{"explicit", GenerateRequest{Config: cfg, OutPath: "x.xlsx", FromPath: "y.xlsx"}, "x.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputPath(tt.req))
		})
	}
	assert.Equal(t, layout.DefaultFileName(cfg.ClassName), filepath.Base(outputPath(GenerateRequest{Config: cfg})))
}
