package layout

import (
	"errors"
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_TwoCategoryClass(t *testing.T) {
	rec := NewRecorder()
	l, err := Generate(rec, testutil.TwoCategoryClass())
	require.NoError(t, err)

	expected := map[string]string{
		"A1":  "TEST101 Grade Calculator",
		"A2":  "Category",
		"B2":  "Percentage (%)",
		"D2":  "Contribution (%)",
		"A3":  "Quizzes (40%)",
		"A4":  "Item 1",
		"B4":  "0",
		"A7":  "Item 4",
		"B7":  "0",
		"A8":  "Best 3 Average:",
		"B8":  "=AVERAGE(LARGE(B4:B7,{1,2,3}))",
		"D8":  "=B8*0.4",
		"A10": "Exam (60%)",
		"B10": "0",
		"D10": "=B10*0.6",
		"A12": "Final Grade:",
		"D12": "=SUM(D8,D10)",
	}
	for ref, want := range expected {
		assert.Equal(t, want, rec.Display(ref), "cell %s", ref)
	}

	for _, empty := range []string{"C3", "B3", "A9", "A11", "B12", "A13"} {
		assert.Empty(t, rec.Display(empty), "cell %s should be empty", empty)
	}

	assert.Equal(t, 12, l.FinalRow)
	assert.Equal(t, 12, rec.MaxRow())
	assert.Equal(t, []string{"A1:D1", "A3:B3"}, rec.Merges)
}

func TestGenerate_Styles(t *testing.T) {
	rec := NewRecorder()
	_, err := Generate(rec, testutil.TwoCategoryClass())
	require.NoError(t, err)

	tests := []struct {
		ref   string
		style CellStyle
	}{
		{"A1", StyleTitle},
		{"A2", StyleHeader},
		{"D2", StyleHeader},
		{"A3", StyleBold},
		{"A4", StyleBorder},
		{"B4", StyleInput},
		{"B10", StyleInput},
		{"A8", StyleBold},
		{"B8", StyleComputed},
		{"D8", StyleComputed},
		{"D10", StyleComputed},
		{"A12", StyleFinal},
		{"D12", StyleFinal},
	}
	for _, tt := range tests {
		c, ok := rec.Cell(tt.ref)
		require.True(t, ok, tt.ref)
		assert.True(t, c.Styled, tt.ref)
		assert.Equal(t, tt.style, c.Style, "cell %s: got %s", tt.ref, c.Style)
	}

	// Every populated cell carries a style, and therefore a border.
	for _, ref := range rec.Refs() {
		c, _ := rec.Cell(ref)
		assert.True(t, c.Styled, "cell %s is populated but unstyled", ref)
	}
}

func TestGenerate_ScoreValidation(t *testing.T) {
	rec := NewRecorder()
	_, err := Generate(rec, testutil.TwoCategoryClass())
	require.NoError(t, err)

	require.Len(t, rec.Validations, 1)
	v := rec.Validations[0]
	assert.Equal(t, []string{"B4:B7", "B10"}, v.Sqref)
	assert.Equal(t, 0.0, v.Rule.Min)
	assert.Equal(t, 100.0, v.Rule.Max)
	assert.Equal(t, "Invalid Input", v.Rule.ErrorTitle)
	assert.Equal(t, "Please enter a value between 0 and 100", v.Rule.ErrorMessage)
}

func TestGenerate_ColumnWidths(t *testing.T) {
	rec := NewRecorder()
	_, err := Generate(rec, testutil.TwoCategoryClass())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 25, "B": 15, "C": 15, "D": 15}, rec.Widths)
}

func TestGenerate_InvalidConfigLeavesDocumentUntouched(t *testing.T) {
	rec := NewRecorder()
	cfg := testutil.NewTestClass("X",
		testutil.NewTestCategory("Quizzes", testutil.WithWeight(100), testutil.WithItems(3, 5)),
	)

	l, err := Generate(rec, cfg)
	require.Error(t, err)
	assert.Nil(t, l)
	assert.True(t, errors.Is(err, domain.ErrBestOfExceedsTotal))
	assert.Empty(t, rec.Ops, "no document call may happen before validation passes")
}

func TestGenerate_RegenerateResetsFirst(t *testing.T) {
	rec := NewRecorder()
	_, err := Generate(rec, testutil.TwoCategoryClass())
	require.NoError(t, err)

	smaller := testutil.NewTestClass("TEST101", testutil.NewTestCategory("Exam", testutil.WithWeight(100)))
	l, err := Generate(rec, smaller)
	require.NoError(t, err)

	assert.Equal(t, 5, l.FinalRow)
	assert.Equal(t, 5, rec.MaxRow())
	assert.Equal(t, "=SUM(D3)", rec.Display("D5"))
	assert.Empty(t, rec.Display("D12"))
	assert.Equal(t, []string{"A1:D1"}, rec.Merges)
	assert.Len(t, rec.Validations, 1)
}

type failingDoc struct {
	*Recorder
	failOn string
}

func (d *failingDoc) SetFormula(ref, formula string) error {
	if ref == d.failOn {
		return errors.New("disk full")
	}
	return d.Recorder.SetFormula(ref, formula)
}

func TestGenerate_StopsAtFirstWriteError(t *testing.T) {
	doc := &failingDoc{Recorder: NewRecorder(), failOn: "D8"}
	_, err := Generate(doc, testutil.TwoCategoryClass())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing formula D8: disk full")
	assert.Empty(t, doc.Display("D12"), "writes after the failure must not happen")
}
