package preset

import (
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPresets_Validate(t *testing.T) {
	require.NotEmpty(t, Names())
	for _, p := range List() {
		t.Run(p.Key, func(t *testing.T) {
			require.NoError(t, p.Config.Validate())
			assert.Nil(t, p.Config.WeightWarning(), "preset %s weights should total 100", p.Key)
		})
	}
}

func TestMAT137(t *testing.T) {
	cfg, ok := Lookup("MAT137")
	require.True(t, ok)

	assert.Equal(t, "MAT137", cfg.ClassName)
	want := []domain.CategoryConfig{
		{Name: "Pre-course Module", Weight: 2, TotalItems: 1, BestOf: 1},
		{Name: "Computation Quizzes", Weight: 3, TotalItems: 1, BestOf: 1},
		{Name: "Tutorial Worksheets", Weight: 5, TotalItems: 23, BestOf: 17},
		{Name: "Pre-class Quizzes", Weight: 5, TotalItems: 70, BestOf: 50},
		{Name: "Problem Sets", Weight: 12, TotalItems: 8, BestOf: 6},
		{Name: "Term Tests", Weight: 39, TotalItems: 4, BestOf: 3},
		{Name: "Final Exam", Weight: 34, TotalItems: 1, BestOf: 1},
	}
	assert.Equal(t, want, cfg.Categories)
	assert.Equal(t, 108, cfg.TotalItems())
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	cfg, ok := Lookup(Default)
	require.True(t, ok)
	cfg.Categories[0].Weight = 99

	again := Get(Default)
	assert.Equal(t, 2.0, again.Categories[0].Weight)
}
