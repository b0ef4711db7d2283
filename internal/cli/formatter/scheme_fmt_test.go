package formatter

import (
	"errors"
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/preset"
	"github.com/alexanderramin/gradecalc/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatPresetList(t *testing.T) {
	out := FormatPresetList(preset.List())
	assert.Contains(t, out, "PRESETS")
	assert.Contains(t, out, "mat137")
	assert.Contains(t, out, "MAT137")
	assert.Contains(t, out, "108")
	assert.Contains(t, out, "100%")
}

func TestFormatScheme(t *testing.T) {
	out := FormatScheme(testutil.TwoCategoryClass())
	assert.Contains(t, out, "TEST101")
	assert.Contains(t, out, "Quizzes")
	assert.Contains(t, out, "best 3 of 4")
	assert.Contains(t, out, "single")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "100%")
}

func TestFormatWeightWarning(t *testing.T) {
	out := FormatWeightWarning(&domain.WeightWarning{Total: 90})
	assert.Contains(t, out, "Weights total 90%, not 100%")
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors("bad.json", []error{
		errors.New("class_name is required"),
		errors.New("categories[0].weight is required"),
	})
	assert.Contains(t, out, "bad.json: 2 error(s)")
	assert.Contains(t, out, "1. class_name is required")
	assert.Contains(t, out, "2. categories[0].weight is required")
}
