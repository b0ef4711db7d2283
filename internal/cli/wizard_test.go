package cli

import (
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/preset"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWeight(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"39", false},
		{" 33.3 ", false},
		{"0", false},
		{"100", false},
		{"", true},
		{"abc", true},
		{"-1", true},
		{"100.5", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateWeight(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequiredPositiveInt(t *testing.T) {
	assert.NoError(t, validateRequiredPositiveInt("4"))
	assert.Error(t, validateRequiredPositiveInt(""))
	assert.Error(t, validateRequiredPositiveInt("0"))
	assert.Error(t, validateRequiredPositiveInt("2.5"))
}

func TestValidateBestOf(t *testing.T) {
	total := "4"
	validate := validateBestOf(&total)

	assert.NoError(t, validate(""))
	assert.NoError(t, validate("3"))
	assert.NoError(t, validate("4"))
	assert.Error(t, validate("0"))
	assert.EqualError(t, validate("5"), "'Best of' (5) cannot be greater than 'Total items' (4)")

	total = "6"
	assert.NoError(t, validate("5"), "limit follows the total field")
}

func TestValidateRequired(t *testing.T) {
	validate := validateRequired("class name")
	assert.NoError(t, validate("MAT137"))
	assert.EqualError(t, validate("   "), "class name is required")
}

func TestCategoryInput_RoundTrip(t *testing.T) {
	cat := domain.CategoryConfig{Name: "Term Tests", Weight: 39, TotalItems: 4, BestOf: 3}

	in := newCategoryInput(cat)
	assert.Equal(t, "39", in.Weight)
	assert.True(t, in.Keep)

	got, err := in.category()
	require.NoError(t, err)
	assert.Equal(t, cat, got)
}

func TestCategoryInput_BlankBestOfCountsAll(t *testing.T) {
	in := categoryInput{Name: " Labs ", Weight: "12.5", Total: "8"}

	got, err := in.category()
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryConfig{Name: "Labs", Weight: 12.5, TotalItems: 8, BestOf: 8}, got)
}

func TestCategoryInput_BadWeight(t *testing.T) {
	_, err := categoryInput{Name: "Labs", Weight: "lots", Total: "1"}.category()
	assert.Error(t, err)
}

func TestFormsBuild(t *testing.T) {
	name := "MAT137"
	in := newCategoryInput(domain.CategoryConfig{Name: "Exam", Weight: 100, TotalItems: 1, BestOf: 1})
	ok := false

	assert.NotNil(t, classNameForm(&name))
	assert.NotNil(t, categoryForm(0, &in))
	assert.NotNil(t, weightConfirmForm(&domain.WeightWarning{Total: 90}, &ok))
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "/tmp/a.xlsx"}},
		{"linux", []string{"xdg-open", "/tmp/a.xlsx"}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", "/tmp/a.xlsx"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd := openCommand(tt.goos, "/tmp/a.xlsx")
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestFormPrompter_AcceptingPrefillReturnsSeed(t *testing.T) {
	forms := 0
	p := &huhPrompter{run: func(*huh.Form) error {
		forms++
		return nil
	}}
	seed := preset.Get("mat137")

	cfg, err := p.ClassConfig(seed)
	require.NoError(t, err)
	assert.Equal(t, seed, cfg)
	assert.Equal(t, 1+len(seed.Categories), forms)
}

func TestFormPrompter_DroppingEveryCategoryFailsValidation(t *testing.T) {
	p := &huhPrompter{run: func(*huh.Form) error { return nil }}
	seed := domain.ClassConfig{
		ClassName:  "TEST101",
		Categories: []domain.CategoryConfig{{Name: "Exam", Weight: 100, TotalItems: 1, BestOf: 1}},
	}

	cfg, err := p.ClassConfig(seed)
	require.NoError(t, err)
	assert.Equal(t, seed, cfg)

	_, err = p.ClassConfig(domain.ClassConfig{})
	assert.Error(t, err)
}

func TestFormPrompter_Aborted(t *testing.T) {
	p := &huhPrompter{run: func(*huh.Form) error { return huh.ErrUserAborted }}

	_, err := p.ClassConfig(preset.Get("mat137"))
	assert.ErrorIs(t, err, huh.ErrUserAborted)

	ok, err := p.ConfirmWeights(&domain.WeightWarning{Total: 90})
	assert.ErrorIs(t, err, huh.ErrUserAborted)
	assert.False(t, ok)
}

func TestFormPrompter_DuplicateCategoryRejected(t *testing.T) {
	p := &huhPrompter{run: func(*huh.Form) error { return nil }}
	seed := domain.ClassConfig{
		ClassName: "TEST101",
		Categories: []domain.CategoryConfig{
			{Name: "Quizzes", Weight: 50, TotalItems: 3, BestOf: 2},
			{Name: "quizzes", Weight: 50, TotalItems: 1, BestOf: 1},
		},
	}

	_, err := p.ClassConfig(seed)
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}
