package grading

import (
	"errors"
	"math"
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		bestOf int
		want   float64
	}{
		{"best 3 of 5", []float64{90, 70, 85, 60, 95}, 3, 90},
		{"all of 4", []float64{80, 60, 70, 90}, 4, 75},
		{"single", []float64{42}, 1, 42},
		{"ties at the cut-off count by rank", []float64{80, 80, 80, 50}, 2, 80},
		{"duplicates above and below", []float64{100, 90, 90, 90, 10}, 3, (100 + 90 + 90) / 3.0},
		{"all zero", []float64{0, 0, 0}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.scores, tt.bestOf)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	scores := []float64{90, 70, 85}
	_, err := Aggregate(scores, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 70, 85}, scores)
}

func TestAggregate_Errors(t *testing.T) {
	_, err := Aggregate(nil, 1)
	assert.Error(t, err)

	_, err = Aggregate([]float64{1, 2}, 3)
	assert.True(t, errors.Is(err, domain.ErrBestOfExceedsTotal))

	_, err = Aggregate([]float64{1, 2}, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidBestOf))
}

func TestValidateScore(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 50, 100} {
		assert.NoError(t, ValidateScore(ok), ok)
	}
	for _, bad := range []float64{-0.01, 100.5, 150, math.NaN(), math.Inf(1)} {
		err := ValidateScore(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrScoreOutOfRange))
		assert.Contains(t, err.Error(), "between 0 and 100")
	}
}

func TestCompute_FinalIsSumOfContributions(t *testing.T) {
	cfg := testutil.NewTestClass("X",
		testutil.NewTestCategory("Midterm", testutil.WithWeight(40)),
		testutil.NewTestCategory("Final", testutil.WithWeight(60)),
	)
	res, err := Compute(cfg, [][]float64{{80}, {90}})
	require.NoError(t, err)

	require.Len(t, res.Categories, 2)
	assert.InDelta(t, 32, res.Categories[0].Contribution, 1e-9)
	assert.InDelta(t, 54, res.Categories[1].Contribution, 1e-9)
	assert.InDelta(t, 86, res.Final, 1e-9)
}

func TestCompute_BestOfCategory(t *testing.T) {
	cfg := testutil.NewTestClass("X",
		testutil.NewTestCategory("Quizzes", testutil.WithWeight(100), testutil.WithItems(5, 3)),
	)
	res, err := Compute(cfg, [][]float64{{90, 70, 85, 60, 95}})
	require.NoError(t, err)
	assert.InDelta(t, 90, res.Categories[0].Aggregate, 1e-9)
	assert.InDelta(t, 90, res.Final, 1e-9)
}

func TestCompute_RejectsOutOfRangeScore(t *testing.T) {
	cfg := testutil.TwoCategoryClass()
	_, err := Compute(cfg, [][]float64{{90, 80, 101, 70}, {50}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScoreOutOfRange))
	assert.Contains(t, err.Error(), `category "Quizzes" item 3`)
}

func TestCompute_ShapeMismatch(t *testing.T) {
	cfg := testutil.TwoCategoryClass()

	_, err := Compute(cfg, [][]float64{{1, 2, 3, 4}})
	assert.ErrorContains(t, err, "got scores for 1 categories, want 2")

	_, err = Compute(cfg, [][]float64{{1, 2, 3}, {4}})
	assert.ErrorContains(t, err, "got 3 scores, want 4")
}

func TestCompute_InvalidConfig(t *testing.T) {
	cfg := testutil.NewTestClass("X", testutil.NewTestCategory("Q", testutil.WithItems(2, 3)))
	_, err := Compute(cfg, [][]float64{{1, 2}})
	assert.True(t, errors.Is(err, domain.ErrBestOfExceedsTotal))
}
