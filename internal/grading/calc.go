package grading

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/alexanderramin/gradecalc/internal/domain"
)

// Score bounds enforced on every editable cell.
const (
	MinScore = 0
	MaxScore = 100
)

// ErrScoreOutOfRange is returned for a score outside [MinScore, MaxScore].
var ErrScoreOutOfRange = errors.New("score must be between 0 and 100")

// ValidateScore rejects NaN and anything outside [0, 100].
func ValidateScore(v float64) error {
	if math.IsNaN(v) || v < MinScore || v > MaxScore {
		return fmt.Errorf("invalid score %s: %w", domain.FormatNumber(v), ErrScoreOutOfRange)
	}
	return nil
}

// Aggregate averages the bestOf highest scores. Selection is by ordinal
// rank after a stable descending sort, so tied values at the cut-off are
// counted once per occurrence, exactly as LARGE(range,{1..k}) does.
func Aggregate(scores []float64, bestOf int) (float64, error) {
	if len(scores) == 0 {
		return 0, errors.New("no scores")
	}
	if bestOf < 1 {
		return 0, fmt.Errorf("best of %d: %w", bestOf, domain.ErrInvalidBestOf)
	}
	if bestOf > len(scores) {
		return 0, fmt.Errorf("best of %d out of %d scores: %w", bestOf, len(scores), domain.ErrBestOfExceedsTotal)
	}

	sorted := slices.Clone(scores)
	slices.SortStableFunc(sorted, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	var sum float64
	for _, v := range sorted[:bestOf] {
		sum += v
	}
	return sum / float64(bestOf), nil
}

// Contribution scales an aggregate by a percentage weight.
func Contribution(aggregate, weight float64) float64 {
	return aggregate * weight / 100
}

// CategoryResult is the computed outcome for one category.
type CategoryResult struct {
	Category     domain.CategoryConfig
	Scores       []float64
	Aggregate    float64
	Contribution float64
}

// Result is the full breakdown of a class grade.
type Result struct {
	ClassName  string
	Categories []CategoryResult
	Final      float64
}

// Compute grades a class given one score slice per category, in category
// order. Every score must be within [0, 100].
func Compute(cfg domain.ClassConfig, scores [][]float64) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(scores) != len(cfg.Categories) {
		return nil, fmt.Errorf("got scores for %d categories, want %d", len(scores), len(cfg.Categories))
	}

	res := &Result{ClassName: cfg.ClassName}
	for i, cat := range cfg.Categories {
		if len(scores[i]) != cat.TotalItems {
			return nil, fmt.Errorf("category %q: got %d scores, want %d", cat.Name, len(scores[i]), cat.TotalItems)
		}
		for j, v := range scores[i] {
			if err := ValidateScore(v); err != nil {
				return nil, fmt.Errorf("category %q item %d: %w", cat.Name, j+1, err)
			}
		}
		agg, err := Aggregate(scores[i], cat.BestOf)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.Name, err)
		}
		contrib := Contribution(agg, cat.Weight)
		res.Categories = append(res.Categories, CategoryResult{
			Category:     cat,
			Scores:       slices.Clone(scores[i]),
			Aggregate:    agg,
			Contribution: contrib,
		})
		res.Final += contrib
	}
	return res, nil
}
