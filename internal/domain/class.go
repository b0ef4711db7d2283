package domain

import (
	"math"
	"strconv"
	"strings"
)

// weightTolerance absorbs floating point noise when summing weights.
const weightTolerance = 0.01

// CategoryConfig is one graded component of a class, e.g. "Term Tests".
// Only the BestOf highest of TotalItems scores count toward its average.
type CategoryConfig struct {
	Name       string  `json:"name"`
	Weight     float64 `json:"weight"`
	TotalItems int     `json:"total_items"`
	BestOf     int     `json:"best_of"`
}

// ClassConfig describes a class and its ordered grading categories.
// Category order determines row layout and formula reference order.
type ClassConfig struct {
	ClassName  string           `json:"class_name"`
	Categories []CategoryConfig `json:"categories"`
}

// IsSingle reports whether the category has exactly one item, in which case
// the raw score is also the category average.
func (c CategoryConfig) IsSingle() bool {
	return c.TotalItems == 1
}

// DropsItems reports whether some scores are discarded before averaging.
func (c CategoryConfig) DropsItems() bool {
	return c.BestOf < c.TotalItems
}

// Label returns the display label used in the sheet, e.g. "Term Tests (39%)".
func (c CategoryConfig) Label() string {
	return c.Name + " (" + FormatNumber(c.Weight) + "%)"
}

// Validate checks a single category. index is used in error messages only.
func (c CategoryConfig) Validate(index int) error {
	newErr := func(kind error, detail string) error {
		return &ValidationError{Kind: kind, Category: strings.TrimSpace(c.Name), Index: index, Detail: detail}
	}

	if strings.TrimSpace(c.Name) == "" {
		return newErr(ErrEmptyCategoryName, "")
	}
	if math.IsNaN(c.Weight) || c.Weight < 0 || c.Weight > 100 {
		return newErr(ErrWeightOutOfRange, "weight "+FormatNumber(c.Weight)+" must be between 0 and 100")
	}
	if c.TotalItems < 1 {
		return newErr(ErrInvalidItemCount, "")
	}
	if c.BestOf < 1 {
		return newErr(ErrInvalidBestOf, "")
	}
	if c.BestOf > c.TotalItems {
		return newErr(ErrBestOfExceedsTotal,
			"'Best of' ("+strconv.Itoa(c.BestOf)+") cannot be greater than 'Total items' ("+strconv.Itoa(c.TotalItems)+")")
	}
	return nil
}

// Validate checks the whole configuration and returns the first problem
// as a *ValidationError. The weight total is not checked here; see
// WeightWarning.
func (c ClassConfig) Validate() error {
	if strings.TrimSpace(c.ClassName) == "" {
		return &ValidationError{Kind: ErrEmptyClassName, Index: -1}
	}
	if len(c.Categories) == 0 {
		return &ValidationError{Kind: ErrNoCategories, Index: -1}
	}
	seen := make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		if err := cat.Validate(i); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(cat.Name))
		if first, ok := seen[key]; ok {
			return &ValidationError{
				Kind:     ErrDuplicateCategory,
				Category: strings.TrimSpace(cat.Name),
				Index:    i,
				Detail:   "duplicate of category " + strconv.Itoa(first+1),
			}
		}
		seen[key] = i
	}
	return nil
}

// TotalWeight sums the category weights.
func (c ClassConfig) TotalWeight() float64 {
	var total float64
	for _, cat := range c.Categories {
		total += cat.Weight
	}
	return total
}

// WeightWarning returns a warning when the weights do not add up to 100.
func (c ClassConfig) WeightWarning() *WeightWarning {
	total := c.TotalWeight()
	if math.Abs(total-100) > weightTolerance {
		return &WeightWarning{Total: total}
	}
	return nil
}

// TotalItems counts every score entry cell across all categories.
func (c ClassConfig) TotalItems() int {
	n := 0
	for _, cat := range c.Categories {
		n += cat.TotalItems
	}
	return n
}

// FormatNumber renders a float without trailing zeros: 39 -> "39",
// 12.5 -> "12.5", 0.39 -> "0.39".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
