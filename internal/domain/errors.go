package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyClassName     = errors.New("class name is required")
	ErrNoCategories       = errors.New("at least one category is required")
	ErrEmptyCategoryName  = errors.New("category name is required")
	ErrWeightOutOfRange   = errors.New("weight must be between 0 and 100")
	ErrInvalidItemCount   = errors.New("total items must be at least 1")
	ErrInvalidBestOf      = errors.New("best of must be at least 1")
	ErrBestOfExceedsTotal = errors.New("best of cannot be greater than total items")
	ErrDuplicateCategory  = errors.New("category names must be unique")
)

// ValidationError reports the first configuration problem found. Kind is
// one of the Err* sentinels above and is matched by errors.Is.
type ValidationError struct {
	Kind     error
	Category string // empty for class-level problems
	Index    int    // category index, -1 for class-level problems
	Detail   string
}

func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg = e.Detail
	}
	if e.Index < 0 {
		return msg
	}
	if e.Category != "" {
		return fmt.Sprintf("category %q: %s", e.Category, msg)
	}
	return fmt.Sprintf("category %d: %s", e.Index+1, msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// WeightWarning is the soft failure returned when category weights do not
// add up to 100. Callers may continue after the user confirms.
type WeightWarning struct {
	Total float64
}

func (w *WeightWarning) Error() string {
	return fmt.Sprintf("total weight is %s%%, not 100%%", FormatNumber(math.Round(w.Total*100)/100))
}
