package service

import "errors"

var (
	// ErrWeightNotConfirmed is returned by Generate when the category
	// weights do not total 100% and the caller did not confirm.
	ErrWeightNotConfirmed = errors.New("category weights do not total 100%; confirm to continue")

	// ErrUnknownPreset is returned when no built-in preset has the
	// requested name.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownCategory is returned when a score update names a category
	// the class does not have.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrLayoutMismatch is returned when a workbook's formulas do not
	// match the layout of the grading scheme it is scored against.
	ErrLayoutMismatch = errors.New("workbook does not match the grading scheme")
)
