package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// weightInput returns a huh.Input for a category weight percentage.
func weightInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Weight (%)").
		Placeholder("39").
		Value(value).
		Validate(validateWeight)
}

// itemCountInput returns a huh.Input for a positive item count.
func itemCountInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("1").
		Value(value).
		Validate(validateRequiredPositiveInt)
}

// bestOfInput returns a huh.Input for the best-of count, checked against the
// total items field it is grouped with.
func bestOfInput(value, total *string) *huh.Input {
	return huh.NewInput().
		Title("Best Of").
		Description("Items counted toward the average; blank counts all").
		Value(value).
		Validate(validateBestOf(total))
}

// validateRequired rejects blank input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateWeight accepts a number between 0 and 100.
func validateWeight(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 || v > 100 {
		return errors.New("weight must be between 0 and 100")
	}
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

// validateRequiredPositiveInt accepts only a positive integer.
func validateRequiredPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter a positive number")
	}
	return validatePositiveInt(s)
}

// validateBestOf accepts empty or a positive integer no larger than the
// current total items value.
func validateBestOf(total *string) func(string) error {
	return func(s string) error {
		if err := validatePositiveInt(s); err != nil {
			return err
		}
		best := parsePositiveInt(strings.TrimSpace(s), 0)
		limit := parsePositiveInt(strings.TrimSpace(*total), 0)
		if best > 0 && limit > 0 && best > limit {
			return fmt.Errorf("'Best of' (%d) cannot be greater than 'Total items' (%d)", best, limit)
		}
		return nil
	}
}
