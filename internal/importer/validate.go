package importer

import (
	"fmt"
	"math"
	"strings"
)

// ValidateScheme checks a scheme file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateScheme(scheme *SchemeFile) []error {
	var errs []error

	if strings.TrimSpace(scheme.ClassName) == "" {
		errs = append(errs, fmt.Errorf("class_name is required"))
	}
	if len(scheme.Categories) == 0 {
		errs = append(errs, fmt.Errorf("at least one category is required"))
	}

	names := make(map[string]bool)
	for i, c := range scheme.Categories {
		errs = append(errs, validateCategory(i, c, names)...)
	}

	return errs
}

func validateCategory(i int, c CategoryImport, names map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("categories[%d]", i)

	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	} else if names[strings.ToLower(name)] {
		errs = append(errs, fmt.Errorf("%s.name: duplicate category %q", prefix, name))
	} else {
		names[strings.ToLower(name)] = true
	}

	if c.Weight == nil {
		errs = append(errs, fmt.Errorf("%s.weight is required", prefix))
	} else if w := *c.Weight; math.IsNaN(w) || w < 0 || w > 100 {
		errs = append(errs, fmt.Errorf("%s.weight: %v must be between 0 and 100", prefix, w))
	}

	if c.TotalItems == nil {
		errs = append(errs, fmt.Errorf("%s.total_items is required", prefix))
		return errs
	}
	total := *c.TotalItems
	if total < 1 {
		errs = append(errs, fmt.Errorf("%s.total_items must be at least 1", prefix))
	}

	if c.BestOf != nil {
		best := *c.BestOf
		if best < 1 {
			errs = append(errs, fmt.Errorf("%s.best_of must be at least 1", prefix))
		} else if total >= 1 && best > total {
			errs = append(errs, fmt.Errorf("%s: best_of (%d) must be <= total_items (%d)", prefix, best, total))
		}
	}

	return errs
}
