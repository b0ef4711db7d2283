package importer

import (
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
)

// Convert transforms a validated SchemeFile into a domain.ClassConfig.
// Call ValidateScheme first; Convert assumes the scheme is valid.
func Convert(scheme *SchemeFile) domain.ClassConfig {
	cfg := domain.ClassConfig{
		ClassName:  strings.TrimSpace(scheme.ClassName),
		Categories: make([]domain.CategoryConfig, 0, len(scheme.Categories)),
	}
	for _, c := range scheme.Categories {
		total := domain.IntFromPtrWithDefault(0, c.TotalItems)
		cat := domain.CategoryConfig{
			Name:       strings.TrimSpace(c.Name),
			Weight:     domain.Float64FromPtrWithDefault(0, c.Weight),
			TotalItems: total,
			BestOf:     domain.IntFromPtrWithDefault(total, c.BestOf),
		}
		cfg.Categories = append(cfg.Categories, cat)
	}
	return cfg
}

// FromConfig is the inverse of Convert, used to print a scheme file for an
// existing configuration.
func FromConfig(cfg domain.ClassConfig) *SchemeFile {
	scheme := &SchemeFile{
		ClassName:  cfg.ClassName,
		Categories: make([]CategoryImport, 0, len(cfg.Categories)),
	}
	for _, c := range cfg.Categories {
		weight, total, best := c.Weight, c.TotalItems, c.BestOf
		scheme.Categories = append(scheme.Categories, CategoryImport{
			Name:       c.Name,
			Weight:     &weight,
			TotalItems: &total,
			BestOf:     &best,
		})
	}
	return scheme
}
