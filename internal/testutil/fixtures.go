package testutil

import (
	"github.com/alexanderramin/gradecalc/internal/domain"
)

// Category options
type CategoryOption func(*domain.CategoryConfig)

func WithWeight(w float64) CategoryOption {
	return func(c *domain.CategoryConfig) {
		c.Weight = w
	}
}

// WithItems sets total items and best-of together.
func WithItems(total, bestOf int) CategoryOption {
	return func(c *domain.CategoryConfig) {
		c.TotalItems = total
		c.BestOf = bestOf
	}
}

// NewTestCategory returns a single-item category worth 10%.
func NewTestCategory(name string, opts ...CategoryOption) domain.CategoryConfig {
	c := domain.CategoryConfig{
		Name:       name,
		Weight:     10,
		TotalItems: 1,
		BestOf:     1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestClass builds a class from the given categories.
func NewTestClass(name string, categories ...domain.CategoryConfig) domain.ClassConfig {
	return domain.ClassConfig{
		ClassName:  name,
		Categories: categories,
	}
}

// TwoCategoryClass is a 40/60 class: four quizzes (best 3) and one exam.
func TwoCategoryClass() domain.ClassConfig {
	return NewTestClass("TEST101",
		NewTestCategory("Quizzes", WithWeight(40), WithItems(4, 3)),
		NewTestCategory("Exam", WithWeight(60)),
	)
}
