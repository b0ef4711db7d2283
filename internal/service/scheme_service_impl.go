package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/alexanderramin/gradecalc/internal/importer"
	"github.com/alexanderramin/gradecalc/internal/preset"
)

type schemeService struct{}

func NewSchemeService() SchemeService {
	return &schemeService{}
}

func (s *schemeService) Presets(ctx context.Context) []preset.Preset {
	return preset.List()
}

func (s *schemeService) Preset(ctx context.Context, name string) (domain.ClassConfig, error) {
	cfg, ok := preset.Lookup(name)
	if !ok {
		return domain.ClassConfig{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(preset.Names(), ", "))
	}
	return cfg, nil
}

func (s *schemeService) LoadFile(ctx context.Context, path string) (domain.ClassConfig, error) {
	scheme, err := importer.LoadScheme(path)
	if err != nil {
		return domain.ClassConfig{}, fmt.Errorf("loading scheme file: %w", err)
	}
	if errs := importer.ValidateScheme(scheme); len(errs) > 0 {
		return domain.ClassConfig{}, formatValidationErrors(errs)
	}
	cfg := importer.Convert(scheme)
	if err := cfg.Validate(); err != nil {
		return domain.ClassConfig{}, err
	}
	return cfg, nil
}

func (s *schemeService) ValidateFile(ctx context.Context, path string) ([]error, error) {
	scheme, err := importer.LoadScheme(path)
	if err != nil {
		return nil, fmt.Errorf("loading scheme file: %w", err)
	}
	return importer.ValidateScheme(scheme), nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("scheme validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
