package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gradecalc/internal/domain"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.events = append(o.events, event)
}

// generateWorkbook writes cfg to a temp dir and returns the file path.
func generateWorkbook(t *testing.T, cfg domain.ClassConfig) string {
	t.Helper()
	res, err := NewWorkbookService().Generate(context.Background(), GenerateRequest{
		Config: cfg,
		OutDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.FileExists(t, res.Path)
	return res.Path
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
