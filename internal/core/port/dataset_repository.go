package port

import (
	"context"
	"fmt"

	"adboard/internal/core/domain"
)

// DatasetRepository is the outbound port for the cleaned campaign table.
// Implementations must return immutable snapshots: callers may hold a
// returned dataset across requests without copying it.
type DatasetRepository interface {
	// Load returns the cleaned dataset for the configured export file.
	// On failure it returns an empty dataset together with a *LoadError;
	// loading never panics and never returns a nil dataset.
	Load(ctx context.Context) (*domain.Dataset, error)
}

// LoadError describes why an export file could not be turned into a
// dataset: the file is missing, empty, malformed, or lacks a required
// column. Reason is human-readable and safe to show to the analyst.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Message is the warning surfaced on the dashboard when loading fails.
func (e *LoadError) Message() string {
	return "could not load campaign data: " + e.Reason
}
