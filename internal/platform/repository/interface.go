package repository

import "context"

// ConfigRepository loads per-platform configuration documents.
type ConfigRepository interface {
	// GetConfig returns the platform's document, or an empty mapping when
	// the platform has none.
	GetConfig(ctx context.Context, name string) (map[string]any, error)
}
