// Package output stores generated content under a category and filename.
package output

import (
	"context"
	"errors"
)

var (
	ErrEmptyContent = errors.New("output: empty content")
)

// Sink writes content verbatim and returns where it was stored.
type Sink interface {
	Write(ctx context.Context, category, filename, content string) (string, error)
}
