package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"voice-srv/internal/output"
	"voice-srv/pkg/log"
)

type implSink struct {
	l   log.Logger
	dir string
}

var _ output.Sink = &implSink{}

// NewSink writes generated content under <dir>/<category>/<filename>.
func NewSink(l log.Logger, dir string) output.Sink {
	return &implSink{l: l, dir: dir}
}

// Write stores the content verbatim, creating intermediate directories as
// needed, and returns the stored path.
func (s *implSink) Write(ctx context.Context, category, filename, content string) (string, error) {
	if content == "" {
		return "", output.ErrEmptyContent
	}

	dir := filepath.Join(s.dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.l.Errorf(ctx, "output.file.Write: create directory: %v", err)
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		s.l.Errorf(ctx, "output.file.Write: %v", err)
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	s.l.Infof(ctx, "output.file.Write: stored %s", path)
	return path, nil
}
