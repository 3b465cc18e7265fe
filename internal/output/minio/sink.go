package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"voice-srv/internal/output"
	"voice-srv/pkg/log"
	pkgMinio "voice-srv/pkg/minio"
)

type implSink struct {
	l      log.Logger
	client pkgMinio.IMinIO
	prefix string
}

var _ output.Sink = &implSink{}

// NewSink writes generated content to object storage under
// <prefix>/<category>/<filename>.
func NewSink(l log.Logger, client pkgMinio.IMinIO, prefix string) output.Sink {
	return &implSink{l: l, client: client, prefix: prefix}
}

// Write stores the content verbatim and returns the object key.
func (s *implSink) Write(ctx context.Context, category, filename, content string) (string, error) {
	if content == "" {
		return "", output.ErrEmptyContent
	}

	key := path.Join(s.prefix, category, filename)
	reader := strings.NewReader(content)
	if err := s.client.Upload(ctx, key, reader, int64(len(content)), "text/markdown"); err != nil {
		s.l.Errorf(ctx, "output.minio.Write: %v", err)
		return "", fmt.Errorf("failed to store output object: %w", err)
	}

	s.l.Infof(ctx, "output.minio.Write: stored %s/%s", s.client.Bucket(), key)
	return key, nil
}
