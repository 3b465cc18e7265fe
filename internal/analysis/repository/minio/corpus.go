package minio

import (
	"context"
	"io"
	"path"
	"strings"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/repository"
	"voice-srv/pkg/log"
	pkgMinio "voice-srv/pkg/minio"
)

type implCorpusRepository struct {
	l      log.Logger
	client pkgMinio.IMinIO
	prefix string
}

var _ repository.CorpusRepository = &implCorpusRepository{}

// NewCorpusRepository reads writing samples from an object storage prefix.
func NewCorpusRepository(l log.Logger, client pkgMinio.IMinIO, prefix string) repository.CorpusRepository {
	return &implCorpusRepository{l: l, client: client, prefix: prefix}
}

func isSampleKey(key string) bool {
	switch strings.ToLower(path.Ext(key)) {
	case ".md", ".txt":
		return true
	default:
		return false
	}
}

// ListSamples returns every readable .md or .txt object under the prefix, in
// key order. Objects that fail to download are logged and skipped.
func (r *implCorpusRepository) ListSamples(ctx context.Context) ([]analysis.Sample, error) {
	objects, err := r.client.ListObjects(ctx, r.prefix)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.minio.ListSamples: %v", err)
		return nil, err
	}

	samples := make([]analysis.Sample, 0, len(objects))
	for _, obj := range objects {
		if !isSampleKey(obj.Key) {
			continue
		}

		text, err := r.readObject(ctx, obj.Key)
		if err != nil {
			r.l.Warnf(ctx, "analysis.repository.minio.ListSamples: skip unreadable sample %s: %v", obj.Key, err)
			continue
		}
		samples = append(samples, analysis.Sample{
			ID:     path.Base(obj.Key),
			Source: sourceCategory(r.prefix, obj.Key),
			Text:   text,
		})
	}
	return samples, nil
}

func (r *implCorpusRepository) readObject(ctx context.Context, key string) (string, error) {
	reader, err := r.client.Download(ctx, key)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// sourceCategory is the object's directory relative to the corpus prefix.
func sourceCategory(prefix, key string) string {
	rel := strings.TrimPrefix(key, strings.TrimSuffix(prefix, "/")+"/")
	dir := path.Dir(rel)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
