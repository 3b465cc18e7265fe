package file

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"voice-srv/internal/analysis"
)

func isSampleFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".txt":
		return true
	default:
		return false
	}
}

// ListSamples walks the corpus directory and returns every readable .md or
// .txt file, in lexical path order. Unreadable files are logged and skipped;
// a missing directory yields an empty corpus.
func (r *implCorpusRepository) ListSamples(ctx context.Context) ([]analysis.Sample, error) {
	var paths []string
	// WalkDir errors (missing root included) degrade to an empty or partial
	// corpus; the aggregator decides whether that is fatal.
	_ = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.l.Warnf(ctx, "analysis.repository.file.ListSamples: skip %s: %v", path, err)
			return nil
		}
		if !d.IsDir() && isSampleFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)

	samples := make([]analysis.Sample, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			r.l.Warnf(ctx, "analysis.repository.file.ListSamples: skip unreadable sample %s: %v", path, err)
			continue
		}
		samples = append(samples, analysis.Sample{
			ID:     filepath.Base(path),
			Source: sourceCategory(r.dir, path),
			Text:   string(data),
		})
	}
	return samples, nil
}

// sourceCategory is the sample's directory relative to the corpus root.
func sourceCategory(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
