package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"voice-srv/internal/platform/repository"
	"voice-srv/pkg/log"

	"gopkg.in/yaml.v3"
)

type implConfigRepository struct {
	l   log.Logger
	dir string
}

var _ repository.ConfigRepository = &implConfigRepository{}

// NewConfigRepository loads platform documents from <dir>/<name>.yaml.
func NewConfigRepository(l log.Logger, dir string) repository.ConfigRepository {
	return &implConfigRepository{l: l, dir: dir}
}

// GetConfig loads the platform's document by exact filename. A missing file
// yields an empty mapping, not an error.
func (r *implConfigRepository) GetConfig(ctx context.Context, name string) (map[string]any, error) {
	path := filepath.Join(r.dir, name+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.l.Debugf(ctx, "platform.repository.file.GetConfig: no config for %s", name)
			return map[string]any{}, nil
		}
		r.l.Errorf(ctx, "platform.repository.file.GetConfig: %v", err)
		return nil, fmt.Errorf("failed to read platform config %q: %w", name, err)
	}

	config := map[string]any{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		r.l.Errorf(ctx, "platform.repository.file.GetConfig: decode %s: %v", name, err)
		return nil, fmt.Errorf("failed to decode platform config %q: %w", name, err)
	}
	return config, nil
}
