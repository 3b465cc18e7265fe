package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"voice-srv/internal/model"

	"gopkg.in/yaml.v3"
)

// Save replaces the stored profile wholesale. The document is written to a
// temp file and renamed into place so readers never see a partial profile.
func (r *implProfileRepository) Save(ctx context.Context, profile model.VoiceProfile) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.file.Save: marshal profile: %v", err)
		return fmt.Errorf("failed to encode voice profile: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.l.Errorf(ctx, "analysis.repository.file.Save: create directory: %v", err)
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".voice-profile-*.yaml")
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.file.Save: create temp file: %v", err)
		return fmt.Errorf("failed to create temp profile file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		r.l.Errorf(ctx, "analysis.repository.file.Save: write temp file: %v", err)
		return fmt.Errorf("failed to write voice profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		r.l.Errorf(ctx, "analysis.repository.file.Save: close temp file: %v", err)
		return fmt.Errorf("failed to write voice profile: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		r.l.Errorf(ctx, "analysis.repository.file.Save: rename: %v", err)
		return fmt.Errorf("failed to store voice profile: %w", err)
	}
	return nil
}

// Load returns the stored profile. A profile that was never saved loads as
// the zero profile without error.
func (r *implProfileRepository) Load(ctx context.Context) (model.VoiceProfile, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.VoiceProfile{}, nil
		}
		r.l.Errorf(ctx, "analysis.repository.file.Load: %v", err)
		return model.VoiceProfile{}, fmt.Errorf("failed to read voice profile: %w", err)
	}

	var profile model.VoiceProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		r.l.Errorf(ctx, "analysis.repository.file.Load: decode profile: %v", err)
		return model.VoiceProfile{}, fmt.Errorf("failed to decode voice profile: %w", err)
	}
	return profile, nil
}
