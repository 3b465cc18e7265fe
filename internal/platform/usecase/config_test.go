package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"voice-srv/internal/model"
	"voice-srv/internal/platform"
	"voice-srv/internal/platform/repository/file"
	"voice-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (platform.UseCase, string) {
	t.Helper()
	dir := t.TempDir()
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(l, file.NewConfigRepository(l, dir)), dir
}

func TestGetConfigKnownPlatform(t *testing.T) {
	t.Parallel()

	uc, dir := newTestUseCase(t)
	doc := "max_length: 280\nhashtag_limit: 3\ntone: punchy\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "twitter.yaml"), []byte(doc), 0o644))

	out, err := uc.GetConfig(context.Background(), model.Scope{}, "twitter")
	require.NoError(t, err)
	assert.Equal(t, "twitter", out.Name)
	assert.Equal(t, 280, out.Config["max_length"])
	assert.Equal(t, "punchy", out.Config["tone"])
}

func TestGetConfigUnknownPlatformIsEmpty(t *testing.T) {
	t.Parallel()

	uc, _ := newTestUseCase(t)

	out, err := uc.GetConfig(context.Background(), model.Scope{}, "myspace")
	require.NoError(t, err)
	assert.NotNil(t, out.Config)
	assert.Empty(t, out.Config)
}

func TestGetConfigEmptyNameFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	uc, _ := newTestUseCase(t)

	out, err := uc.GetConfig(context.Background(), model.Scope{}, "")
	require.NoError(t, err)
	assert.Equal(t, platform.GenericPlatform, out.Name)
}

func TestGetConfigRejectsPathTraversal(t *testing.T) {
	t.Parallel()

	uc, _ := newTestUseCase(t)

	for _, name := range []string{"../secrets", "a/b", "dot.dot"} {
		_, err := uc.GetConfig(context.Background(), model.Scope{}, name)
		assert.ErrorIs(t, err, platform.ErrInvalidName, name)
	}
}
