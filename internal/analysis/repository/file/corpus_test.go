package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestListSamplesOrderAndSource(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSample(t, filepath.Join(root, "essays"), "long.txt", "essay text")
	writeSample(t, filepath.Join(root, "posts"), "b.md", "second post")
	writeSample(t, filepath.Join(root, "posts"), "a.md", "first post")
	writeSample(t, root, "loose.md", "loose note")

	repo := NewCorpusRepository(testLogger(), root)
	samples, err := repo.ListSamples(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 4)

	assert.Equal(t, "long.txt", samples[0].ID)
	assert.Equal(t, "essays", samples[0].Source)
	assert.Equal(t, "loose.md", samples[1].ID)
	assert.Equal(t, "", samples[1].Source)
	assert.Equal(t, "a.md", samples[2].ID)
	assert.Equal(t, "b.md", samples[3].ID)
	assert.Equal(t, "first post", samples[2].Text)
}

func TestListSamplesIgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSample(t, root, "note.md", "kept")
	writeSample(t, root, "image.png", "binary")
	writeSample(t, root, "data.json", "{}")

	repo := NewCorpusRepository(testLogger(), root)
	samples, err := repo.ListSamples(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "note.md", samples[0].ID)
}

func TestListSamplesSkipsUnreadable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSample(t, root, "good.md", "fine")
	// A directory with a sample extension fails the read and is skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "trap.md"), 0o755))

	repo := NewCorpusRepository(testLogger(), root)
	samples, err := repo.ListSamples(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "good.md", samples[0].ID)
}

func TestListSamplesMissingDirectory(t *testing.T) {
	t.Parallel()

	repo := NewCorpusRepository(testLogger(), filepath.Join(t.TempDir(), "absent"))
	samples, err := repo.ListSamples(context.Background())
	require.NoError(t, err)
	assert.Empty(t, samples)
}
