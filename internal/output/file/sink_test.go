package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"voice-srv/internal/output"
	"voice-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesCategoryDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewSink(log.Init(log.ZapConfig{Level: "fatal"}), dir)

	content := "# Draft\n\nexact bytes, untouched\n"
	path, err := sink.Write(context.Background(), "draft", "post.md", content)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "draft", "post.md"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestWriteRejectsEmptyContent(t *testing.T) {
	t.Parallel()

	sink := NewSink(log.Init(log.ZapConfig{Level: "fatal"}), t.TempDir())

	_, err := sink.Write(context.Background(), "final", "post.md", "")
	require.ErrorIs(t, err, output.ErrEmptyContent)
}
