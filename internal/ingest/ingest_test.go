package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("topic notes"), 0o644))

	tests := []struct {
		input string
		want  SourceType
	}{
		{"https://example.com/article", SourceURL},
		{"http://example.com", SourceURL},
		{file, SourceFile},
		{"why do bridges resonate", SourceInline},
		{dir, SourceInline},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectSource(tt.input), "input %q", tt.input)
	}
}

func TestIngestInline(t *testing.T) {
	content, err := Ingest(context.Background(), "  the hidden cost of free shipping  ")
	require.NoError(t, err)

	assert.Equal(t, "the hidden cost of free shipping", content.Text)
	assert.Equal(t, "the hidden cost of free shipping", content.Title)
	assert.Equal(t, "inline", content.Source)
	assert.Equal(t, 6, content.WordCount)
}

func TestIngestEmptyInline(t *testing.T) {
	_, err := Ingest(context.Background(), "   ")
	require.Error(t, err)
}

func TestIngestFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "topic.txt")
	body := "Container ships run on bunker fuel\n\nAnd almost nobody regulates it."
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	content, err := Ingest(context.Background(), file)
	require.NoError(t, err)

	assert.Contains(t, content.Text, "bunker fuel")
	assert.Equal(t, "Container ships run on bunker fuel", content.Title)
	assert.Equal(t, "topic.txt", content.Source)
}

func TestTitleFromText(t *testing.T) {
	assert.Equal(t, "First line", titleFromText("First line\nsecond line", 80))
	assert.Equal(t, "Untitled", titleFromText("   ", 80))

	long := strings.Repeat("a", 100)
	got := titleFromText(long, 80)
	assert.Equal(t, long[:80]+"...", got)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, wordCount(""))
	assert.Equal(t, 1, wordCount("word"))
	assert.Equal(t, 4, wordCount("  spread   across\tmany\nlines "))
}
