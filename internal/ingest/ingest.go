// Package ingest turns a topic input into script-ready text. The input can
// be a URL (the article body is extracted), a local text file, or the topic
// text itself.
package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type SourceType string

const (
	SourceURL    SourceType = "url"
	SourceFile   SourceType = "file"
	SourceInline SourceType = "inline"

	// maxInputSize is the maximum allowed size for input content (25 MB).
	maxInputSize = 25 * 1024 * 1024
)

func (s SourceType) String() string {
	return string(s)
}

// Content is the normalized topic material handed to script generation.
type Content struct {
	Text      string
	Title     string
	Source    string
	WordCount int
}

// DetectSource classifies a raw topic input. Anything that is neither a URL
// nor an existing file is the topic text itself.
func DetectSource(input string) SourceType {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return SourceURL
	}
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		return SourceFile
	}
	return SourceInline
}

// Ingest resolves the topic input into content.
func Ingest(ctx context.Context, input string) (*Content, error) {
	switch DetectSource(input) {
	case SourceURL:
		return fromURL(ctx, input)
	case SourceFile:
		return fromFile(input)
	default:
		return fromInline(input)
	}
}

func fromInline(topic string) (*Content, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("empty topic")
	}
	return &Content{
		Text:      topic,
		Title:     titleFromText(topic, 80),
		Source:    "inline",
		WordCount: wordCount(topic),
	}, nil
}

func wordCount(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}

func titleFromText(text string, maxLen int) string {
	line := text
	if idx := strings.IndexByte(text, '\n'); idx > 0 {
		line = text[:idx]
	}
	line = strings.TrimSpace(line)
	if len(line) > maxLen {
		line = line[:maxLen] + "..."
	}
	if line == "" {
		return "Untitled"
	}
	return line
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if info.Size() > maxInputSize {
		return fmt.Errorf("%s is too large (%d MB, max %d MB)", path, info.Size()/(1024*1024), maxInputSize/(1024*1024))
	}
	return nil
}
