// Package normalize repairs raw model text into parseable JSON. Models
// constrained to a response schema still wrap output in markdown fences or
// leading prose often enough that every orchestration operation funnels its
// raw text through here before decoding.
package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const previewLen = 500

// MalformedError means no repair strategy produced valid JSON. It carries a
// bounded preview of the raw text for diagnostics; the full payload may be
// huge and is never embedded in the error.
type MalformedError struct {
	RawLength int
	Preview   string
	cause     error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("model output is not valid JSON (%d bytes): %v; preview: %s", e.RawLength, e.cause, e.Preview)
}

func (e *MalformedError) Unwrap() error { return e.cause }

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\n?```")

// Repair extracts a JSON document from raw model text. Strategies apply in
// order: fenced block, trimmed raw text, first-brace-to-last-brace
// substring. The first candidate that unmarshals wins.
func Repair(raw string) (string, error) {
	candidates := make([]string, 0, 3)

	if m := fenceRe.FindStringSubmatch(raw); len(m) > 1 {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}

	trimmed := strings.TrimSpace(raw)
	candidates = append(candidates, trimmed)

	if start, end := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}"); start >= 0 && end > start {
		candidates = append(candidates, trimmed[start:end+1])
	}

	var lastErr error
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if err := json.Unmarshal([]byte(c), new(json.RawMessage)); err == nil {
			return c, nil
		} else {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("empty response")
	}
	return "", &MalformedError{
		RawLength: len(raw),
		Preview:   preview(raw),
		cause:     lastErr,
	}
}

// Unmarshal repairs raw model text and decodes it into v.
func Unmarshal(raw string, v any) error {
	repaired, err := Repair(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return &MalformedError{
			RawLength: len(raw),
			Preview:   preview(raw),
			cause:     err,
		}
	}
	return nil
}

func preview(s string) string {
	if len(s) > previewLen {
		return s[:previewLen] + "..."
	}
	return s
}
