// Package prompt compiles persona profiles and generation intents into
// complete model instructions. Everything here is pure: no I/O, no
// randomness, byte-identical output for identical input.
package prompt

import "errors"

// ErrInvalidIntent is returned for caller-level misuse (blend without
// secondaries, auto-selection without candidates) before any network call.
var ErrInvalidIntent = errors.New("invalid generation intent")

// MaxBlendSecondaries caps the secondary personas in a blend.
const MaxBlendSecondaries = 3

// selectionTopicCeiling bounds the topic text embedded in the auto-selection
// instruction. Longer topics are truncated with an explicit marker; this is
// a deliberate lossy policy to keep the selection prompt small.
const selectionTopicCeiling = 30000

// TruncationMarker is appended whenever topic text is cut to fit a ceiling.
const TruncationMarker = "...[TRUNCATED]"

func truncate(s string, ceiling int) string {
	if len(s) <= ceiling {
		return s
	}
	return s[:ceiling] + TruncationMarker
}
