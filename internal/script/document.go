// Package script holds the generated script document model and the derived
// artifacts the orchestration operations produce around it.
package script

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Segment is one visual/audio beat of a script. Audio is the spoken line;
// Visual describes what is on screen while it plays. GeneratedImageURL is a
// rendered preview of the visual, attached after generation; the model never
// produces it.
type Segment struct {
	Visual            string `json:"visual"`
	Audio             string `json:"audio"`
	IsWeak            bool   `json:"isWeak,omitempty"`
	RewriteSuggestion string `json:"rewriteSuggestion,omitempty"`
	GeneratedImageURL string `json:"generatedImageUrl,omitempty"`
}

// Document is a complete generated script plus its request context. IDs are
// ULIDs so history listings sort by creation time without a separate index
// key.
type Document struct {
	ID             string     `json:"id"`
	Topic          string     `json:"topic"`
	Platform       string     `json:"platform"`
	Duration       string     `json:"duration"`
	Language       string     `json:"language"`
	Title          string     `json:"title"`
	DetectedIntent string     `json:"detectedIntent,omitempty"`
	TargetAudience string     `json:"targetAudience,omitempty"`
	Segments       []Segment  `json:"segments"`
	CTAs           []string   `json:"ctas"`
	Citations      []Citation `json:"citations,omitempty"`

	// Attribution: which persona's voice this script carries. Resolved at
	// generation time, including auto-selection re-routing.
	CreatorID   string `json:"creatorId,omitempty"`
	CreatorName string `json:"creatorName,omitempty"`

	// UserEditedText, when set, supersedes the segment audio for any
	// operation that consumes the script as flat text.
	UserEditedText string `json:"userEditedText,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewID mints a ULID for a fresh document.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// FlatText returns the script as a single spoken-word text. A user edit
// takes precedence over the generated segments.
func (d *Document) FlatText() string {
	if strings.TrimSpace(d.UserEditedText) != "" {
		return d.UserEditedText
	}
	lines := make([]string, 0, len(d.Segments))
	for _, s := range d.Segments {
		lines = append(lines, s.Audio)
	}
	return strings.Join(lines, "\n\n")
}

// WithSegmentsAppended returns a copy of the document with new segments
// appended. The existing prefix is never modified: extension is additive.
func (d *Document) WithSegmentsAppended(more []Segment) *Document {
	out := *d
	out.Segments = make([]Segment, 0, len(d.Segments)+len(more))
	out.Segments = append(out.Segments, d.Segments...)
	out.Segments = append(out.Segments, more...)
	return &out
}

// WithSegmentImage returns a copy of the document with a rendered image
// reference attached to the segment at index. Only that one field changes;
// the receiver is untouched.
func (d *Document) WithSegmentImage(index int, url string) (*Document, error) {
	if index < 0 || index >= len(d.Segments) {
		return nil, fmt.Errorf("segment index %d out of range: script has %d segments", index, len(d.Segments))
	}
	out := *d
	out.Segments = make([]Segment, len(d.Segments))
	copy(out.Segments, d.Segments)
	out.Segments[index].GeneratedImageURL = url
	return &out, nil
}
