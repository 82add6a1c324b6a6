package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsSortableAndUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestFlatTextJoinsSegmentAudio(t *testing.T) {
	doc := &Document{
		Segments: []Segment{
			{Visual: "city skyline", Audio: "Every city hides a number."},
			{Visual: "spreadsheet", Audio: "This one is buried in a budget line."},
		},
	}
	assert.Equal(t, "Every city hides a number.\n\nThis one is buried in a budget line.", doc.FlatText())
}

func TestFlatTextPrefersUserEdit(t *testing.T) {
	doc := &Document{
		Segments:       []Segment{{Audio: "generated line"}},
		UserEditedText: "the edited version",
	}
	assert.Equal(t, "the edited version", doc.FlatText())
}

func TestFlatTextIgnoresWhitespaceOnlyEdit(t *testing.T) {
	doc := &Document{
		Segments:       []Segment{{Audio: "generated line"}},
		UserEditedText: "   \n ",
	}
	assert.Equal(t, "generated line", doc.FlatText())
}

func TestWithSegmentsAppendedIsAdditive(t *testing.T) {
	doc := &Document{
		ID:       "01ABC",
		Segments: []Segment{{Audio: "one"}, {Audio: "two"}},
	}

	out := doc.WithSegmentsAppended([]Segment{{Audio: "three"}})

	require.Len(t, out.Segments, 3)
	assert.Equal(t, "one", out.Segments[0].Audio)
	assert.Equal(t, "two", out.Segments[1].Audio)
	assert.Equal(t, "three", out.Segments[2].Audio)
	assert.Equal(t, doc.ID, out.ID)

	// The original document is untouched.
	assert.Len(t, doc.Segments, 2)

	// Appending to the copy never aliases the original's backing array.
	out.Segments[0].Audio = "mutated"
	assert.Equal(t, "one", doc.Segments[0].Audio)
}

func TestWithSegmentImageAttachesToOneSegment(t *testing.T) {
	doc := &Document{
		ID:       "01ABC",
		Segments: []Segment{{Visual: "skyline", Audio: "one"}, {Visual: "vault", Audio: "two"}},
	}

	out, err := doc.WithSegmentImage(1, "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,aGVsbG8=", out.Segments[1].GeneratedImageURL)
	assert.Empty(t, out.Segments[0].GeneratedImageURL)
	assert.Equal(t, "vault", out.Segments[1].Visual)

	// The original document is untouched.
	assert.Empty(t, doc.Segments[1].GeneratedImageURL)
}

func TestWithSegmentImageRejectsOutOfRange(t *testing.T) {
	doc := &Document{Segments: []Segment{{Audio: "one"}}}

	_, err := doc.WithSegmentImage(1, "data:image/png;base64,x")
	require.Error(t, err)

	_, err = doc.WithSegmentImage(-1, "data:image/png;base64,x")
	require.Error(t, err)
}
