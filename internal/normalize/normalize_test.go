package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairCleanJSON(t *testing.T) {
	out, err := Repair(`{"title":"Quiet Collapse"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Quiet Collapse"}`, out)
}

func TestRepairFencedBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"title\":\"x\"}\n```"},
		{"bare fence", "```\n{\"title\":\"x\"}\n```"},
		{"fence with prose around", "Here is the result:\n```json\n{\"title\":\"x\"}\n```\nLet me know!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Repair(tt.raw)
			require.NoError(t, err)
			assert.JSONEq(t, `{"title":"x"}`, out)
		})
	}
}

func TestRepairProseWrappedObject(t *testing.T) {
	raw := `Sure! The package is {"title":"x","segments":[]} as requested.`
	out, err := Repair(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","segments":[]}`, out)
}

func TestRepairWhitespacePadded(t *testing.T) {
	out, err := Repair("\n\n  {\"ok\":true}  \n")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, out)
}

func TestRepairMalformed(t *testing.T) {
	raw := "I could not produce the document you asked for."
	_, err := Repair(raw)

	var me *MalformedError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, len(raw), me.RawLength)
	assert.Equal(t, raw, me.Preview)
}

func TestRepairPreviewIsBounded(t *testing.T) {
	raw := strings.Repeat("x", 2000)
	_, err := Repair(raw)

	var me *MalformedError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 2000, me.RawLength)
	assert.Len(t, me.Preview, previewLen+len("..."))
}

func TestRepairEmpty(t *testing.T) {
	_, err := Repair("")
	var me *MalformedError
	require.ErrorAs(t, err, &me)
}

func TestUnmarshal(t *testing.T) {
	var out struct {
		Title    string   `json:"title"`
		Segments []string `json:"segments"`
	}
	raw := "```json\n{\"title\":\"Hook First\",\"segments\":[\"a\",\"b\"]}\n```"
	require.NoError(t, Unmarshal(raw, &out))
	assert.Equal(t, "Hook First", out.Title)
	assert.Equal(t, []string{"a", "b"}, out.Segments)
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	// Valid JSON that does not fit the target shape is still malformed output.
	var out struct {
		Count int `json:"count"`
	}
	err := Unmarshal(`{"count":"three"}`, &out)
	var me *MalformedError
	require.ErrorAs(t, err, &me)
}
