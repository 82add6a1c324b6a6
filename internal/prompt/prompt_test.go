package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/studio/internal/persona"
)

func fixtureCatalog() []persona.Profile {
	return persona.DefaultCatalog()
}

func TestManualIsDeterministic(t *testing.T) {
	p := fixtureCatalog()[0]
	first := Manual(p, "keep it under 90 seconds")
	second := Manual(p, "keep it under 90 seconds")
	assert.Equal(t, first, second)
}

func TestManualEmbedsPersonaAndOverride(t *testing.T) {
	p := fixtureCatalog()[0]
	out := Manual(p, "open with a statistic")

	assert.Contains(t, out, p.Name)
	assert.Contains(t, out, p.Bio.Archetype)
	assert.Contains(t, out, "[USER OVERRIDE]")
	assert.Contains(t, out, "open with a statistic")
}

func TestManualWithoutOverride(t *testing.T) {
	out := Manual(fixtureCatalog()[0], "")
	assert.NotContains(t, out, "[USER OVERRIDE]")
}

func TestAutoSelectionRequiresCandidates(t *testing.T) {
	_, err := AutoSelection("why bridges fail", nil)
	require.ErrorIs(t, err, ErrInvalidIntent)
}

func TestAutoSelectionIsDeterministic(t *testing.T) {
	catalog := fixtureCatalog()
	first, err := AutoSelection("the economics of desalination", catalog)
	require.NoError(t, err)
	second, err := AutoSelection("the economics of desalination", catalog)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAutoSelectionListsEveryCandidate(t *testing.T) {
	catalog := fixtureCatalog()
	out, err := AutoSelection("the history of container shipping", catalog)
	require.NoError(t, err)
	for _, c := range catalog {
		assert.Contains(t, out, "(ID: "+c.ID+")")
	}
	assert.Contains(t, out, "autoCreatorSelection")
}

func TestAutoSelectionTruncatesLongTopics(t *testing.T) {
	topic := strings.Repeat("a", selectionTopicCeiling+100)
	out, err := AutoSelection(topic, fixtureCatalog())
	require.NoError(t, err)
	assert.Contains(t, out, TruncationMarker)
	assert.NotContains(t, out, topic)
}

func TestBlendRejectsInvalidIntents(t *testing.T) {
	catalog := fixtureCatalog()
	primary := catalog[0]

	tests := []struct {
		name        string
		secondaries []persona.Profile
	}{
		{"zero secondaries", nil},
		{"too many secondaries", catalog[1:5]},
		{"duplicate primary", []persona.Profile{catalog[1], primary}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Blend(primary, tt.secondaries)
			require.ErrorIs(t, err, ErrInvalidIntent)
		})
	}
}

func TestBlendAtSecondaryCap(t *testing.T) {
	catalog := fixtureCatalog()
	primary := catalog[0]
	secondaries := catalog[1:4]

	out, err := Blend(primary, secondaries)
	require.NoError(t, err)

	assert.Contains(t, out, primary.Name)
	for _, s := range secondaries {
		assert.Contains(t, out, "[SECONDARY INFLUENCE: "+s.Name+"]")
	}
	assert.Contains(t, out, "blendMetadata")
}

func TestBlendIsDeterministic(t *testing.T) {
	catalog := fixtureCatalog()
	first, err := Blend(catalog[0], catalog[1:3])
	require.NoError(t, err)
	second, err := Blend(catalog[0], catalog[1:3])
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTransformBuildersCarryTheScriptText(t *testing.T) {
	text := "Nothing about this lake is normal."
	target := fixtureCatalog()[1]

	builders := map[string]string{
		"tone":      ToneChange(text, "Serious"),
		"style":     StyleChange(text, target),
		"summarize": Summarize(text, SummaryShort),
		"questions": AddQuestions(text),
		"grammar":   GrammarFix(text, target.Name),
	}
	for name, out := range builders {
		assert.Contains(t, out, text, "builder %s", name)
		assert.Contains(t, out, "INPUT SCRIPT:", "builder %s", name)
	}
}

func TestSummarizeUnknownLengthFallsBackToMedium(t *testing.T) {
	got := Summarize("text", SummaryLength("Gigantic"))
	want := Summarize("text", SummaryMedium)
	assert.Equal(t, want, got)
}
