package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownOperations(t *testing.T) {
	names := []string{
		ScriptPackage, PartialScript, Analysis, Hooks, Simulation,
		DirectorPlan, Citations, ExperimentVariants, ViralTitles,
		TopicSuggestions, EnhancementLog,
	}
	for _, name := range names {
		s := Lookup(name)
		require.NotNil(t, s, "schema %s", name)
		assert.Equal(t, TypeObject, s.Type, "schema %s", name)
	}
}

func TestLookupUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Lookup("no_such_operation") })
}

func TestScriptPackageContract(t *testing.T) {
	s := Lookup(ScriptPackage)

	assert.ElementsMatch(t, []string{"title", "segments"}, s.Required)

	segments := s.Properties["segments"]
	require.NotNil(t, segments)
	assert.Equal(t, TypeArray, segments.Type)
	assert.ElementsMatch(t, []string{"visual", "audio"}, segments.Items.Required)

	// Attribution metadata is part of the contract but never required:
	// manual-mode responses legitimately omit both.
	assert.Contains(t, s.Properties, "autoCreatorSelection")
	assert.Contains(t, s.Properties, "blendMetadata")
	assert.NotContains(t, s.Required, "autoCreatorSelection")
	assert.NotContains(t, s.Required, "blendMetadata")
}

func TestCitationEnums(t *testing.T) {
	s := Lookup(Citations)
	citation := s.Properties["citations"].Items

	assert.Equal(t, CitationTypes, citation.Properties["type"].Enum)
	assert.Equal(t, ReliabilityScores, citation.Properties["reliabilityScore"].Enum)
}

func TestSchemaWireFormat(t *testing.T) {
	data, err := json.Marshal(Lookup(PartialScript))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "OBJECT", decoded["type"])

	props := decoded["properties"].(map[string]any)
	segs := props["segments"].(map[string]any)
	assert.Equal(t, "ARRAY", segs["type"])
}
