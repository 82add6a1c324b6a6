package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/studio/internal/script"
)

func TestScriptItemRoundTrip(t *testing.T) {
	doc := script.Document{
		ID:        "01TEST",
		Topic:     "deep sea mining",
		Title:     "The Seabed Gold Rush",
		Platform:  "TikTok",
		Segments:  []script.Segment{{Visual: "submersible", Audio: "Four miles down."}},
		CTAs:      []string{"subscribe"},
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	docJSON, err := json.Marshal(doc)
	require.NoError(t, err)

	item := scriptItem{
		ScriptID:     doc.ID,
		DocumentJSON: string(docJSON),
	}
	saved, err := item.toSaved()
	require.NoError(t, err)

	assert.Equal(t, doc.ID, saved.ID)
	assert.Equal(t, doc.Title, saved.Title)
	require.Len(t, saved.Segments, 1)
	assert.Equal(t, "Four miles down.", saved.Segments[0].Audio)
	assert.Nil(t, saved.Analysis)
}

func TestScriptItemCarriesAnalysis(t *testing.T) {
	item := scriptItem{
		ScriptID:     "01TEST",
		DocumentJSON: `{"id":"01TEST","segments":[],"ctas":[],"createdAt":"2026-08-30T12:00:00Z"}`,
		AnalysisJSON: `{"hookScore":81,"viralityLabel":"Viral"}`,
	}
	saved, err := item.toSaved()
	require.NoError(t, err)

	require.NotNil(t, saved.Analysis)
	assert.InDelta(t, 81, saved.Analysis.HookScore, 0.001)
	assert.Equal(t, "Viral", saved.Analysis.ViralityLabel)
}

func TestScriptItemRejectsCorruptDocument(t *testing.T) {
	item := scriptItem{ScriptID: "01TEST", DocumentJSON: "{not json"}
	_, err := item.toSaved()
	require.Error(t, err)
}

func TestUsageCount(t *testing.T) {
	count, err := usageCount(map[string]types.AttributeValue{
		"count": &types.AttributeValueMemberN{Value: "5"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestUsageCountMissingAttribute(t *testing.T) {
	count, err := usageCount(map[string]types.AttributeValue{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUsageKeyRollsOverByUTCDay(t *testing.T) {
	s := &DynamoStore{tableName: "t"}

	s.now = func() time.Time { return time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC) }
	first := s.usageKey()["PK"].(*types.AttributeValueMemberS).Value

	s.now = func() time.Time { return time.Date(2026, 8, 31, 0, 1, 0, 0, time.UTC) }
	second := s.usageKey()["PK"].(*types.AttributeValueMemberS).Value

	assert.Equal(t, "USAGE#2026-08-30", first)
	assert.Equal(t, "USAGE#2026-08-31", second)
}
