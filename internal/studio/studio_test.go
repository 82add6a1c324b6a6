package studio

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/normalize"
	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/prompt"
	"github.com/voxforge/studio/internal/retry"
	"github.com/voxforge/studio/internal/schema"
	"github.com/voxforge/studio/internal/script"
)

// stubGateway records requests and replays canned responses. Each call pops
// the next response; errors replay in the same order.
type stubGateway struct {
	requests  []llm.Request
	responses []string
	errs      []error
}

func (g *stubGateway) GenerateJSON(ctx context.Context, req llm.Request) (string, error) {
	g.requests = append(g.requests, req)
	i := len(g.requests) - 1
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("stub exhausted")
}

func newTestStudio(gw llm.Gateway) *Studio {
	policy := retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}.
		WithSleep(func(ctx context.Context, d time.Duration) error { return nil })
	return New(gw, persona.NewRegistry(persona.DefaultCatalog()), WithRetryPolicy(policy))
}

func shortsConfig() GeneratorConfig {
	return GeneratorConfig{
		Topic:    "t",
		Platform: "TikTok",
		Duration: "60 Seconds (Shorts)",
		Language: "English",
	}
}

func TestGenerateScriptManualMode(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"title":"The Silent Tax","detectedIntent":"Explainer","targetAudience":"Curious viewers",
		  "segments":[{"visual":"macro shot of a receipt","audio":"You paid for this twice."}],
		  "ctas":["Follow for part two"]}`,
	}}
	s := newTestStudio(gw)

	doc, err := s.GenerateScript(context.Background(), GeneratorConfig{
		Topic:       "hidden costs of card payments",
		Platform:    "YouTube Shorts",
		Duration:    "60 Seconds (Shorts)",
		Language:    "English",
		WritingMode: ModeManual,
		CreatorID:   "mira-solis",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "The Silent Tax", doc.Title)
	assert.Equal(t, "mira-solis", doc.CreatorID)
	assert.Equal(t, "Mira Solis", doc.CreatorName)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "You paid for this twice.", doc.Segments[0].Audio)

	// One model call, schema-constrained, at the generation temperature.
	require.Len(t, gw.requests, 1)
	req := gw.requests[0]
	assert.Equal(t, schema.Lookup(schema.ScriptPackage), req.Schema)
	assert.InDelta(t, 0.8, req.Temperature, 0.001)
	assert.Contains(t, req.SystemInstruction, "Mira Solis")
	assert.Contains(t, req.Parts[0].Text, "TOPIC: hidden costs of card payments")
}

func TestGenerateScriptDefaultsMissingCollections(t *testing.T) {
	gw := &stubGateway{responses: []string{`{"title":"Bare","citations":null}`}}
	s := newTestStudio(gw)

	doc, err := s.GenerateScript(context.Background(), shortsConfig())
	require.NoError(t, err)
	assert.NotNil(t, doc.Segments)
	assert.NotNil(t, doc.CTAs)
	assert.NotNil(t, doc.Citations)
	assert.Empty(t, doc.Segments)

	// The document must serialize with empty arrays, never JSON null.
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), ":null")
}

func TestGenerateScriptAutoModeReRoutesAttribution(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"title":"x","segments":[],
		  "autoCreatorSelection":{"selectedId":"theo-brandt","reason":"physics topic"}}`,
	}}
	s := newTestStudio(gw)

	cfg := shortsConfig()
	cfg.Topic = "why time slows near mass"
	cfg.WritingMode = ModeAuto

	doc, err := s.GenerateScript(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "theo-brandt", doc.CreatorID)
	assert.Equal(t, "Theo Brandt", doc.CreatorName)
}

func TestGenerateScriptAutoModeUnknownSelectionFallsBack(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"title":"x","segments":[],
		  "autoCreatorSelection":{"selectedId":"ghost-persona","reason":"?"}}`,
	}}
	s := newTestStudio(gw)

	cfg := shortsConfig()
	cfg.WritingMode = ModeAuto

	doc, err := s.GenerateScript(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "arjun-vale", doc.CreatorID)
}

func TestGenerateScriptManualModeIgnoresStraySelection(t *testing.T) {
	// A manual-mode response carrying selection metadata must not re-route
	// attribution away from the caller's explicit choice.
	gw := &stubGateway{responses: []string{
		`{"title":"x","segments":[],
		  "autoCreatorSelection":{"selectedId":"theo-brandt","reason":"stray"}}`,
	}}
	s := newTestStudio(gw)

	cfg := shortsConfig()
	cfg.WritingMode = ModeManual
	cfg.CreatorID = "devon-cruz"

	doc, err := s.GenerateScript(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "devon-cruz", doc.CreatorID)
}

func TestGenerateScriptBlendWithoutSecondaries(t *testing.T) {
	s := newTestStudio(&stubGateway{})

	cfg := shortsConfig()
	cfg.WritingMode = ModeBlend
	cfg.CreatorID = "arjun-vale"

	_, err := s.GenerateScript(context.Background(), cfg)

	var oe *OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "studio.generate_script", oe.Op)
}

func TestGenerateScriptUnknownCreator(t *testing.T) {
	s := newTestStudio(&stubGateway{})

	cfg := shortsConfig()
	cfg.CreatorID = "nobody"

	_, err := s.GenerateScript(context.Background(), cfg)

	var nf *persona.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGenerateScriptRetriesTransientFailures(t *testing.T) {
	gw := &stubGateway{
		errs: []error{
			&llm.TransportError{Status: 503, Message: "overloaded"},
			&llm.TransportError{Status: 503, Message: "overloaded"},
			nil,
		},
		responses: []string{"", "", `{"title":"Third Time","segments":[]}`},
	}
	s := newTestStudio(gw)

	doc, err := s.GenerateScript(context.Background(), shortsConfig())
	require.NoError(t, err)
	assert.Equal(t, "Third Time", doc.Title)
	assert.Len(t, gw.requests, 3)
}

func TestGenerateScriptPermanentTransportError(t *testing.T) {
	gw := &stubGateway{errs: []error{&llm.TransportError{Status: 400, Message: "bad request"}}}
	s := newTestStudio(gw)

	_, err := s.GenerateScript(context.Background(), shortsConfig())

	assert.Len(t, gw.requests, 1)
	var te *llm.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 400, te.Status)
}

func TestGenerateScriptMalformedOutput(t *testing.T) {
	gw := &stubGateway{responses: []string{"sorry, I cannot help with that"}}
	s := newTestStudio(gw)

	_, err := s.GenerateScript(context.Background(), shortsConfig())

	// Malformed output and transport failures stay distinguishable through
	// the operation wrapper.
	var me *normalize.MalformedError
	require.ErrorAs(t, err, &me)
	var te *llm.TransportError
	assert.False(t, errors.As(err, &te))
}

func TestExtendScriptTextAppendsOnly(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"segments":[{"visual":"closing card","audio":"And that is the real story."}]}`,
	}}
	s := newTestStudio(gw)

	doc := &script.Document{
		ID:       script.NewID(),
		Segments: []script.Segment{{Visual: "opening", Audio: "first line"}},
	}
	creator := s.Personas().Default()

	out, err := s.ExtendScriptText(context.Background(), doc, creator)
	require.NoError(t, err)

	require.Len(t, out.Segments, 2)
	assert.Equal(t, "first line", out.Segments[0].Audio)
	assert.Equal(t, "And that is the real story.", out.Segments[1].Audio)
	assert.Len(t, doc.Segments, 1)

	req := gw.requests[0]
	assert.Equal(t, schema.Lookup(schema.PartialScript), req.Schema)
	assert.Contains(t, req.Parts[0].Text, creator.Name)
}

func TestExtendVisualSequence(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"segments":[{"visual":"drone pullback","audio":""},{"visual":"data overlay","audio":""}]}`,
	}}
	s := newTestStudio(gw)

	doc := &script.Document{Segments: []script.Segment{{Audio: "only line"}}}
	out, err := s.ExtendVisualSequence(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, out.Segments, 3)
	assert.Contains(t, gw.requests[0].Parts[0].Text, "visual narrative sequence")
}

func TestAnalyzeDefaultsCollections(t *testing.T) {
	gw := &stubGateway{responses: []string{`{"hookScore":72,"viralityLabel":"Medium"}`}}
	s := newTestStudio(gw)

	analysis, err := s.Analyze(context.Background(), &script.Document{})
	require.NoError(t, err)
	assert.InDelta(t, 72, analysis.HookScore, 0.001)
	assert.NotNil(t, analysis.Suggestions)
	assert.NotNil(t, analysis.RetentionData)
	assert.NotNil(t, analysis.MonetizationRisks)
	assert.NotNil(t, analysis.SafetyFlags)
}

// Every derived operation returns empty collections, not nil, when the model
// omits the optional arrays entirely.
func TestDerivedOperationsDefaultMissingCollections(t *testing.T) {
	doc := &script.Document{Segments: []script.Segment{{Audio: "one line"}}}

	cases := []struct {
		name string
		run  func(s *Studio) (any, error)
	}{
		{"hooks", func(s *Studio) (any, error) {
			return s.GenerateHooks(context.Background(), doc)
		}},
		{"evidence map", func(s *Studio) (any, error) {
			return s.EvidenceMap(context.Background(), doc)
		}},
		{"experiment variants", func(s *Studio) (any, error) {
			return s.ExperimentVariants(context.Background(), doc)
		}},
		{"viral titles", func(s *Studio) (any, error) {
			return s.ViralTitles(context.Background(), doc, persona.DefaultCatalog()[0], "English")
		}},
		{"topic suggestions", func(s *Studio) (any, error) {
			return s.SuggestTopics(context.Background(), "x", "TikTok")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStudio(&stubGateway{responses: []string{`{}`}})
			out, err := tc.run(s)
			require.NoError(t, err)

			raw, err := json.Marshal(out)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(raw))
		})
	}
}

func TestEnhanceDefaultsImprovedFields(t *testing.T) {
	s := newTestStudio(&stubGateway{responses: []string{`{"summary":"tightened the hook"}`}})

	log, err := s.Enhance(context.Background(), &script.Document{})
	require.NoError(t, err)
	assert.NotNil(t, log.ImprovedFields)
}

func TestSimulateAudienceDefaultsCollections(t *testing.T) {
	s := newTestStudio(&stubGateway{responses: []string{`{"predictedRetention":55}`}})

	sim, err := s.SimulateAudience(context.Background(), &script.Document{})
	require.NoError(t, err)
	assert.NotNil(t, sim.RetentionHeatmap)
	assert.NotNil(t, sim.Personas)
	assert.NotNil(t, sim.MicroFixes)
}

func TestDirectorPlanDefaultsScenes(t *testing.T) {
	s := newTestStudio(&stubGateway{responses: []string{`{}`}})

	plan, err := s.DirectorPlan(context.Background(), &script.Document{})
	require.NoError(t, err)
	assert.NotNil(t, plan.Scenes)
}

func TestGenerateHooksTrimsContext(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"hooks":[{"id":"h1","type":"Mystery","visual":"black screen","audio":"Nobody noticed.","score":88,"reasoning":"curiosity gap"}]}`,
	}}
	s := newTestStudio(gw)

	doc := &script.Document{Segments: []script.Segment{
		{Audio: "beat one"}, {Audio: "beat two"}, {Audio: "beat three"},
	}}
	hooks, err := s.GenerateHooks(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	assert.Equal(t, "Mystery", hooks[0].Type)

	// Only the first two beats feed the hook prompt.
	assert.Contains(t, gw.requests[0].Parts[0].Text, "beat two")
	assert.NotContains(t, gw.requests[0].Parts[0].Text, "beat three")
}

func TestSuggestTopicsUsesSearchGrounding(t *testing.T) {
	gw := &stubGateway{responses: []string{
		`{"suggestions":[{"refinedTopic":"the port nobody can close","reason":"recent news","type":"Angle"}]}`,
	}}
	s := newTestStudio(gw)

	out, err := s.SuggestTopics(context.Background(), "global shipping", "YouTube Shorts")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, gw.requests[0].GroundSearch)
}

func TestViralTitlesBoundsSnippet(t *testing.T) {
	gw := &stubGateway{responses: []string{`{"titles":[{"text":"T","ctrScore":9,"pattern":"Shock","reasoning":"r"}]}`}}
	s := newTestStudio(gw)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	doc := &script.Document{
		Topic:    "x",
		Segments: []script.Segment{{Audio: string(long)}},
	}
	_, err := s.ViralTitles(context.Background(), doc, s.Personas().Default(), "English")
	require.NoError(t, err)

	assert.InDelta(t, 0.9, gw.requests[0].Temperature, 0.001)
	assert.Less(t, len(gw.requests[0].Parts[0].Text), 700)
}

func TestCanvasReturnsProposalWithoutCommitting(t *testing.T) {
	gw := &stubGateway{responses: []string{"  A sharper, angrier version of the script.  \n"}}
	s := newTestStudio(gw)

	out, err := s.ChangeTone(context.Background(), "the original text", "Angry")
	require.NoError(t, err)
	assert.Equal(t, "A sharper, angrier version of the script.", out)

	req := gw.requests[0]
	assert.Nil(t, req.Schema)
	assert.InDelta(t, 0.7, req.Temperature, 0.001)
	assert.Equal(t, 2048, req.ThinkingBudget)
}

func TestCanvasFallsBackToOriginalOnEmptyOutput(t *testing.T) {
	gw := &stubGateway{responses: []string{"   \n"}}
	s := newTestStudio(gw)

	out, err := s.GrammarCheck(context.Background(), "the original text", "Arjun Vale")
	require.NoError(t, err)
	assert.Equal(t, "the original text", out)
}

// echoGateway returns the text between the input fences unchanged, standing
// in for a model that rewrites wording without touching structure.
type echoGateway struct {
	requests []llm.Request
}

func (g *echoGateway) GenerateJSON(ctx context.Context, req llm.Request) (string, error) {
	g.requests = append(g.requests, req)
	text := req.Parts[0].Text
	start := strings.Index(text, `"""`)
	end := strings.LastIndex(text, `"""`)
	if start < 0 || end <= start {
		return "", errors.New("no input block in prompt")
	}
	return strings.TrimSpace(text[start+3 : end]), nil
}

func TestChangeTonePreservesParagraphStructure(t *testing.T) {
	original := "Ports are chokepoints.\n\nOne canal carries twelve percent of trade.\n\nThat is the whole story."
	s := newTestStudio(&echoGateway{})

	out, err := s.ChangeTone(context.Background(), original, "Angry")
	require.NoError(t, err)

	// Paragraph count and order survive the rewrite round trip.
	assert.Len(t, strings.Split(out, "\n\n"), 3)
	assert.Equal(t, original, out)
}

func TestImageOperationsRequireGateway(t *testing.T) {
	s := newTestStudio(&stubGateway{})

	_, err := s.GenerateVisualPreview(context.Background(), "a rainy street")
	require.ErrorIs(t, err, ErrNoImageGateway)

	_, err = s.EditImage(context.Background(), "aGVsbG8=", "add rain")
	require.ErrorIs(t, err, ErrNoImageGateway)

	_, err = s.GenerateThumbnail(context.Background(), "", prompt.ThumbnailSpec{Topic: "x"})
	require.ErrorIs(t, err, ErrNoImageGateway)
}

// stubImageGateway records image prompts and returns a fixed data URL.
type stubImageGateway struct {
	prompts []string
}

func (g *stubImageGateway) GenerateImage(ctx context.Context, p string) (string, error) {
	g.prompts = append(g.prompts, p)
	return "data:image/png;base64,aGVsbG8=", nil
}

func (g *stubImageGateway) EditImage(ctx context.Context, imageBase64, p string) (string, error) {
	g.prompts = append(g.prompts, p)
	return "data:image/png;base64,aGVsbG8=", nil
}

func TestGenerateThumbnailCompilesCreatorStyle(t *testing.T) {
	img := &stubImageGateway{}
	policy := retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}.
		WithSleep(func(ctx context.Context, d time.Duration) error { return nil })
	s := New(&stubGateway{}, persona.NewRegistry(persona.DefaultCatalog()),
		WithRetryPolicy(policy), WithImageGateway(img))

	dataURL, err := s.GenerateThumbnail(context.Background(), "elias-ash", prompt.ThumbnailSpec{
		Topic:       "why boredom matters",
		TextOverlay: "THE LOST ART",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/"))

	require.Len(t, img.prompts, 1)
	assert.Contains(t, img.prompts[0], "[STYLE DNA]")
	assert.Contains(t, img.prompts[0], "Core Topic: why boredom matters")
	assert.Contains(t, img.prompts[0], "Cinematic Serif (Cinzel)")
}

func TestGenerateThumbnailUnknownCreator(t *testing.T) {
	s := New(&stubGateway{}, persona.NewRegistry(persona.DefaultCatalog()),
		WithImageGateway(&stubImageGateway{}))

	_, err := s.GenerateThumbnail(context.Background(), "nobody", prompt.ThumbnailSpec{Topic: "x"})

	var nf *persona.NotFoundError
	require.ErrorAs(t, err, &nf)
}
