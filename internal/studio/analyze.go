package studio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/schema"
	"github.com/voxforge/studio/internal/script"
)

// Analyze scores the script for viral potential, retention risks, and
// factual integrity. An empty script still analyzes; the model reports on
// what is there.
func (s *Studio) Analyze(ctx context.Context, doc *script.Document) (*script.Analysis, error) {
	const op = "studio.analyze"

	var out script.Analysis
	p := fmt.Sprintf("Analyze this script for viral potential, retention risks, and factual integrity. Script: %s", segmentsJSON(doc))
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.Analysis, &out); err != nil {
		return nil, err
	}
	out.Suggestions = ensureSlice(out.Suggestions)
	out.RetentionData = ensureSlice(out.RetentionData)
	out.MonetizationRisks = ensureSlice(out.MonetizationRisks)
	out.SafetyFlags = ensureSlice(out.SafetyFlags)
	return &out, nil
}

// GenerateHooks proposes three alternative openings based on the script's
// first beats.
func (s *Studio) GenerateHooks(ctx context.Context, doc *script.Document) ([]script.HookOption, error) {
	const op = "studio.generate_hooks"

	head := doc.Segments
	if len(head) > 2 {
		head = head[:2]
	}
	headJSON, _ := json.Marshal(head)

	var out struct {
		Hooks []script.HookOption `json:"hooks"`
	}
	p := fmt.Sprintf("Generate 3 viral hook options for this script. Script Context: %s", headJSON)
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.Hooks, &out); err != nil {
		return nil, err
	}
	return ensureSlice(out.Hooks), nil
}

// Enhance asks the model to improve the script for retention and
// engagement, returning a log of what changed rather than a new script.
func (s *Studio) Enhance(ctx context.Context, doc *script.Document) (*script.EnhancementLog, error) {
	const op = "studio.enhance"

	var out script.EnhancementLog
	p := fmt.Sprintf("Enhance the following script to maximize retention and engagement. Script: %s", segmentsJSON(doc))
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.EnhancementLog, &out); err != nil {
		return nil, err
	}
	out.ImprovedFields = ensureSlice(out.ImprovedFields)
	return &out, nil
}

// SimulateAudience runs a synthetic test screening: a per-second retention
// heatmap, demographic reactions, and line-level micro fixes.
func (s *Studio) SimulateAudience(ctx context.Context, doc *script.Document) (*script.SimulationResult, error) {
	const op = "studio.simulate_audience"

	var out script.SimulationResult
	p := fmt.Sprintf("Simulate audience reaction for this script. Script: %s", segmentsJSON(doc))
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.Simulation, &out); err != nil {
		return nil, err
	}
	out.RetentionHeatmap = ensureSlice(out.RetentionHeatmap)
	out.Personas = ensureSlice(out.Personas)
	out.MicroFixes = ensureSlice(out.MicroFixes)
	return &out, nil
}

// DirectorPlan produces a shot-by-shot production breakdown.
func (s *Studio) DirectorPlan(ctx context.Context, doc *script.Document) (*script.DirectorPlan, error) {
	const op = "studio.director_plan"

	var out script.DirectorPlan
	p := fmt.Sprintf("Create a director's plan for this script. Script: %s", segmentsJSON(doc))
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.DirectorPlan, &out); err != nil {
		return nil, err
	}
	out.Scenes = ensureSlice(out.Scenes)
	return &out, nil
}

// EvidenceMap identifies factual claims in the script and ties each to a
// citation with a reliability score.
func (s *Studio) EvidenceMap(ctx context.Context, doc *script.Document) ([]script.Citation, error) {
	const op = "studio.evidence_map"

	var out struct {
		Citations []script.Citation `json:"citations"`
	}
	p := fmt.Sprintf("Identify claims in the script and provide citations. Script: %s", segmentsJSON(doc))
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.Citations, &out); err != nil {
		return nil, err
	}
	return ensureSlice(out.Citations), nil
}

// ExperimentVariants proposes A/B test variants for the script.
func (s *Studio) ExperimentVariants(ctx context.Context, doc *script.Document) ([]script.ExperimentVariant, error) {
	const op = "studio.experiment_variants"

	var out struct {
		Variants []script.ExperimentVariant `json:"variants"`
	}
	p := fmt.Sprintf("Propose A/B testing variants for this script. Script: %s", segmentsJSON(doc))
	req := llm.Request{Parts: []llm.Part{llm.TextPart(p)}}
	if err := s.invokeJSON(ctx, op, req, schema.ExperimentVariants, &out); err != nil {
		return nil, err
	}
	return ensureSlice(out.Variants), nil
}

const titlesTemperature = 0.9

// ViralTitles generates ten high click-through title candidates in the
// given language mode.
func (s *Studio) ViralTitles(ctx context.Context, doc *script.Document, creator persona.Profile, languageMode string) ([]script.Title, error) {
	const op = "studio.viral_titles"

	snippet := ""
	if len(doc.Segments) > 0 {
		snippet = doc.Segments[0].Audio
		if len(snippet) > 100 {
			snippet = snippet[:100]
		}
	}

	var out struct {
		Titles []script.Title `json:"titles"`
	}
	p := fmt.Sprintf(
		"Generate 10 high-CTR video titles for a video about %q.\nCreator Style: %s.\nScript Snippet: %q...\n\nLANGUAGE REQUIREMENT: %s\n- If 'Hinglish', mix Hindi grammar with strong English keywords.\n- If 'Urdu/Hindi', use script or Romanized as appropriate for viral reach.\n\nOptimize for Curiosity Gaps and Negativity Bias.",
		doc.Topic, creator.Name, snippet, languageMode,
	)
	req := llm.Request{
		Parts:       []llm.Part{llm.TextPart(p)},
		Temperature: titlesTemperature,
	}
	if err := s.invokeJSON(ctx, op, req, schema.ViralTitles, &out); err != nil {
		return nil, err
	}
	return ensureSlice(out.Titles), nil
}

// SuggestTopics refines a raw topic idea into three angles likely to
// perform, grounded on live web search results.
func (s *Studio) SuggestTopics(ctx context.Context, topic, platform string) ([]script.TopicSuggestion, error) {
	const op = "studio.suggest_topics"

	var out struct {
		Suggestions []script.TopicSuggestion `json:"suggestions"`
	}
	p := fmt.Sprintf(
		"User wants to make a video about %q for %s.\nUse Google Search to find trending angles and recent news related to this topic.\nSuggest 3 refined angles likely to go viral.",
		topic, platform,
	)
	req := llm.Request{
		Parts:        []llm.Part{llm.TextPart(p)},
		GroundSearch: true,
	}
	if err := s.invokeJSON(ctx, op, req, schema.TopicSuggestions, &out); err != nil {
		return nil, err
	}
	return ensureSlice(out.Suggestions), nil
}
