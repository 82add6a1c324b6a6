package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/prompt"
	"github.com/voxforge/studio/internal/schema"
	"github.com/voxforge/studio/internal/script"
)

// topicCeiling bounds the topic text in the generation prompt. Current
// models take far more, but imported articles can be arbitrarily large.
const topicCeiling = 500000

const generateTemperature = 0.8

// scriptPayload is the model's answer shape for a full script package.
type scriptPayload struct {
	Title          string                `json:"title"`
	DetectedIntent string                `json:"detectedIntent"`
	TargetAudience string                `json:"targetAudience"`
	Segments       []script.Segment      `json:"segments"`
	CTAs           []string              `json:"ctas"`
	Citations      []script.Citation     `json:"citations"`
	AutoSelection  *script.AutoSelection `json:"autoCreatorSelection"`
	BlendMetadata  *script.BlendMetadata `json:"blendMetadata"`
}

// GenerateScript runs the full pipeline: compile the mode-specific system
// instruction, invoke the model against the script package contract, and
// normalize the answer into a Document with attribution resolved.
func (s *Studio) GenerateScript(ctx context.Context, cfg GeneratorConfig) (*script.Document, error) {
	const op = "studio.generate_script"

	creator, err := s.resolveCreator(cfg.CreatorID)
	if err != nil {
		return nil, &OpError{Op: op, Err: err}
	}

	system, err := s.compileSystem(cfg, creator)
	if err != nil {
		return nil, &OpError{Op: op, Err: err}
	}

	parts := []llm.Part{llm.TextPart(s.buildUserPrompt(cfg))}
	for _, img := range cfg.ReferenceImages {
		parts = append(parts, llm.ImagePart(img.MIMEType, img.Data))
	}

	var payload scriptPayload
	req := llm.Request{
		SystemInstruction: system,
		Parts:             parts,
		Temperature:       generateTemperature,
	}
	if err := s.invokeJSON(ctx, op, req, schema.ScriptPackage, &payload); err != nil {
		return nil, err
	}

	doc := &script.Document{
		ID:             script.NewID(),
		Topic:          cfg.Topic,
		Platform:       cfg.Platform,
		Duration:       cfg.Duration,
		Language:       cfg.Language,
		Title:          payload.Title,
		DetectedIntent: payload.DetectedIntent,
		TargetAudience: payload.TargetAudience,
		Segments:       payload.Segments,
		CTAs:           payload.CTAs,
		Citations:      payload.Citations,
		CreatedAt:      time.Now().UTC(),
	}
	// Collection fields are never nil, even when the model omits them.
	doc.Segments = ensureSlice(doc.Segments)
	doc.CTAs = ensureSlice(doc.CTAs)
	doc.Citations = ensureSlice(doc.Citations)

	doc.CreatorID, doc.CreatorName = s.resolveAttribution(cfg, creator, payload.AutoSelection)

	s.logger.InfoContext(ctx, "script generated",
		"script_id", doc.ID,
		"mode", string(cfg.WritingMode),
		"creator", doc.CreatorID,
		"segments", len(doc.Segments),
	)
	return doc, nil
}

func (s *Studio) compileSystem(cfg GeneratorConfig, creator persona.Profile) (string, error) {
	switch cfg.WritingMode {
	case ModeAuto:
		return prompt.AutoSelection(cfg.Topic, s.reg.List())
	case ModeBlend:
		secondaries := make([]persona.Profile, 0, len(cfg.Blend.SecondaryIDs))
		for _, id := range cfg.Blend.SecondaryIDs {
			p, err := s.reg.Get(id)
			if err != nil {
				return "", err
			}
			secondaries = append(secondaries, p)
		}
		return prompt.Blend(creator, secondaries)
	default:
		return prompt.Manual(creator, cfg.CustomInstruction), nil
	}
}

func (s *Studio) buildUserPrompt(cfg GeneratorConfig) string {
	topic := cfg.Topic
	if len(topic) > topicCeiling {
		topic = topic[:topicCeiling] + prompt.TruncationMarker
	}
	spec := durationFor(cfg.Duration)

	var b strings.Builder
	fmt.Fprintf(&b, "TOPIC: %s\n", topic)
	fmt.Fprintf(&b, "PLATFORM: %s\n", cfg.Platform)
	fmt.Fprintf(&b, "DURATION: %s (~%d words)\n", cfg.Duration, spec.MinWords)
	b.WriteString(languageInstruction(cfg.Language, cfg.ArabicDialect))
	b.WriteString("\n")
	fmt.Fprintf(&b, "STRUCTURE: %s\n", spec.Structure)
	if cfg.Sponsor != nil {
		fmt.Fprintf(&b, "SPONSOR: %s (%s) - %s\n", cfg.Sponsor.Name, cfg.Sponsor.Product, cfg.Sponsor.Message)
	}
	b.WriteString("\n[TASK]\nWrite a complete script package JSON. If images are provided, analyze them and incorporate their details into the script visual descriptions.\n")
	return b.String()
}

// resolveAttribution decides which persona the document credits. In auto
// mode the model's selection re-routes attribution when it names a known
// persona; manual and blend modes always keep the caller's choice.
func (s *Studio) resolveAttribution(cfg GeneratorConfig, creator persona.Profile, sel *script.AutoSelection) (id, name string) {
	if cfg.WritingMode == ModeAuto && sel != nil && sel.SelectedID != "" {
		if chosen, err := s.reg.Get(sel.SelectedID); err == nil {
			return chosen.ID, chosen.Name
		}
	}
	return creator.ID, creator.Name
}

// ExtendScriptText continues the script for roughly another 30 seconds in
// the attributed persona's style. The existing segments are untouched; only
// new segments are appended.
func (s *Studio) ExtendScriptText(ctx context.Context, doc *script.Document, creator persona.Profile) (*script.Document, error) {
	const op = "studio.extend_script"

	p := fmt.Sprintf(
		"Continue this script for another 30 seconds matching the style of %s.\nScript so far: %s\n\nReturn JSON with key 'segments' containing ONLY the new added segments.",
		creator.Name, segmentsJSON(doc),
	)
	return s.extend(ctx, op, doc, p)
}

// ExtendVisualSequence appends two segments that extend the visual
// narrative only, with minimal or no narration.
func (s *Studio) ExtendVisualSequence(ctx context.Context, doc *script.Document) (*script.Document, error) {
	const op = "studio.extend_visuals"

	p := fmt.Sprintf(
		"Read the following script segments.\nTASK: Generate 2 NEW additional segments that purely extend the visual narrative sequence.\nFocus on B-Roll, cinematics, or data visualizations that could follow the current ending.\nKeep the audio narration minimal or silence/music only.\n\nCurrent Script: %s\n\nReturn JSON with key 'segments' containing ONLY the new added segments.",
		segmentsJSON(doc),
	)
	return s.extend(ctx, op, doc, p)
}

func (s *Studio) extend(ctx context.Context, op string, doc *script.Document, userPrompt string) (*script.Document, error) {
	var payload struct {
		Segments []script.Segment `json:"segments"`
	}
	req := llm.Request{Parts: []llm.Part{llm.TextPart(userPrompt)}}
	if err := s.invokeJSON(ctx, op, req, schema.PartialScript, &payload); err != nil {
		return nil, err
	}
	return doc.WithSegmentsAppended(payload.Segments), nil
}

func segmentsJSON(doc *script.Document) string {
	data, err := json.Marshal(doc.Segments)
	if err != nil {
		return "[]"
	}
	return string(data)
}
