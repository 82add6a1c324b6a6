package studio

import (
	"context"
	"strings"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/prompt"
)

// Canvas transforms rewrite flat script text and return the proposal. They
// never commit anything: the caller decides whether the result lands in the
// document or its undo history.
const (
	canvasTemperature    = 0.7
	canvasThinkingBudget = 2048
)

func (s *Studio) runCanvas(ctx context.Context, op, instruction, fallback string) (string, error) {
	req := llm.Request{
		Parts:          []llm.Part{llm.TextPart(instruction)},
		Temperature:    canvasTemperature,
		ThinkingBudget: canvasThinkingBudget,
	}
	raw, err := s.invokeText(ctx, op, req)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return fallback, nil
	}
	return text, nil
}

// ChangeTone rewrites the text in a new tone, preserving paragraph
// structure, argument order, and facts.
func (s *Studio) ChangeTone(ctx context.Context, scriptText, targetTone string) (string, error) {
	return s.runCanvas(ctx, "studio.canvas_tone", prompt.ToneChange(scriptText, targetTone), scriptText)
}

// ChangeStyle rewrites the text in the target persona's voice.
func (s *Studio) ChangeStyle(ctx context.Context, scriptText string, target persona.Profile) (string, error) {
	return s.runCanvas(ctx, "studio.canvas_style", prompt.StyleChange(scriptText, target), scriptText)
}

// Summarize condenses the text to the requested length.
func (s *Studio) Summarize(ctx context.Context, scriptText string, length prompt.SummaryLength) (string, error) {
	return s.runCanvas(ctx, "studio.canvas_summarize", prompt.Summarize(scriptText, length), scriptText)
}

// AddQuestions weaves reflective questions into the text without changing
// the original substantially.
func (s *Studio) AddQuestions(ctx context.Context, scriptText string) (string, error) {
	return s.runCanvas(ctx, "studio.canvas_questions", prompt.AddQuestions(scriptText), scriptText)
}

// GrammarCheck corrects grammar and spelling while preserving the named
// voice exactly.
func (s *Studio) GrammarCheck(ctx context.Context, scriptText, voiceName string) (string, error) {
	return s.runCanvas(ctx, "studio.canvas_grammar", prompt.GrammarFix(scriptText, voiceName), scriptText)
}
