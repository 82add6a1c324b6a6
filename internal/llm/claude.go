package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

var claudeModels = map[string]string{
	"haiku":  "claude-haiku-4-5-20251001",
	"sonnet": "claude-sonnet-4-5-20250929",
}

const claudeMaxTokens = 16384

// ClaudeGateway serves GenerateJSON through the Anthropic Messages API.
// Claude has no structured-output schema parameter, so the output contract
// is appended to the system instruction as a strict JSON directive.
type ClaudeGateway struct {
	client anthropic.Client
	model  string
}

// NewClaudeGateway builds a gateway for the given model variant ("haiku" or
// "sonnet"; unknown variants fall back to haiku). Credentials come from the
// SDK's standard ANTHROPIC_API_KEY resolution.
func NewClaudeGateway(variant string) (*ClaudeGateway, error) {
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		return nil, ErrMissingCredential
	}
	model := claudeModels[variant]
	if model == "" {
		model = claudeModels["haiku"]
	}
	return &ClaudeGateway{client: anthropic.NewClient(), model: model}, nil
}

func (g *ClaudeGateway) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if req.GroundSearch {
		return "", ErrUnsupportedCapability
	}

	system := req.SystemInstruction
	if req.Schema != nil {
		contract, err := json.Marshal(req.Schema)
		if err != nil {
			return "", fmt.Errorf("marshal output contract: %w", err)
		}
		system = system + "\n\nRespond with a single JSON object matching this schema exactly. No prose, no markdown fences:\n" + string(contract)
	}

	userText, err := flattenParts(req.Parts)
	if err != nil {
		return "", err
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.model),
		MaxTokens:   claudeMaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userText)),
		},
	})
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &TransportError{Status: apierr.StatusCode, Message: apierr.Error()}
		}
		return "", &TransportError{Status: 0, Message: err.Error()}
	}

	var parts []string
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	return strings.Join(parts, ""), nil
}

// flattenParts collapses request parts to plain text. Inline binary parts
// are rejected: image understanding routes through the Gemini gateway.
func flattenParts(parts []Part) (string, error) {
	var texts []string
	for _, p := range parts {
		if p.InlineData != "" {
			return "", ErrUnsupportedCapability
		}
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n\n"), nil
}
