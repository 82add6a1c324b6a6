package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/voxforge/studio/internal/schema"
)

var geminiModels = map[string]string{
	"flash": "gemini-3-flash-preview",
	"pro":   "gemini-3-pro-preview",
	"image": "gemini-2.5-flash-image",
}

const geminiGenerateEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// attemptTimeout bounds a single HTTP round-trip. It is deliberately
// separate from the retry backoff timer: a hung connection must not eat
// all retry attempts.
const attemptTimeout = 60 * time.Second

// GeminiGateway talks to the Gemini generateContent API over plain HTTP.
type GeminiGateway struct {
	model      string
	imageModel string
	apiKey     string
	httpClient *http.Client
}

// NewGeminiGateway builds a gateway for the given model variant ("flash" or
// "pro"; unknown variants fall back to flash). The API key comes from
// GEMINI_API_KEY unless overridden via apiKey.
func NewGeminiGateway(variant, apiKey string) *GeminiGateway {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	model := geminiModels[variant]
	if model == "" {
		model = geminiModels["flash"]
	}
	return &GeminiGateway{
		model:      model,
		imageModel: geminiModels["image"],
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: attemptTimeout},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  *geminiGenCfg    `json:"generationConfig,omitempty"`
	Tools             []map[string]any `json:"tools,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenCfg struct {
	Temperature      float64            `json:"temperature,omitempty"`
	ResponseMimeType string             `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema.Schema     `json:"responseSchema,omitempty"`
	ThinkingConfig   *geminiThinkingCfg `json:"thinkingConfig,omitempty"`
}

type geminiThinkingCfg struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string            `json:"text"`
				InlineData *geminiInlineData `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateJSON executes one generateContent call. The schema, when present,
// is attached as responseSchema with JSON mime type.
func (g *GeminiGateway) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: toGeminiParts(req.Parts)}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}
	cfg := &geminiGenCfg{Temperature: req.Temperature}
	if req.Schema != nil {
		cfg.ResponseMimeType = "application/json"
		cfg.ResponseSchema = req.Schema
	}
	if req.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &geminiThinkingCfg{ThinkingBudget: req.ThinkingBudget}
	}
	body.GenerationConfig = cfg
	if req.GroundSearch {
		body.Tools = []map[string]any{{"googleSearch": map[string]any{}}}
	}

	resp, err := g.doRequest(ctx, g.model, body)
	if err != nil {
		return "", err
	}
	return firstText(resp), nil
}

// GenerateImage asks the image model for a picture and returns it as a data
// URL. Text-only responses surface as ImageRefusedError.
func (g *GeminiGateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	resp, err := g.doRequest(ctx, g.imageModel, body)
	if err != nil {
		return "", err
	}
	return extractImage(resp)
}

// EditImage sends an existing image plus an edit instruction and returns the
// edited image as a data URL.
func (g *GeminiGateway) EditImage(ctx context.Context, imageBase64, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}
	// Accept either a bare base64 payload or a full data URL.
	if idx := strings.Index(imageBase64, ","); idx >= 0 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[idx+1:]
	}
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{
			{InlineData: &geminiInlineData{MimeType: "image/png", Data: imageBase64}},
			{Text: "Generate an edited version of this image. " + prompt},
		}}},
	}
	resp, err := g.doRequest(ctx, g.imageModel, body)
	if err != nil {
		return "", err
	}
	return extractImage(resp)
}

func (g *GeminiGateway) doRequest(ctx context.Context, model string, body geminiRequest) (*geminiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiGenerateEndpoint+"?key=%s", model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Status: 0, Message: err.Error()}
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Status: res.StatusCode, Message: err.Error()}
	}
	if res.StatusCode != http.StatusOK {
		return nil, &TransportError{Status: res.StatusCode, Message: string(respBody)}
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("parse response envelope: %w", err)
	}
	return &resp, nil
}

func toGeminiParts(parts []Part) []geminiPart {
	out := make([]geminiPart, 0, len(parts))
	for _, p := range parts {
		if p.InlineData != "" {
			out = append(out, geminiPart{InlineData: &geminiInlineData{MimeType: p.InlineMIME, Data: p.InlineData}})
			continue
		}
		out = append(out, geminiPart{Text: p.Text})
	}
	return out
}

func firstText(resp *geminiResponse) string {
	var parts []string
	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.Text != "" {
				parts = append(parts, p.Text)
			}
		}
	}
	return strings.Join(parts, "")
}

func extractImage(resp *geminiResponse) (string, error) {
	var explanation string
	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, p.InlineData.Data), nil
			}
			if p.Text != "" {
				explanation = p.Text
			}
		}
	}
	if explanation == "" {
		explanation = "model returned no image data"
	}
	return "", &ImageRefusedError{Explanation: explanation}
}
