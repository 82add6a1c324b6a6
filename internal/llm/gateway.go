// Package llm wraps generative model invocation. Gateways are thin and
// stateless: they do not retry, do not parse model output, and do not apply
// defaults. Transport failures surface with status and message preserved
// verbatim so the retry layer can classify them.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/voxforge/studio/internal/schema"
)

// ErrMissingCredential means no API key is configured for the gateway.
// It fails fast, before any network call.
var ErrMissingCredential = errors.New("no API key configured")

// ErrUnsupportedCapability means the selected gateway cannot serve the
// requested feature (e.g. search grounding on a provider without it).
var ErrUnsupportedCapability = errors.New("capability not supported by this gateway")

// TransportError is a network or service failure. Status is the HTTP-style
// status code (0 when the failure happened below HTTP), Message the raw
// error body.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("model transport error (status %d): %s", e.Status, e.Message)
}

// ImageRefusedError means the image model answered with explanatory text
// instead of image bytes: a policy refusal or an ambiguous prompt, distinct
// from a transport failure.
type ImageRefusedError struct {
	Explanation string
}

func (e *ImageRefusedError) Error() string {
	return fmt.Sprintf("image generation refused: %s", e.Explanation)
}

// Part is one piece of multimodal request content: either text or inline
// base64 binary data.
type Part struct {
	Text       string
	InlineMIME string
	InlineData string // base64
}

// TextPart builds a text part.
func TextPart(text string) Part { return Part{Text: text} }

// ImagePart builds an inline image part from base64 data.
func ImagePart(mime, data string) Part { return Part{InlineMIME: mime, InlineData: data} }

// Request is a single schema-constrained generation call.
type Request struct {
	SystemInstruction string
	Parts             []Part
	Schema            *schema.Schema // nil for free-text output
	Temperature       float64
	ThinkingBudget    int  // reasoning-depth hint in tokens, 0 = provider default
	GroundSearch      bool // enable web-search grounding
}

// Gateway is the text/JSON generation flavor.
type Gateway interface {
	// GenerateJSON executes one model call and returns the raw text result.
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// ImageGateway is the image generation flavor. Results are data URLs.
type ImageGateway interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	EditImage(ctx context.Context, imageBase64, prompt string) (string, error)
}
