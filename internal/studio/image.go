package studio

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/prompt"
)

// ErrNoImageGateway means the studio was built without image support.
var ErrNoImageGateway = errors.New("no image gateway configured")

// GenerateVisualPreview renders a segment's visual description as an image
// and returns it as a data URL.
func (s *Studio) GenerateVisualPreview(ctx context.Context, visualPrompt string) (string, error) {
	const op = "studio.visual_preview"
	return s.runImage(ctx, op, func(ctx context.Context) (string, error) {
		return s.img.GenerateImage(ctx, visualPrompt)
	})
}

// GenerateThumbnail renders a video thumbnail in the creator's visual
// identity and returns it as a data URL. An empty creatorID uses the catalog
// default, matching script generation.
func (s *Studio) GenerateThumbnail(ctx context.Context, creatorID string, spec prompt.ThumbnailSpec) (string, error) {
	const op = "studio.thumbnail"

	creator, err := s.resolveCreator(creatorID)
	if err != nil {
		return "", &OpError{Op: op, Err: err}
	}
	p := prompt.Thumbnail(creator, spec)
	return s.runImage(ctx, op, func(ctx context.Context) (string, error) {
		return s.img.GenerateImage(ctx, p)
	})
}

// EditImage applies an edit instruction to a previously generated image.
func (s *Studio) EditImage(ctx context.Context, imageDataURL, instruction string) (string, error) {
	const op = "studio.edit_image"
	return s.runImage(ctx, op, func(ctx context.Context) (string, error) {
		return s.img.EditImage(ctx, imageDataURL, instruction)
	})
}

func (s *Studio) runImage(ctx context.Context, op string, fn func(ctx context.Context) (string, error)) (string, error) {
	if s.img == nil {
		return "", &OpError{Op: op, Err: ErrNoImageGateway}
	}

	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()

	var dataURL string
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		var callErr error
		dataURL, callErr = fn(ctx)
		return callErr
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var refused *llm.ImageRefusedError
		if errors.As(err, &refused) {
			s.logger.WarnContext(ctx, "image request refused", "op", op, "explanation", refused.Explanation)
		} else {
			s.logger.ErrorContext(ctx, "image generation failed", "op", op, "error", err)
		}
		return "", &OpError{Op: op, Err: err}
	}
	return dataURL, nil
}
