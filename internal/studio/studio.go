// Package studio orchestrates persona-driven script generation: it compiles
// instructions, invokes the model gateway under the retry policy, normalizes
// raw output, and applies defaulting guards before anything reaches callers.
package studio

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/normalize"
	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/retry"
	"github.com/voxforge/studio/internal/schema"
)

// OpError tags a failure with the operation that produced it. The underlying
// error kind (transport, malformed output, invalid intent) stays reachable
// through Unwrap.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *OpError) Unwrap() error { return e.Err }

// Studio is the orchestration front. It is stateless between calls and safe
// for concurrent use.
type Studio struct {
	gw     llm.Gateway
	img    llm.ImageGateway
	reg    *persona.Registry
	policy retry.Policy
	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Studio.
type Option func(*Studio)

// WithImageGateway enables the visual preview and edit operations.
func WithImageGateway(img llm.ImageGateway) Option {
	return func(s *Studio) { s.img = img }
}

// WithRetryPolicy overrides the default invocation retry policy.
func WithRetryPolicy(p retry.Policy) Option {
	return func(s *Studio) { s.policy = p }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Studio) { s.logger = l }
}

// WithTracer sets the tracer for per-operation spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Studio) { s.tracer = t }
}

// New builds a Studio over the given gateway and persona registry.
func New(gw llm.Gateway, reg *persona.Registry, opts ...Option) *Studio {
	s := &Studio{
		gw:     gw,
		reg:    reg,
		policy: retry.Default(),
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("studio"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Personas returns the persona registry backing this studio.
func (s *Studio) Personas() *persona.Registry { return s.reg }

// invokeJSON runs one schema-constrained model call under the retry policy
// and decodes the repaired output into out.
func (s *Studio) invokeJSON(ctx context.Context, op string, req llm.Request, schemaName string, out any) error {
	req.Schema = schema.Lookup(schemaName)

	raw, err := s.invokeText(ctx, op, req)
	if err != nil {
		return err
	}
	if err := normalize.Unmarshal(raw, out); err != nil {
		s.logger.ErrorContext(ctx, "model output normalization failed", "op", op, "error", err)
		return &OpError{Op: op, Err: err}
	}
	return nil
}

// invokeText runs one model call under the retry policy and returns the raw
// text unparsed.
func (s *Studio) invokeText(ctx context.Context, op string, req llm.Request) (string, error) {
	ctx, span := s.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.Bool("ground_search", req.GroundSearch),
	))
	defer span.End()

	var raw string
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		var callErr error
		raw, callErr = s.gw.GenerateJSON(ctx, req)
		return callErr
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "model invocation failed", "op", op, "error", err)
		return "", &OpError{Op: op, Err: err}
	}
	s.logger.DebugContext(ctx, "model invocation complete", "op", op, "raw_bytes", len(raw))
	return raw, nil
}

// resolveCreator maps an optional persona id to a profile, defaulting to the
// first catalog entry.
func (s *Studio) resolveCreator(id string) (persona.Profile, error) {
	if id == "" {
		return s.reg.Default(), nil
	}
	return s.reg.Get(id)
}

// ensureSlice is the post-parse defaulting pass for schema-optional arrays:
// a field the model omitted decodes to nil, but results always carry a
// sequence. Every operation funnels its optional arrays through here.
func ensureSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
