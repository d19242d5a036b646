// Package mediator dispatches typed requests through an ordered chain of
// cross-cutting behaviors (authorization, validation, logging) before the
// use-case handler runs. The chain is composed once at startup; request types
// opt into behaviors through small capability markers, so adding a use case
// never touches pipeline code.
package mediator

import (
	"context"
	"fmt"
)

// Handler executes a single use case.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// Next advances the behavior chain.
type Next func(ctx context.Context) (interface{}, error)

// Behavior wraps handler execution with a cross-cutting step. Behaviors see
// the request as an opaque value and inspect capabilities via type assertion.
type Behavior interface {
	Handle(ctx context.Context, req interface{}, next Next) (interface{}, error)
}

// Pipeline is the fixed, ordered behavior chain.
type Pipeline struct {
	behaviors []Behavior
}

func NewPipeline(behaviors ...Behavior) *Pipeline {
	return &Pipeline{behaviors: behaviors}
}

// Send runs req through the pipeline and into h. Behaviors run in
// registration order; any behavior error short-circuits the chain.
func Send[Req, Res any](ctx context.Context, p *Pipeline, req Req, h Handler[Req, Res]) (Res, error) {
	var zero Res

	next := Next(func(ctx context.Context) (interface{}, error) {
		return h.Handle(ctx, req)
	})
	for i := len(p.behaviors) - 1; i >= 0; i-- {
		b := p.behaviors[i]
		inner := next
		next = func(ctx context.Context) (interface{}, error) {
			return b.Handle(ctx, req, inner)
		}
	}

	out, err := next(ctx)
	if err != nil {
		return zero, err
	}
	res, ok := out.(Res)
	if !ok {
		return zero, fmt.Errorf("mediator: handler for %T returned %T", req, out)
	}
	return res, nil
}

// Command marks a mutating request.
type Command struct{}

func (Command) RequestKind() string { return "command" }

// Query marks a read-only request.
type Query struct{}

func (Query) RequestKind() string { return "query" }

// Kinded is implemented by every request via the Command/Query markers.
type Kinded interface {
	RequestKind() string
}

// RequiresAuth marks requests that must carry an authenticated identity.
// The authorization behavior rejects anonymous callers before any
// validation runs.
type RequiresAuth struct{}

func (RequiresAuth) AuthRequired() {}

type authRequired interface {
	AuthRequired()
}
