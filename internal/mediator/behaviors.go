package mediator

import (
	"context"
	"reflect"
	"time"

	"github.com/rs/zerolog"

	"github.com/VitaminP8/conduit/internal/apperrors"
	"github.com/VitaminP8/conduit/internal/auth"
)

// AuthorizationBehavior rejects RequiresAuth requests that arrive without an
// identity in the context. It runs before validation so that anonymous
// callers never see validation detail (uniqueness checks and the like).
type AuthorizationBehavior struct{}

func (AuthorizationBehavior) Handle(ctx context.Context, req interface{}, next Next) (interface{}, error) {
	if _, ok := req.(authRequired); ok {
		if !auth.IsAuthenticated(ctx) {
			return nil, apperrors.Unauthorized()
		}
	}
	return next(ctx)
}

// ValidationBehavior runs the validator registered for the request's type, if
// any. Validators are registered explicitly at startup; requests without one
// pass straight through.
type ValidationBehavior struct {
	validators map[reflect.Type]func(ctx context.Context, req interface{}) error
}

func NewValidationBehavior() *ValidationBehavior {
	return &ValidationBehavior{
		validators: make(map[reflect.Type]func(ctx context.Context, req interface{}) error),
	}
}

// RegisterValidator binds fn as the rule set for request type Req. Store-backed
// rules close over their dependencies here, at startup.
func RegisterValidator[Req any](b *ValidationBehavior, fn func(ctx context.Context, req Req) error) {
	t := reflect.TypeOf((*Req)(nil)).Elem()
	b.validators[t] = func(ctx context.Context, req interface{}) error {
		return fn(ctx, req.(Req))
	}
}

func (b *ValidationBehavior) Handle(ctx context.Context, req interface{}, next Next) (interface{}, error) {
	if fn, ok := b.validators[reflect.TypeOf(req)]; ok {
		if err := fn(ctx, req); err != nil {
			return nil, err
		}
	}
	return next(ctx)
}

// LoggingBehavior records every dispatched request: type, kind, duration and
// outcome. It sits outermost so failures in other behaviors are logged too.
type LoggingBehavior struct {
	logger zerolog.Logger
}

func NewLoggingBehavior(logger zerolog.Logger) *LoggingBehavior {
	return &LoggingBehavior{logger: logger}
}

func (b *LoggingBehavior) Handle(ctx context.Context, req interface{}, next Next) (interface{}, error) {
	start := time.Now()

	kind := "request"
	if k, ok := req.(Kinded); ok {
		kind = k.RequestKind()
	}

	res, err := next(ctx)

	evt := b.logger.Info()
	if err != nil {
		evt = b.logger.Warn().Str("error_kind", apperrors.KindOf(err).String()).Err(err)
	}
	evt.Str("kind", kind).
		Type("request", req).
		Dur("duration", time.Since(start)).
		Msg("request handled")

	return res, err
}
