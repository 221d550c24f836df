package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxActorID   ContextKey = "ctx_actor_id"

	// DefaultActorID is used when no actor is present in the context,
	// e.g. scripts and background maintenance
	DefaultActorID = "system"
)

// WithRequestID stamps a short request id onto the context when none is
// present. Embedding callers invoke this at their boundary so every log
// line within one call carries the same correlation code, e.g. RQ-XYZ12A8Q.
func WithRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, CtxRequestID, GenerateShortIDWithPrefix(SHORT_ID_PREFIX_REQUEST))
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetActorID returns the acting user recorded in the context, falling back
// to DefaultActorID so audit fields are never empty.
func GetActorID(ctx context.Context) string {
	if actorID, ok := ctx.Value(CtxActorID).(string); ok && actorID != "" {
		return actorID
	}
	return DefaultActorID
}
