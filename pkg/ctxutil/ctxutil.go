// Package ctxutil carries request-scoped identifiers through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	operatorIDKey ctxKey = "operator_id"
	requestIDKey  ctxKey = "request_id"
)

// WithOperatorID stores the id of the authenticated operator in the context.
func WithOperatorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, operatorIDKey, id)
}

// OperatorIDFromCtx extracts the operator id from the context.
// Returns uuid.Nil and false if the value is missing or nil.
func OperatorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(operatorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// OperatorRef returns the operator id as the nullable author of a change,
// or nil for an anonymous context.
func OperatorRef(ctx context.Context) *uuid.UUID {
	id, ok := OperatorIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
