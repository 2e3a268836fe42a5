package utils

import (
	"context"

	"github.com/google/uuid"
)

// RunIDKey is the context key for the run ID
type RunIDKey struct{}

// WithRunID returns a copy of ctx carrying a freshly generated run ID
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RunIDKey{}, uuid.New().String())
}

// RunID returns the run ID stored in ctx, or an empty string
func RunID(ctx context.Context) string {
	runID, _ := ctx.Value(RunIDKey{}).(string)
	return runID
}
