package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey   ctxKey = "run_id"
	accountKey ctxKey = "account"
)

// WithRunID stores the pipeline run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithAccount stores the DID of the account an operation acts on.
func WithAccount(ctx context.Context, did string) context.Context {
	return context.WithValue(ctx, accountKey, did)
}

// AccountFromCtx extracts the account DID from the context.
// Returns an empty string if absent.
func AccountFromCtx(ctx context.Context) string {
	did, _ := ctx.Value(accountKey).(string)
	return did
}
