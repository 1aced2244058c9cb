package labeling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

type moderationAPI interface {
	GetAccountModeration(ctx context.Context, did string) (domain.AccountModeration, error)
	EmitLabelEvent(ctx context.Context, did string, create, negate []string) error
}

// Applier adds and removes labels on accounts through the moderation service.
type Applier struct {
	api moderationAPI
	log *slog.Logger
}

// NewApplier creates an Applier.
func NewApplier(log *slog.Logger, api moderationAPI) *Applier {
	return &Applier{api: api, log: log.With("service", "applier")}
}

// Grant applies label to account.
func (a *Applier) Grant(ctx context.Context, account, label string) error {
	return a.emit(ctx, "grant", account, []string{label}, nil)
}

// Revoke negates label on account.
func (a *Applier) Revoke(ctx context.Context, account, label string) error {
	return a.emit(ctx, "revoke", account, nil, []string{label})
}

func (a *Applier) emit(ctx context.Context, action, account string, create, negate []string) error {
	if _, err := a.api.GetAccountModeration(ctx, account); err != nil {
		if errors.Is(err, domain.ErrUnknownAccount) {
			a.log.WarnContext(ctx, "account unknown to moderation service",
				slog.String("account", account),
				slog.String("action", action),
			)
		}
		return fmt.Errorf("%s %s: %w", action, account, err)
	}

	if err := a.api.EmitLabelEvent(ctx, account, create, negate); err != nil {
		return fmt.Errorf("%s %s: %w", action, account, err)
	}

	a.log.InfoContext(ctx, "label event emitted",
		slog.String("account", account),
		slog.String("action", action),
		slog.Any("create", create),
		slog.Any("negate", negate),
	)
	return nil
}
