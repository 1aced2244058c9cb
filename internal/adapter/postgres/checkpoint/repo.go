// Package checkpoint implements the stream checkpoint store using PostgreSQL.
// Every save appends a row; the latest observed row wins on load.
package checkpoint

import (
	"context"

	postgres "github.com/heartmarshall/likelabeler/internal/adapter/postgres"
	"github.com/heartmarshall/likelabeler/internal/domain"
)

const (
	loadLatestSQL = `
SELECT cursor, observed_at
FROM stream_checkpoints
ORDER BY observed_at DESC, id DESC
LIMIT 1`

	saveSQL = `
INSERT INTO stream_checkpoints (cursor, observed_at)
VALUES ($1, $2)`
)

// Repo provides checkpoint persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new checkpoint repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// LoadLatest returns the most recently observed checkpoint.
// Returns domain.ErrNotFound when nothing was saved yet.
func (r *Repo) LoadLatest(ctx context.Context) (domain.Checkpoint, error) {
	var cp domain.Checkpoint

	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, loadLatestSQL).
		Scan(&cp.Cursor, &cp.ObservedAt)
	if err != nil {
		return domain.Checkpoint{}, postgres.MapError(err, "stream_checkpoint", "latest")
	}

	return cp, nil
}

// Save appends a checkpoint row. Earlier rows are kept as history.
func (r *Repo) Save(ctx context.Context, cp domain.Checkpoint) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, saveSQL, cp.Cursor, cp.ObservedAt)
	if err != nil {
		return postgres.MapError(err, "stream_checkpoint", cp.Cursor)
	}
	return nil
}
