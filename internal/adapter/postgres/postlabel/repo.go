// Package postlabel implements the post -> label cache using PostgreSQL.
package postlabel

import (
	"context"

	postgres "github.com/heartmarshall/likelabeler/internal/adapter/postgres"
	"github.com/heartmarshall/likelabeler/internal/domain"
)

const (
	getSQL = `
SELECT post_id, label, display_name, is_meta, created_at
FROM post_labels
WHERE post_id = $1`

	// ON CONFLICT keeps the first resolution; concurrent resolvers of the
	// same post race harmlessly.
	insertSQL = `
INSERT INTO post_labels (post_id, label, display_name, is_meta)
VALUES ($1, $2, $3, $4)
ON CONFLICT (post_id) DO NOTHING`

	listSQL = `
SELECT post_id, label, display_name, is_meta, created_at
FROM post_labels
ORDER BY label, created_at`
)

// Repo provides post label persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post label repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the cached label of a post.
// Returns domain.ErrNotFound if the post was never resolved.
func (r *Repo) Get(ctx context.Context, postID string) (domain.PostLabel, error) {
	var pl domain.PostLabel

	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getSQL, postID).
		Scan(&pl.PostID, &pl.Label, &pl.DisplayName, &pl.IsMeta, &pl.CreatedAt)
	if err != nil {
		return domain.PostLabel{}, postgres.MapError(err, "post_label", postID)
	}

	return pl, nil
}

// InsertIfAbsent caches a resolution. Reports whether a row was written.
func (r *Repo) InsertIfAbsent(ctx context.Context, pl domain.PostLabel) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).
		Exec(ctx, insertSQL, pl.PostID, pl.Label, pl.DisplayName, pl.IsMeta)
	if err != nil {
		return false, postgres.MapError(err, "post_label", pl.PostID)
	}
	return tag.RowsAffected() == 1, nil
}

// List returns every cached post label ordered by label.
// Returns an empty slice (not nil) when the cache is empty.
func (r *Repo) List(ctx context.Context) ([]domain.PostLabel, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "post_label", "list")
	}
	defer rows.Close()

	out := []domain.PostLabel{}
	for rows.Next() {
		var pl domain.PostLabel
		if err := rows.Scan(&pl.PostID, &pl.Label, &pl.DisplayName, &pl.IsMeta, &pl.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "post_label", "list")
		}
		out = append(out, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "post_label", "list")
	}

	return out, nil
}
