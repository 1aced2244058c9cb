// Package association implements the like association ledger using PostgreSQL.
// A row exists for every outstanding like that justifies a label on an account.
package association

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/likelabeler/internal/adapter/postgres"
	"github.com/heartmarshall/likelabeler/internal/domain"
)

const table = "like_associations"

const lockAccountSQL = "SELECT pg_advisory_xact_lock(hashtext($1))"

// Repo provides association persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new association repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// RecordActive inserts the association unless (account, like path) is
// already recorded. Reports whether a row was written.
func (r *Repo) RecordActive(ctx context.Context, a domain.Association) (bool, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "account_did", "like_path", "post_uri", "label", "created_at").
		Values(a.ID, a.Account, a.LikePath, a.PostURI, a.Label, a.CreatedAt).
		Suffix("ON CONFLICT (account_did, like_path) DO NOTHING").
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "like_association", a.Account+" "+a.LikePath)
	}
	return tag.RowsAffected() == 1, nil
}

// LockAccount takes a transaction-scoped advisory lock on the account.
// Removals holding it see each other's deletes; outside a transaction the
// lock is released as soon as the statement ends.
func (r *Repo) LockAccount(ctx context.Context, account string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, lockAccountSQL, account); err != nil {
		return postgres.MapError(err, "like_association", account)
	}
	return nil
}

// RemoveByLikePath deletes every row for (account, likePath) and returns the
// distinct labels those rows carried. No rows is not an error.
func (r *Repo) RemoveByLikePath(ctx context.Context, account, likePath string) ([]string, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"account_did": account, "like_path": likePath}).
		Suffix("RETURNING label").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "like_association", account+" "+likePath)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, postgres.MapError(err, "like_association", account+" "+likePath)
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "like_association", account+" "+likePath)
	}

	return labels, nil
}

// HasOtherActiveWithLabel reports whether the account still holds any like
// that justifies label.
func (r *Repo) HasOtherActiveWithLabel(ctx context.Context, account, label string) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"account_did": account, "label": label}).
		Limit(1).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "like_association", account+" "+label)
	}
	return exists, nil
}

// ListByAccount returns the account's associations, oldest first.
func (r *Repo) ListByAccount(ctx context.Context, account string) ([]domain.Association, error) {
	sql, args, err := postgres.Builder().
		Select("id", "account_did", "like_path", "post_uri", "label", "created_at").
		From(table).
		Where(squirrel.Eq{"account_did": account}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "like_association", account)
	}
	defer rows.Close()

	out := []domain.Association{}
	for rows.Next() {
		var a domain.Association
		if err := rows.Scan(&a.ID, &a.Account, &a.LikePath, &a.PostURI, &a.Label, &a.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "like_association", account)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "like_association", account)
	}

	return out, nil
}
