package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// AccountDID returns a fresh account DID.
func AccountDID() string {
	return "did:plc:test" + UniqueSuffix()
}

// SeedPostLabel inserts a post_labels row for a fresh post id.
func SeedPostLabel(t *testing.T, pool *pgxpool.Pool, label string) domain.PostLabel {
	t.Helper()

	pl := domain.PostLabel{
		PostID:      "3k" + UniqueSuffix(),
		Label:       label,
		DisplayName: domain.TitleCase(label),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO post_labels (post_id, label, display_name, is_meta, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		pl.PostID, pl.Label, pl.DisplayName, pl.IsMeta, pl.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPostLabel: %v", err)
	}

	return pl
}

// SeedAssociation inserts a like_associations row for the account.
func SeedAssociation(t *testing.T, pool *pgxpool.Pool, account, label string) domain.Association {
	t.Helper()

	a := domain.Association{
		ID:        uuid.New(),
		Account:   account,
		LikePath:  "app.bsky.feed.like/3k" + UniqueSuffix(),
		PostURI:   "at://did:plc:curator/app.bsky.feed.post/3k" + UniqueSuffix(),
		Label:     label,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO like_associations (id, account_did, like_path, post_uri, label, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Account, a.LikePath, a.PostURI, a.Label, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssociation: %v", err)
	}

	return a
}

// CountAssociations returns how many ledger rows an account holds.
func CountAssociations(t *testing.T, pool *pgxpool.Pool, account string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM like_associations WHERE account_did = $1`, account,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAssociations: %v", err)
	}
	return n
}
