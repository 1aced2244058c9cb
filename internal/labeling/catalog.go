package labeling

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

type catalogStore interface {
	GetLabelCatalog(ctx context.Context) (domain.LabelCatalog, error)
	PutLabelCatalog(ctx context.Context, cat domain.LabelCatalog) error
}

// Catalog keeps the labeler's published label catalog a superset of the
// labels the pipeline applies. Entries are only ever appended.
//
// A slug becomes known only once a fetched catalog lists it, so a definition
// lost to another writer is appended again on its next use.
type Catalog struct {
	store catalogStore
	known sync.Map // slug -> struct{}
	// mu serializes read-modify-write cycles of this process.
	mu  sync.Mutex
	log *slog.Logger
}

// NewCatalog creates a Catalog with an empty known set.
func NewCatalog(log *slog.Logger, store catalogStore) *Catalog {
	return &Catalog{
		store: store,
		log:   log.With("service", "catalog"),
	}
}

// Reset forgets the slugs seen so far. Called at the start of every run.
func (c *Catalog) Reset() {
	c.known.Clear()
}

// EnsureLabelExists publishes a definition for slug unless the catalog
// already lists it. Reports whether the remote catalog was written.
func (c *Catalog) EnsureLabelExists(ctx context.Context, slug, displayName string, isMeta bool) (bool, error) {
	if _, ok := c.known.Load(slug); ok {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cat, err := c.store.GetLabelCatalog(ctx)
	if err != nil {
		return false, fmt.Errorf("catalog: get: %w", err)
	}
	for _, v := range cat.Values {
		c.known.Store(v, struct{}{})
	}

	if !cat.Append(domain.NewLabelDefinition(slug, displayName, isMeta)) {
		return false, nil
	}

	if err := c.store.PutLabelCatalog(ctx, cat); err != nil {
		return false, fmt.Errorf("catalog: put %s: %w", slug, err)
	}

	c.log.InfoContext(ctx, "label added to catalog",
		slog.String("label", slug),
		slog.Int("catalog_size", len(cat.Values)),
	)
	return true, nil
}
