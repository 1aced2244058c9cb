package labeling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

type postLabelRepo interface {
	Get(ctx context.Context, postID string) (domain.PostLabel, error)
	InsertIfAbsent(ctx context.Context, pl domain.PostLabel) (bool, error)
}

type contentSource interface {
	GetPostText(ctx context.Context, repo, rkey string) (string, error)
}

// Resolver maps curated posts to labels, caching every resolution.
type Resolver struct {
	cache   postLabelRepo
	content contentSource
	remap   Remap
	log     *slog.Logger
}

// NewResolver creates a Resolver. A nil remap applies no corrections.
func NewResolver(log *slog.Logger, cache postLabelRepo, content contentSource, remap Remap) *Resolver {
	return &Resolver{
		cache:   cache,
		content: content,
		remap:   remap,
		log:     log.With("service", "resolver"),
	}
}

// Resolve returns the label defined by the post at postURI.
// A cached post is answered without touching the content source.
// Returns domain.ErrNotALabelPost when the post text defines no label.
func (r *Resolver) Resolve(ctx context.Context, postURI string) (domain.PostLabel, error) {
	uri, err := domain.ParseATURI(postURI)
	if err != nil {
		return domain.PostLabel{}, fmt.Errorf("resolve %s: %w", postURI, err)
	}

	cached, err := r.cache.Get(ctx, uri.RKey)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.PostLabel{}, fmt.Errorf("resolve %s: cache: %w", postURI, err)
	}

	text, err := r.content.GetPostText(ctx, uri.Authority, uri.RKey)
	if err != nil {
		return domain.PostLabel{}, fmt.Errorf("resolve %s: fetch: %w", postURI, err)
	}

	derived, err := domain.DeriveLabel(text)
	if err != nil {
		r.log.DebugContext(ctx, "liked post defines no label", slog.String("post_uri", postURI))
		return domain.PostLabel{}, err
	}

	pl := domain.PostLabel{
		PostID:      uri.RKey,
		Label:       r.remap.Apply(derived.Slug),
		DisplayName: derived.DisplayName,
		IsMeta:      derived.IsMeta,
	}

	written, err := r.cache.InsertIfAbsent(ctx, pl)
	if err != nil {
		// The label is still usable; the next like of this post fetches again.
		r.log.WarnContext(ctx, "post label cache write failed",
			slog.String("post_id", pl.PostID),
			slog.String("error", err.Error()),
		)
		return pl, nil
	}
	if written {
		r.log.InfoContext(ctx, "post label resolved",
			slog.String("post_id", pl.PostID),
			slog.String("label", pl.Label),
			slog.Bool("meta", pl.IsMeta),
		)
		return pl, nil
	}

	// Another worker cached this post first; its row is authoritative.
	if first, err := r.cache.Get(ctx, pl.PostID); err == nil {
		return first, nil
	}
	return pl, nil
}
