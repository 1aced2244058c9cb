// Package export writes diagnostic JSON files describing the published label
// catalog and the login status of the labeler account.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/likelabeler/internal/config"
	"github.com/heartmarshall/likelabeler/internal/domain"
)

const statusFileName = "ratelimit.json"

type catalogSource interface {
	GetLabelCatalog(ctx context.Context) (domain.LabelCatalog, error)
}

type postLabelLister interface {
	List(ctx context.Context) ([]domain.PostLabel, error)
}

// Config holds exporter settings.
type Config struct {
	Dir      string
	FileName string
	Interval time.Duration
	// ProfileDID owns the curated posts linked from the dump.
	ProfileDID string
	// SearchHandle is the account searched for labels without a single post.
	SearchHandle string
}

// ConfigFrom builds an exporter Config from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Dir:          cfg.Export.Dir,
		FileName:     cfg.Export.FileName,
		Interval:     cfg.Export.Interval,
		ProfileDID:   cfg.Labeler.TargetDID,
		SearchHandle: cfg.Bluesky.Identifier,
	}
}

// Locale is one localized label text.
type Locale struct {
	Lang        string `json:"lang"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Entry is one label of the dump.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Locales     []Locale `json:"locales"`
	Posts       string   `json:"posts"`
}

type status struct {
	Status string `json:"status"`
}

// Exporter writes the dump files.
type Exporter struct {
	cfg     Config
	catalog catalogSource
	posts   postLabelLister
	clock   clockwork.Clock
	log     *slog.Logger
}

// New creates an Exporter. A nil clock uses the real clock.
func New(log *slog.Logger, cfg Config, catalog catalogSource, posts postLabelLister, clock clockwork.Clock) *Exporter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Exporter{
		cfg:     cfg,
		catalog: catalog,
		posts:   posts,
		clock:   clock,
		log:     log.With("service", "export"),
	}
}

// Build joins the remote catalog with the cached curated posts.
func (e *Exporter) Build(ctx context.Context) ([]Entry, error) {
	cat, err := e.catalog.GetLabelCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: get catalog: %w", err)
	}

	cached, err := e.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: list post labels: %w", err)
	}
	postsByLabel := make(map[string][]string, len(cached))
	for _, pl := range cached {
		postsByLabel[pl.Label] = append(postsByLabel[pl.Label], pl.PostID)
	}

	entries := make([]Entry, 0, len(cat.Definitions))
	for _, def := range cat.Definitions {
		entry := Entry{
			ID:      def.Identifier,
			Locales: make([]Locale, 0, len(def.Locales)),
			Posts:   e.postsLink(def.Identifier, postsByLabel[def.Identifier]),
		}
		for _, l := range def.Locales {
			entry.Locales = append(entry.Locales, Locale{Lang: l.Lang, Name: l.Name, Description: l.Description})
		}
		if len(def.Locales) > 0 {
			entry.Name = def.Locales[0].Name
			entry.Description = def.Locales[0].Description
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// postsLink links the single post defining label, or a search for it when
// zero or several cached posts map to it.
func (e *Exporter) postsLink(label string, postIDs []string) string {
	if len(postIDs) == 1 {
		return fmt.Sprintf("https://bsky.app/profile/%s/post/%s", e.cfg.ProfileDID, postIDs[0])
	}
	q := fmt.Sprintf(`from:%s "species:" "%s"`, e.cfg.SearchHandle, strings.ReplaceAll(label, "-", " "))
	return "https://bsky.app/search?q=" + url.QueryEscape(q)
}

// WriteLabels writes the label dump.
func (e *Exporter) WriteLabels(ctx context.Context) error {
	entries, err := e.Build(ctx)
	if err != nil {
		return err
	}
	if err := e.writeJSON(e.cfg.FileName, entries); err != nil {
		return err
	}
	e.log.InfoContext(ctx, "label dump written",
		slog.String("path", filepath.Join(e.cfg.Dir, e.cfg.FileName)),
		slog.Int("labels", len(entries)),
	)
	return nil
}

// WriteStatus records a successful login. Failures are only logged.
func (e *Exporter) WriteStatus(ctx context.Context) {
	if err := e.writeJSON(statusFileName, status{Status: "OK"}); err != nil {
		e.log.WarnContext(ctx, "status file not written", slog.String("error", err.Error()))
	}
}

// Run writes the label dump every Interval until ctx is cancelled. A rate
// limited dump delays the next one until the limit resets.
func (e *Exporter) Run(ctx context.Context) error {
	wait := e.cfg.Interval
	for {
		timer := e.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.Chan():
		}

		wait = e.cfg.Interval
		err := e.WriteLabels(ctx)
		if err == nil {
			continue
		}

		var rl *domain.RateLimitError
		if errors.As(err, &rl) {
			wait = e.backoff(rl)
			e.log.WarnContext(ctx, "label dump rate limited",
				slog.Duration("retry_in", wait),
				slog.String("error", err.Error()),
			)
			continue
		}
		e.log.WarnContext(ctx, "label dump failed", slog.String("error", err.Error()))
	}
}

// backoff waits for the rate limit reset, or two intervals when the server
// gave none. Never shorter than one interval.
func (e *Exporter) backoff(rl *domain.RateLimitError) time.Duration {
	reset, ok := rl.ResetAt()
	if !ok {
		return 2 * e.cfg.Interval
	}
	return max(reset.Sub(e.clock.Now()), e.cfg.Interval)
}

// writeJSON replaces name in the export dir atomically.
func (e *Exporter) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", name, err)
	}

	if err := os.MkdirAll(e.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("export: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(e.cfg.Dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("export: chmod %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(e.cfg.Dir, name)); err != nil {
		return fmt.Errorf("export: rename %s: %w", name, err)
	}
	return nil
}
