// Package processor consumes the like stream and keeps account labels in
// step with the likes each account currently holds.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/likelabeler/internal/config"
	"github.com/heartmarshall/likelabeler/internal/domain"
	"github.com/heartmarshall/likelabeler/pkg/ctxutil"
)

type sessionManager interface {
	Login(ctx context.Context) error
}

type checkpointStore interface {
	LoadLatest(ctx context.Context) (domain.Checkpoint, error)
	Save(ctx context.Context, cp domain.Checkpoint) error
}

type streamSubscriber interface {
	Subscribe(ctx context.Context, cursor string) (<-chan domain.StreamEvent, error)
}

type labelResolver interface {
	Resolve(ctx context.Context, postURI string) (domain.PostLabel, error)
}

type labelCatalog interface {
	EnsureLabelExists(ctx context.Context, slug, displayName string, isMeta bool) (bool, error)
	Reset()
}

type associationLedger interface {
	LockAccount(ctx context.Context, account string) error
	RecordActive(ctx context.Context, a domain.Association) (bool, error)
	RemoveByLikePath(ctx context.Context, account, likePath string) ([]string, error)
	HasOtherActiveWithLabel(ctx context.Context, account, label string) (bool, error)
}

type labelApplier interface {
	Grant(ctx context.Context, account, label string) error
	Revoke(ctx context.Context, account, label string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// flushTimeout bounds the final checkpoint write of a run.
const flushTimeout = 10 * time.Second

var errStreamClosed = errors.New("stream closed unexpectedly")

// Config holds processor settings.
type Config struct {
	TargetDID             string
	CheckpointInterval    time.Duration
	MaxCheckpointFailures int
}

// ConfigFrom builds a processor Config from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		TargetDID:             cfg.Labeler.TargetDID,
		CheckpointInterval:    cfg.Stream.CheckpointInterval,
		MaxCheckpointFailures: cfg.Stream.MaxCheckpointFailures,
	}
}

// Deps are the collaborators of a Processor.
type Deps struct {
	Session     sessionManager
	Checkpoints checkpointStore
	Stream      streamSubscriber
	Resolver    labelResolver
	Catalog     labelCatalog
	Ledger      associationLedger
	Applier     labelApplier
	Tx          txManager
	Clock       clockwork.Clock
	// AfterLogin, when set, runs once per run right after a successful login.
	AfterLogin func(ctx context.Context)
}

// Processor runs the stream pipeline. One Processor serves consecutive runs;
// runs must not overlap.
type Processor struct {
	cfg  Config
	deps Deps
	log  *slog.Logger
}

// New creates a Processor. A nil Clock uses the real clock.
func New(log *slog.Logger, cfg Config, deps Deps) *Processor {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &Processor{
		cfg:  cfg,
		deps: deps,
		log:  log.With("service", "processor"),
	}
}

// checkpointState tracks the cursor of a run. Only the run loop touches it.
type checkpointState struct {
	latest   string
	saved    string
	failures int
}

// Run logs in, resumes the stream from the latest checkpoint and processes
// commits until the stream fails, an operation hits a rate limit, checkpoint
// storage degrades, or ctx is cancelled. Every outcome except cancellation
// is returned as an error for domain.ClassifyFailure.
func (p *Processor) Run(ctx context.Context) error {
	ctx = ctxutil.WithRunID(ctx, uuid.New())

	if err := p.deps.Session.Login(ctx); err != nil {
		return fmt.Errorf("processor: login: %w", err)
	}
	if p.deps.AfterLogin != nil {
		p.deps.AfterLogin(ctx)
	}

	cursor, err := p.loadCursor(ctx)
	if err != nil {
		return err
	}
	p.deps.Catalog.Reset()

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	events, err := p.deps.Stream.Subscribe(runCtx, cursor)
	if err != nil {
		return fmt.Errorf("processor: subscribe: %w", err)
	}

	p.log.InfoContext(ctx, "run started", slog.String("cursor", cursor))

	// Ops finish what they started even after the run is cancelled.
	opCtx := context.WithoutCancel(runCtx)
	var g errgroup.Group

	ticker := p.deps.Clock.NewTicker(p.cfg.CheckpointInterval)
	defer ticker.Stop()

	state := checkpointState{latest: cursor, saved: cursor}
	var streamErr error

loop:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				break loop
			}
			switch ev.Kind {
			case domain.StreamEventOpen:
				p.log.DebugContext(ctx, "stream open")
			case domain.StreamEventCommit:
				p.dispatch(opCtx, runCtx, &g, *ev.Commit, cancel)
				state.latest = ev.Commit.Cursor()
			case domain.StreamEventError:
				streamErr = ev.Err
				break loop
			}
		case <-ticker.Chan():
			if p.saveCheckpoint(ctx, &state) {
				cancel(fmt.Errorf("%w: %d consecutive checkpoint failures", domain.ErrStorageDegraded, state.failures))
			}
		case <-runCtx.Done():
			break loop
		}
	}

	cause := context.Cause(runCtx)
	cancel(nil)
	for range events {
	}
	_ = g.Wait()

	flushCtx, flushCancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	p.saveCheckpoint(flushCtx, &state)
	flushCancel()

	p.log.InfoContext(ctx, "run stopped", slog.String("cursor", state.saved))

	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case cause != nil:
		return cause
	case streamErr != nil:
		return streamErr
	default:
		return &domain.StreamError{Cursor: state.latest, Err: errStreamClosed}
	}
}

func (p *Processor) loadCursor(ctx context.Context) (string, error) {
	cp, err := p.deps.Checkpoints.LoadLatest(ctx)
	switch {
	case err == nil:
		return cp.Cursor, nil
	case errors.Is(err, domain.ErrNotFound):
		p.log.InfoContext(ctx, "no checkpoint, tailing live")
		return "", nil
	default:
		return "", fmt.Errorf("processor: load checkpoint: %w", err)
	}
}

// saveCheckpoint persists the latest cursor if it moved. It reports whether
// the consecutive failure limit was reached.
func (p *Processor) saveCheckpoint(ctx context.Context, st *checkpointState) bool {
	if st.latest == "" || st.latest == st.saved {
		return false
	}

	cp := domain.Checkpoint{Cursor: st.latest, ObservedAt: p.deps.Clock.Now()}
	if err := p.deps.Checkpoints.Save(ctx, cp); err != nil {
		st.failures++
		p.log.ErrorContext(ctx, "checkpoint save failed",
			slog.String("cursor", cp.Cursor),
			slog.Int("consecutive_failures", st.failures),
			slog.String("error", err.Error()),
		)
		return p.cfg.MaxCheckpointFailures > 0 && st.failures >= p.cfg.MaxCheckpointFailures
	}

	st.saved = cp.Cursor
	st.failures = 0
	p.log.DebugContext(ctx, "checkpoint saved", slog.String("cursor", cp.Cursor))
	return false
}

// dispatch starts one task per relevant op of the commit.
func (p *Processor) dispatch(opCtx, runCtx context.Context, g *errgroup.Group, c domain.StreamCommit, abort context.CancelCauseFunc) {
	for _, op := range c.Ops {
		ev := domain.ClassifyLike(c, op, p.cfg.TargetDID)
		if ev.Kind == domain.LikeFiltered {
			continue
		}

		g.Go(func() error {
			if runCtx.Err() != nil {
				return nil
			}
			ctx := ctxutil.WithAccount(opCtx, ev.Account)
			err := p.handle(ctx, ev)
			p.report(ctx, ev, err, abort)
			return nil
		})
	}
}

func (p *Processor) handle(ctx context.Context, ev domain.LikeEvent) error {
	switch ev.Kind {
	case domain.LikeCreate:
		return p.handleCreate(ctx, ev)
	case domain.LikeRemove:
		return p.handleRemove(ctx, ev)
	default:
		return nil
	}
}

func (p *Processor) report(ctx context.Context, ev domain.LikeEvent, err error, abort context.CancelCauseFunc) {
	if err == nil {
		return
	}

	attrs := []any{
		slog.String("kind", ev.Kind.String()),
		slog.String("like_path", ev.LikePath),
		slog.String("error", err.Error()),
	}

	switch {
	case errors.Is(err, domain.ErrNotALabelPost):
		p.log.DebugContext(ctx, "like of a non-label post skipped", attrs...)
	case errors.Is(err, domain.ErrUnknownAccount):
		p.log.WarnContext(ctx, "like op abandoned", attrs...)
	case domain.ClassifyFailure(err) == domain.FailureRateLimited:
		p.log.WarnContext(ctx, "rate limited, stopping run", attrs...)
		var rl *domain.RateLimitError
		errors.As(err, &rl)
		abort(rl)
	default:
		p.log.ErrorContext(ctx, "like op failed", attrs...)
	}
}

func (p *Processor) handleCreate(ctx context.Context, ev domain.LikeEvent) error {
	pl, err := p.deps.Resolver.Resolve(ctx, ev.PostURI)
	if err != nil {
		return err
	}

	if _, err := p.deps.Catalog.EnsureLabelExists(ctx, pl.Label, pl.DisplayName, pl.IsMeta); err != nil {
		return err
	}

	inserted, err := p.deps.Ledger.RecordActive(ctx, domain.Association{
		Account:   ev.Account,
		LikePath:  ev.LikePath,
		PostURI:   ev.PostURI,
		Label:     pl.Label,
		CreatedAt: ev.At,
	})
	if err != nil {
		return fmt.Errorf("record association: %w", err)
	}
	if !inserted {
		p.log.DebugContext(ctx, "association already recorded", slog.String("like_path", ev.LikePath))
	}

	// Granting again on replay is harmless and repairs a grant lost to a
	// failure after the row was written.
	return p.deps.Applier.Grant(ctx, ev.Account, pl.Label)
}

func (p *Processor) handleRemove(ctx context.Context, ev domain.LikeEvent) error {
	var revoke []string

	// Removals for one account are serialized so the label check sees the
	// deletes of concurrent removals.
	err := p.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.deps.Ledger.LockAccount(ctx, ev.Account); err != nil {
			return fmt.Errorf("lock account: %w", err)
		}
		removed, err := p.deps.Ledger.RemoveByLikePath(ctx, ev.Account, ev.LikePath)
		if err != nil {
			return fmt.Errorf("remove association: %w", err)
		}
		for _, label := range removed {
			held, err := p.deps.Ledger.HasOtherActiveWithLabel(ctx, ev.Account, label)
			if err != nil {
				return fmt.Errorf("check label %s: %w", label, err)
			}
			if !held {
				revoke = append(revoke, label)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	var errs []error
	for _, label := range revoke {
		if err := p.deps.Applier.Revoke(ctx, ev.Account, label); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
