// Package supervisor keeps the stream pipeline running: it restarts a run
// that stopped and waits out rate limits before doing so.
package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/likelabeler/internal/config"
	"github.com/heartmarshall/likelabeler/internal/domain"
)

type runner interface {
	Run(ctx context.Context) error
}

// Config holds the resumption timings.
type Config struct {
	StartupDelay   time.Duration
	Cooldown       time.Duration
	Margin         time.Duration
	StatusInterval time.Duration
}

// ConfigFrom builds a supervisor Config from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		StartupDelay:   cfg.Stream.StartupDelay,
		Cooldown:       cfg.Resume.Cooldown,
		Margin:         cfg.Resume.Margin,
		StatusInterval: cfg.Resume.StatusInterval,
	}
}

// Supervisor restarts runs indefinitely until its context is cancelled.
type Supervisor struct {
	cfg    Config
	runner runner
	clock  clockwork.Clock
	log    *slog.Logger
}

// New creates a Supervisor. A nil clock uses the real clock.
func New(log *slog.Logger, cfg Config, r runner, clock clockwork.Clock) *Supervisor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Supervisor{
		cfg:    cfg,
		runner: r,
		clock:  clock,
		log:    log.With("service", "supervisor"),
	}
}

// Run waits the startup delay and then runs the pipeline, resuming it after
// every stop. It returns nil once ctx is cancelled.
func (s *Supervisor) Run(ctx context.Context) error {
	s.log.InfoContext(ctx, "waiting before first run", slog.Duration("delay", s.cfg.StartupDelay))
	if !s.standby(ctx, s.clock.Now().Add(s.cfg.StartupDelay)) {
		return nil
	}

	for attempt := 1; ; attempt++ {
		s.log.InfoContext(ctx, "starting run", slog.Int("attempt", attempt))
		err := s.runner.Run(ctx)
		if ctx.Err() != nil {
			s.log.InfoContext(ctx, "supervisor stopped")
			return nil
		}

		kind := domain.ClassifyFailure(err)
		resumeAt := s.resumeAt(err, kind, s.clock.Now())

		attrs := []any{
			slog.String("failure", kind.String()),
			slog.Time("resume_at", resumeAt),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		s.log.WarnContext(ctx, "run stopped, moving to standby", attrs...)

		if !s.standby(ctx, resumeAt) {
			s.log.InfoContext(ctx, "supervisor stopped")
			return nil
		}
		s.log.InfoContext(ctx, "standby over, resuming")
	}
}

// resumeAt is the earliest instant the next run may start. It is never
// earlier than now plus the margin.
func (s *Supervisor) resumeAt(err error, kind domain.FailureKind, now time.Time) time.Time {
	earliest := now.Add(s.cfg.Margin)

	switch kind {
	case domain.FailureRateLimited:
		var rl *domain.RateLimitError
		if errors.As(err, &rl) {
			if reset, ok := rl.ResetAt(); ok {
				at := reset.Add(s.cfg.Margin)
				if at.Before(earliest) {
					return earliest
				}
				return at
			}
		}
	case domain.FailureFatal, domain.FailureTransient, domain.FailureNone:
	}
	return now.Add(s.cfg.Cooldown)
}

// standby blocks until the clock reaches until, logging a status line every
// StatusInterval. It reports false if ctx was cancelled first.
func (s *Supervisor) standby(ctx context.Context, until time.Time) bool {
	timer := s.clock.NewTimer(until.Sub(s.clock.Now()))
	defer timer.Stop()

	status := s.clock.NewTicker(s.cfg.StatusInterval)
	defer status.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer.Chan():
			return true
		case now := <-status.Chan():
			s.log.InfoContext(ctx, "standing by",
				slog.Time("resume_at", until),
				slog.Duration("remaining", until.Sub(now).Round(time.Second)),
			)
		}
	}
}
