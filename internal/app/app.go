package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/likelabeler/internal/adapter/jetstream"
	postgres "github.com/heartmarshall/likelabeler/internal/adapter/postgres"
	"github.com/heartmarshall/likelabeler/internal/adapter/postgres/association"
	"github.com/heartmarshall/likelabeler/internal/adapter/postgres/checkpoint"
	"github.com/heartmarshall/likelabeler/internal/adapter/postgres/postlabel"
	"github.com/heartmarshall/likelabeler/internal/adapter/xrpc"
	"github.com/heartmarshall/likelabeler/internal/config"
	"github.com/heartmarshall/likelabeler/internal/export"
	"github.com/heartmarshall/likelabeler/internal/labeling"
	"github.com/heartmarshall/likelabeler/internal/processor"
	"github.com/heartmarshall/likelabeler/internal/supervisor"
)

// Run is the labeler entry point. It connects to the database, applies
// migrations, wires the pipeline and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting labeler",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("labeler_did", cfg.Labeler.DID),
		slog.String("target_did", cfg.Labeler.TargetDID),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	remap, err := labeling.LoadRemap(cfg.Labeler.RemapPath)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	clock := clockwork.NewRealClock()
	client := xrpc.NewClient(cfg.Bluesky, cfg.Labeler.DID, clock, logger)
	postLabels := postlabel.New(pool)

	deps := processor.Deps{
		Session:     client,
		Checkpoints: checkpoint.New(pool),
		Stream:      jetstream.NewSubscriber(cfg.Stream, logger),
		Resolver:    labeling.NewResolver(logger, postLabels, client, remap),
		Catalog:     labeling.NewCatalog(logger, client),
		Ledger:      association.New(pool),
		Applier:     labeling.NewApplier(logger, client),
		Tx:          postgres.NewTxManager(pool),
		Clock:       clock,
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Export.Enabled {
		exporter := export.New(logger, export.ConfigFrom(cfg), client, postLabels, clock)
		deps.AfterLogin = exporter.WriteStatus
		g.Go(func() error { return exporter.Run(ctx) })
	}

	proc := processor.New(logger, processor.ConfigFrom(cfg), deps)
	sup := supervisor.New(logger, supervisor.ConfigFrom(cfg), proc, clock)
	g.Go(func() error { return sup.Run(ctx) })

	err = g.Wait()
	logger.Info("labeler stopped")
	return err
}
