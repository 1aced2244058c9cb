package app

import (
	"context"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	postgres "github.com/heartmarshall/likelabeler/internal/adapter/postgres"
	"github.com/heartmarshall/likelabeler/internal/adapter/postgres/association"
	"github.com/heartmarshall/likelabeler/internal/adapter/postgres/postlabel"
	"github.com/heartmarshall/likelabeler/internal/adapter/xrpc"
	"github.com/heartmarshall/likelabeler/internal/config"
	"github.com/heartmarshall/likelabeler/internal/domain"
	"github.com/heartmarshall/likelabeler/internal/export"
)

type accountAssociation struct {
	LikePath  string `json:"like_path"`
	PostURI   string `json:"post_uri"`
	Label     string `json:"label"`
	CreatedAt string `json:"created_at"`
}

// RunExport writes the label dump once. With a non-empty account it instead
// prints the associations recorded for that account to out.
func RunExport(ctx context.Context, cfg *config.Config, account string, out io.Writer) error {
	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer pool.Close()

	if account != "" {
		rows, err := association.New(pool).ListByAccount(ctx, account)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return writeAssociations(out, rows)
	}

	client := xrpc.NewClient(cfg.Bluesky, cfg.Labeler.DID, nil, logger)
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	exporter := export.New(logger, export.ConfigFrom(cfg), client, postlabel.New(pool), nil)
	exporter.WriteStatus(ctx)
	return exporter.WriteLabels(ctx)
}

func writeAssociations(out io.Writer, rows []domain.Association) error {
	list := make([]accountAssociation, 0, len(rows))
	for _, a := range rows {
		list = append(list, accountAssociation{
			LikePath:  a.LikePath,
			PostURI:   a.PostURI,
			Label:     a.Label,
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
