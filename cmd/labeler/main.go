// Command labeler follows the like stream and keeps account labels in sync
// with the curated posts each account likes. It runs until SIGINT/SIGTERM.
//
// Usage:
//
//	labeler [--config=config.yaml]
//
// Without --config the CONFIG_PATH environment variable, then ./config.yaml,
// then environment variables alone are used.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/heartmarshall/likelabeler/internal/app"
	"github.com/heartmarshall/likelabeler/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadPath(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("labeler: %v", err)
	}
}
