// Command export-labels writes the diagnostic label dump once, or prints the
// likes recorded for one account.
//
// Usage:
//
//	export-labels [--config=config.yaml]
//	export-labels --account=did:plc:xyz
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/heartmarshall/likelabeler/internal/app"
	"github.com/heartmarshall/likelabeler/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	account := flag.String("account", "", "print the recorded likes of this account DID instead")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadPath(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := app.RunExport(ctx, cfg, *account, os.Stdout); err != nil {
		log.Fatalf("export-labels: %v", err)
	}
}
