package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	"github.com/louisbranch/iconkit/internal/platform/config"
	"github.com/louisbranch/iconkit/internal/tools/metadatagen"
)

// main generates icon metadata source, once or continuously with -watch.
func main() {
	cfg, err := metadatagen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[ICONGEN] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconMetadataGen, func(ctx context.Context) error {
		return metadatagen.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
