package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/iconkit/internal/cmd/iconmcp"
	"github.com/louisbranch/iconkit/internal/platform/config"
)

// main serves the icon registry as MCP tools on stdio.
func main() {
	cfg, err := iconmcp.ParseConfig(flag.CommandLine, os.Args[1:], config.Environ())
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ICONMCP] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := iconmcp.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
