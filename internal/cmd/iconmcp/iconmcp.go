// Package iconmcp parses icon MCP command flags and serves the Lucide
// registry over stdio.
package iconmcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	"github.com/louisbranch/iconkit/internal/platform/config"
	"github.com/louisbranch/iconkit/internal/platform/icons/lucide"
	"github.com/louisbranch/iconkit/internal/services/iconmcp/service"
)

// Config holds icon MCP command configuration.
type Config struct {
	SearchLimit int `env:"ICONKIT_MCP_SEARCH_LIMIT" envDefault:"50"`
}

// ParseConfig parses environ and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.SearchLimit, "search-limit", cfg.SearchLimit, "default maximum matches returned by icon_search")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SearchLimit <= 0 {
		return Config{}, fmt.Errorf("search limit must be positive, got %d", cfg.SearchLimit)
	}
	return cfg, nil
}

// Run serves the icon registry over stdio with telemetry configured.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconMCP, func(ctx context.Context) error {
		return service.Run(ctx, lucide.NewRegistry(), service.Config{SearchLimit: cfg.SearchLimit}, nil)
	})
}
