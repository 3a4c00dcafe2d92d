package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/iconkit/internal/services/iconmcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName = "iconkit"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config controls tool behavior.
type Config struct {
	// SearchLimit caps icon_search results when the caller sends no limit.
	SearchLimit int
}

// NewServer returns an MCP server exposing icon_search and icon_get over
// registry.
func NewServer(registry domain.Registry, cfg Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, domain.IconSearchTool(), domain.IconSearchHandler(registry, cfg.SearchLimit))
	mcp.AddTool(server, domain.IconGetTool(), domain.IconGetHandler(registry))
	return server
}

// Run serves registry over transport until ctx is cancelled or the client
// disconnects. A nil transport means stdio.
func Run(ctx context.Context, registry domain.Registry, cfg Config, transport mcp.Transport) error {
	if registry == nil {
		return fmt.Errorf("icon registry is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if transport == nil {
		transport = &mcp.StdioTransport{}
	}
	err := NewServer(registry, cfg).Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
