package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/louisbranch/iconkit/internal/platform/icons/lucide"
	"github.com/louisbranch/iconkit/internal/services/iconmcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func decodeStructuredContent[T any](t *testing.T, content any) T {
	t.Helper()
	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return out
}

// connect serves the lucide registry over in-memory transports and returns a
// client session plus a channel carrying Run's result.
func connect(t *testing.T, ctx context.Context, cfg Config) (*mcp.ClientSession, <-chan error) {
	t.Helper()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- Run(ctx, lucide.NewRegistry(), cfg, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	return session, serveErr
}

func TestServerListsTools(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session, _ := connect(t, ctx, Config{})
	defer session.Close()

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"icon_search", "icon_get"} {
		if !names[want] {
			t.Errorf("tool %q not registered", want)
		}
	}
}

func TestServerIconSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session, _ := connect(t, ctx, Config{SearchLimit: 1})
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "icon_search",
		Arguments: map[string]any{"query": "arrow", "field": "category"},
	})
	if err != nil {
		t.Fatalf("call icon_search: %v", err)
	}
	if result == nil || result.IsError {
		t.Fatalf("icon_search failed: %+v", result)
	}
	output := decodeStructuredContent[domain.IconSearchResult](t, result.StructuredContent)
	if output.Total != 2 || !output.Truncated || len(output.Matches) != 1 {
		t.Fatalf("unexpected output: %+v", output)
	}
	if output.Matches[0].Descriptor.Name != "ArrowUpCircle" {
		t.Fatalf("first match = %q, want ArrowUpCircle", output.Matches[0].Descriptor.Name)
	}
	if output.Matches[0].Icon.Symbol != "lucide-arrow-up-circle" {
		t.Fatalf("icon = %+v", output.Matches[0].Icon)
	}
}

func TestServerIconGetFallsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session, _ := connect(t, ctx, Config{})
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "icon_get",
		Arguments: map[string]any{"name": "Dragon"},
	})
	if err != nil {
		t.Fatalf("call icon_get: %v", err)
	}
	if result == nil || result.IsError {
		t.Fatalf("icon_get failed: %+v", result)
	}
	output := decodeStructuredContent[domain.IconGetResult](t, result.StructuredContent)
	if output.Found || output.Descriptor != nil {
		t.Fatalf("expected no descriptor, got %+v", output)
	}
	if !output.Icon.Fallback || output.Icon.Name != lucide.Fallback.Name {
		t.Fatalf("expected fallback icon, got %+v", output.Icon)
	}
}

func TestServerReportsToolErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session, _ := connect(t, ctx, Config{})
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "icon_search",
		Arguments: map[string]any{"query": "x", "field": "symbol"},
	})
	if err == nil && (result == nil || !result.IsError) {
		t.Fatalf("expected tool error, got %+v", result)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	session, serveErr := connect(t, ctx, Config{})
	defer session.Close()

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestRunRequiresRegistry(t *testing.T) {
	if err := Run(context.Background(), nil, Config{}, nil); err == nil {
		t.Fatal("expected error for missing registry")
	}
}
