package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/iconkit/internal/platform/icons"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Search fields accepted by icon_search.
const (
	FieldAny      = "any"
	FieldName     = "name"
	FieldTag      = "tag"
	FieldCategory = "category"
)

// DefaultSearchLimit caps icon_search results when no limit is configured.
const DefaultSearchLimit = 50

var tracer = otel.Tracer("github.com/louisbranch/iconkit/internal/services/iconmcp/domain")

// Registry is the read-only view of icons.Registry used by the handlers.
type Registry interface {
	ByName(query string) []icons.Descriptor
	ByTag(query string) []icons.Descriptor
	ByCategory(query string) []icons.Descriptor
	Search(query string) []icons.Descriptor
	DescriptorByName(name string) (icons.Descriptor, bool)
	Icon(name string) (icons.Icon, bool)
	Fallback() icons.Icon
}

// DescriptorResult is one icon descriptor in tool output.
type DescriptorResult struct {
	Name       string   `json:"name" jsonschema:"icon name"`
	Tags       []string `json:"tags" jsonschema:"free-form tags"`
	Categories []string `json:"categories" jsonschema:"categories the icon belongs to"`
}

// IconHandleResult is the icon drawn for a descriptor.
type IconHandleResult struct {
	Name     string `json:"name" jsonschema:"name of the drawn icon"`
	Symbol   string `json:"symbol" jsonschema:"sprite symbol id"`
	Fallback bool   `json:"fallback" jsonschema:"whether the fallback icon was substituted"`
}

// IconMatch pairs a descriptor with the icon it resolves to.
type IconMatch struct {
	Descriptor DescriptorResult `json:"descriptor" jsonschema:"matching descriptor"`
	Icon       IconHandleResult `json:"icon" jsonschema:"resolved icon"`
}

// IconSearchInput represents the MCP tool input for icon search.
type IconSearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive substring to look for"`
	Field string `json:"field,omitempty" jsonschema:"field to match: any, name, tag or category (default any)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum matches to return"`
}

// IconSearchResult represents the MCP tool output for icon search.
type IconSearchResult struct {
	Matches   []IconMatch `json:"matches" jsonschema:"matches in descriptor set order"`
	Total     int         `json:"total" jsonschema:"number of matches before the limit"`
	Truncated bool        `json:"truncated" jsonschema:"whether matches were cut at the limit"`
}

// IconGetInput represents the MCP tool input for exact icon lookup.
type IconGetInput struct {
	Name string `json:"name" jsonschema:"exact, case-sensitive icon name"`
}

// IconGetResult represents the MCP tool output for exact icon lookup.
type IconGetResult struct {
	Found      bool              `json:"found" jsonschema:"whether a descriptor has this name"`
	Descriptor *DescriptorResult `json:"descriptor,omitempty" jsonschema:"descriptor, when found"`
	Icon       IconHandleResult  `json:"icon" jsonschema:"icon to draw for the name"`
}

// IconSearchTool defines the MCP tool schema for icon search.
func IconSearchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_search",
		Description: "Finds icons whose name, tags or categories contain a substring",
	}
}

// IconGetTool defines the MCP tool schema for exact icon lookup.
func IconGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_get",
		Description: "Looks up one icon by exact name",
	}
}

// IconSearchHandler executes an icon search. A non-positive limit uses
// defaultLimit.
func IconSearchHandler(registry Registry, defaultLimit int) mcp.ToolHandlerFor[IconSearchInput, IconSearchResult] {
	if defaultLimit <= 0 {
		defaultLimit = DefaultSearchLimit
	}
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconSearchInput) (*mcp.CallToolResult, IconSearchResult, error) {
		field := strings.ToLower(strings.TrimSpace(input.Field))
		if field == "" {
			field = FieldAny
		}
		_, span := tracer.Start(ctx, "iconmcp.icon_search", trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		span.SetAttributes(attribute.String("icons.field", field))

		var descriptors []icons.Descriptor
		switch field {
		case FieldAny:
			descriptors = registry.Search(input.Query)
		case FieldName:
			descriptors = registry.ByName(input.Query)
		case FieldTag:
			descriptors = registry.ByTag(input.Query)
		case FieldCategory:
			descriptors = registry.ByCategory(input.Query)
		default:
			return nil, IconSearchResult{}, fmt.Errorf("field %q is not supported; use any, name, tag or category", input.Field)
		}

		limit := input.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		result := IconSearchResult{
			Matches: make([]IconMatch, 0, min(limit, len(descriptors))),
			Total:   len(descriptors),
		}
		if len(descriptors) > limit {
			descriptors = descriptors[:limit]
			result.Truncated = true
		}
		for _, descriptor := range descriptors {
			result.Matches = append(result.Matches, IconMatch{
				Descriptor: descriptorResult(descriptor),
				Icon:       resolveIcon(registry, descriptor.Name),
			})
		}
		span.SetAttributes(attribute.Int("icons.matches", result.Total))
		return &mcp.CallToolResult{}, result, nil
	}
}

// IconGetHandler executes an exact icon lookup. Unknown names report the
// fallback icon.
func IconGetHandler(registry Registry) mcp.ToolHandlerFor[IconGetInput, IconGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconGetInput) (*mcp.CallToolResult, IconGetResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, IconGetResult{}, fmt.Errorf("name is required")
		}
		_, span := tracer.Start(ctx, "iconmcp.icon_get", trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		result := IconGetResult{Icon: resolveIcon(registry, input.Name)}
		if descriptor, ok := registry.DescriptorByName(input.Name); ok {
			converted := descriptorResult(descriptor)
			result.Found = true
			result.Descriptor = &converted
		}
		span.SetAttributes(attribute.Bool("icons.found", result.Found))
		return &mcp.CallToolResult{}, result, nil
	}
}

func resolveIcon(registry Registry, name string) IconHandleResult {
	if icon, ok := registry.Icon(name); ok {
		return IconHandleResult{Name: icon.Name, Symbol: icon.Symbol}
	}
	fallback := registry.Fallback()
	return IconHandleResult{Name: fallback.Name, Symbol: fallback.Symbol, Fallback: true}
}

// descriptorResult copies a descriptor so the output never aliases registry
// data and empty lists encode as [].
func descriptorResult(descriptor icons.Descriptor) DescriptorResult {
	return DescriptorResult{
		Name:       descriptor.Name,
		Tags:       append([]string{}, descriptor.Tags...),
		Categories: append([]string{}, descriptor.Categories...),
	}
}
