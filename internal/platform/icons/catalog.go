package icons

import (
	"strconv"
	"strings"
)

// CatalogMarkdown renders a descriptor set as a markdown table.
func CatalogMarkdown(descriptors []Descriptor) string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./internal/platform/icons/lucide`.\n\n")
	builder.WriteString(strconv.Itoa(len(descriptors)))
	builder.WriteString(" icons.\n\n")
	builder.WriteString("| Name | Tags | Categories |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, descriptor := range descriptors {
		builder.WriteString("| ")
		builder.WriteString(descriptor.Name)
		builder.WriteString(" | ")
		builder.WriteString(markdownList(descriptor.Tags))
		builder.WriteString(" | ")
		builder.WriteString(markdownList(descriptor.Categories))
		builder.WriteString(" |\n")
	}
	return builder.String()
}

func markdownList(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	escaped := make([]string, len(values))
	for i, value := range values {
		escaped[i] = strings.ReplaceAll(value, "|", `\|`)
	}
	return strings.Join(escaped, ", ")
}
