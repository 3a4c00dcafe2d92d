package metadatagen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/louisbranch/iconkit/internal/platform/icons"
	"golang.org/x/tools/imports"
)

const (
	iconsImportPath     = "github.com/louisbranch/iconkit/internal/platform/icons"
	descriptorsFileName = "descriptors" + generatedSuffix
	iconsFileName       = "icons" + generatedSuffix
)

var funcs = template.FuncMap{
	"descriptor": descriptorLiteral,
	"icon":       iconLiteral,
	"chunkVar":   chunkVar,
}

var chunkTemplate = template.Must(template.New("chunk").Funcs(funcs).Parse(`// Code generated by icon-metadata-gen. DO NOT EDIT.

package {{.Package}}

import "{{.ImportPath}}"

var {{chunkVar .Index}} = []icons.Descriptor{
{{- range .Descriptors}}
	{{descriptor .}},
{{- end}}
}
`))

var descriptorsTemplate = template.Must(template.New("descriptors").Funcs(funcs).Parse(`// Code generated by icon-metadata-gen. DO NOT EDIT.

package {{.Package}}

{{if .Chunks -}}
import "slices"

// allDescriptors concatenates every chunk in chunk order.
var allDescriptors = slices.Concat(
{{- range .Chunks}}
	{{chunkVar .}},
{{- end}}
)
{{- else -}}
import "{{.ImportPath}}"

var allDescriptors []icons.Descriptor
{{- end}}
`))

var iconsTemplate = template.Must(template.New("icons").Funcs(funcs).Parse(`// Code generated by icon-metadata-gen. DO NOT EDIT.

package {{.Package}}

import "{{.ImportPath}}"

{{if .Icons -}}
var iconHandles = []icons.Icon{
{{- range .Icons}}
	{{icon .}},
{{- end}}
}
{{- else -}}
var iconHandles []icons.Icon
{{- end}}
`))

// renderArtifacts returns the formatted source of every generated file.
func renderArtifacts(pkg string, chunks [][]icons.Descriptor, handles []icons.Icon) (map[string][]byte, error) {
	files := make(map[string][]byte, len(chunks)+2)

	chunkIndexes := make([]int, len(chunks))
	for i, chunk := range chunks {
		chunkIndexes[i] = i
		src, err := execute(chunkTemplate, map[string]any{
			"Package":     pkg,
			"ImportPath":  iconsImportPath,
			"Index":       i,
			"Descriptors": chunk,
		})
		if err != nil {
			return nil, err
		}
		name := chunkFileName(i)
		if files[name], err = format(name, src); err != nil {
			return nil, err
		}
	}

	src, err := execute(descriptorsTemplate, map[string]any{
		"Package":    pkg,
		"ImportPath": iconsImportPath,
		"Chunks":     chunkIndexes,
	})
	if err != nil {
		return nil, err
	}
	if files[descriptorsFileName], err = format(descriptorsFileName, src); err != nil {
		return nil, err
	}

	src, err = execute(iconsTemplate, map[string]any{
		"Package":    pkg,
		"ImportPath": iconsImportPath,
		"Icons":      handles,
	})
	if err != nil {
		return nil, err
	}
	if files[iconsFileName], err = format(iconsFileName, src); err != nil {
		return nil, err
	}
	return files, nil
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func format(name string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(name, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return formatted, nil
}

func chunkFileName(index int) string {
	return "descriptor_chunk_" + strconv.Itoa(index) + generatedSuffix
}

func chunkVar(index int) string {
	return "descriptorChunk" + strconv.Itoa(index)
}

func descriptorLiteral(descriptor icons.Descriptor) string {
	var builder strings.Builder
	builder.WriteString("{Name: ")
	builder.WriteString(strconv.Quote(descriptor.Name))
	if len(descriptor.Tags) > 0 {
		builder.WriteString(", Tags: ")
		builder.WriteString(stringSliceLiteral(descriptor.Tags))
	}
	if len(descriptor.Categories) > 0 {
		builder.WriteString(", Categories: ")
		builder.WriteString(stringSliceLiteral(descriptor.Categories))
	}
	builder.WriteString("}")
	return builder.String()
}

func iconLiteral(icon icons.Icon) string {
	return "{Name: " + strconv.Quote(icon.Name) + ", Symbol: " + strconv.Quote(icon.Symbol) + "}"
}

func stringSliceLiteral(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = strconv.Quote(value)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
