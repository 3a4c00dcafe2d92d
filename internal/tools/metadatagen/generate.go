package metadatagen

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/louisbranch/iconkit/internal/platform/icons"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	descriptorExt = ".json"
	vectorExt     = ".svg"
	// generatedSuffix marks every file owned by the generator; all of them
	// are removed before a new set is written.
	generatedSuffix = ".gen.go"
)

var tracer = otel.Tracer("github.com/louisbranch/iconkit/internal/tools/metadatagen")

// Result summarizes one generation run.
type Result struct {
	Descriptors int
	Chunks      int
	Icons       int
	Files       []string
}

type descriptorJSON struct {
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// sourceFile is one input file keyed by its slash-separated path relative to
// the input directory.
type sourceFile struct {
	rel  string
	path string
}

// Generate regenerates all artifacts for opts.
//
// Everything is rendered in memory first, so a bad descriptor aborts the run
// before any existing output is touched. Once rendering succeeds, every
// previously generated file in the output directory is removed and the new
// set is written.
func Generate(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "metadatagen.Generate", trace.WithAttributes(
		attribute.String("icons.input_dir", opts.InputDir),
		attribute.String("icons.output_dir", opts.OutputDir),
	))
	defer span.End()

	files, result, err := Render(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	if err := writeArtifacts(opts.OutputDir, files); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(
		attribute.Int("icons.descriptors", result.Descriptors),
		attribute.Int("icons.chunks", result.Chunks),
		attribute.Int("icons.vectors", result.Icons),
	)
	return result, nil
}

// Render builds every artifact in memory, keyed by file name.
func Render(ctx context.Context, opts Options) (map[string][]byte, Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Result{}, err
	}

	descriptorFiles, vectorFiles, err := discover(opts.InputDir)
	if err != nil {
		return nil, Result{}, err
	}
	descriptors, err := readDescriptors(descriptorFiles)
	if err != nil {
		return nil, Result{}, err
	}
	handles := iconHandles(vectorFiles, opts.SymbolPrefix)

	chunks := Partition(descriptors, opts.ChunkSize)
	files, err := renderArtifacts(opts.Package, chunks, handles)
	if err != nil {
		return nil, Result{}, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	return files, Result{
		Descriptors: len(descriptors),
		Chunks:      len(chunks),
		Icons:       len(handles),
		Files:       names,
	}, nil
}

// Partition splits descriptors into consecutive chunks of at most size
// entries, preserving order.
func Partition(descriptors []icons.Descriptor, size int) [][]icons.Descriptor {
	if size <= 0 || len(descriptors) == 0 {
		return nil
	}
	chunks := make([][]icons.Descriptor, 0, (len(descriptors)+size-1)/size)
	for start := 0; start < len(descriptors); start += size {
		end := min(start+size, len(descriptors))
		chunks = append(chunks, descriptors[start:end])
	}
	return chunks
}

// discover walks root and returns descriptor and vector files, each sorted by
// relative path so output does not depend on directory iteration order.
func discover(root string) ([]sourceFile, []sourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: input dir %s: %w", ErrInvalidConfig, root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: input dir %s is not a directory", ErrInvalidConfig, root)
	}

	var descriptorFiles, vectorFiles []sourceFile
	err = filepath.WalkDir(root, func(current string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, current)
		if err != nil {
			return err
		}
		file := sourceFile{rel: filepath.ToSlash(rel), path: current}
		switch filepath.Ext(current) {
		case descriptorExt:
			descriptorFiles = append(descriptorFiles, file)
		case vectorExt:
			vectorFiles = append(vectorFiles, file)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk %s: %w", root, err)
	}

	byRel := func(a, b sourceFile) int { return strings.Compare(a.rel, b.rel) }
	slices.SortFunc(descriptorFiles, byRel)
	slices.SortFunc(vectorFiles, byRel)
	return descriptorFiles, vectorFiles, nil
}

func readDescriptors(files []sourceFile) ([]icons.Descriptor, error) {
	descriptors := make([]icons.Descriptor, 0, len(files))
	owners := make(map[string]string, len(files))
	for _, file := range files {
		descriptor, err := readDescriptor(file)
		if err != nil {
			return nil, err
		}
		if owner, exists := owners[descriptor.Name]; exists {
			return nil, fmt.Errorf("%w: %s and %s both normalize to %q", ErrNameCollision, owner, file.rel, descriptor.Name)
		}
		owners[descriptor.Name] = file.rel
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}

func readDescriptor(file sourceFile) (icons.Descriptor, error) {
	data, err := os.ReadFile(file.path)
	if err != nil {
		return icons.Descriptor{}, fmt.Errorf("read descriptor %s: %w", file.path, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return icons.Descriptor{}, fmt.Errorf("%w %s: %w", ErrMalformedDescriptor, file.path, err)
	}
	if fields == nil {
		return icons.Descriptor{}, fmt.Errorf("%w %s: document is not a JSON object", ErrMalformedDescriptor, file.path)
	}
	var payload descriptorJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return icons.Descriptor{}, fmt.Errorf("%w %s: %w", ErrMalformedDescriptor, file.path, err)
	}
	name := icons.NormalizeName(baseName(file.rel))
	if name == "" {
		return icons.Descriptor{}, fmt.Errorf("%w %s: file name yields an empty icon name", ErrMalformedDescriptor, file.path)
	}
	return icons.Descriptor{
		Name:       name,
		Tags:       payload.Tags,
		Categories: payload.Categories,
	}, nil
}

func iconHandles(files []sourceFile, symbolPrefix string) []icons.Icon {
	handles := make([]icons.Icon, 0, len(files))
	for _, file := range files {
		base := baseName(file.rel)
		handles = append(handles, icons.Icon{
			Name:   icons.NormalizeName(base),
			Symbol: icons.SymbolID(symbolPrefix, base),
		})
	}
	return handles
}

func baseName(rel string) string {
	name := path.Base(rel)
	return strings.TrimSuffix(name, path.Ext(name))
}

func writeArtifacts(dir string, files map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := removeGenerated(dir); err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func removeGenerated(dir string) error {
	existing, err := listGenerated(dir)
	if err != nil {
		return err
	}
	for _, name := range existing {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove stale %s: %w", name, err)
		}
	}
	return nil
}

// listGenerated returns the generator-owned files in dir. A missing dir has
// none.
func listGenerated(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list output dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), generatedSuffix) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
