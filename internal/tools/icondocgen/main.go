// Command icondocgen writes the markdown catalog of the Lucide descriptor set.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	"github.com/louisbranch/iconkit/internal/platform/config"
	"github.com/louisbranch/iconkit/internal/platform/icons"
	"github.com/louisbranch/iconkit/internal/platform/icons/lucide"
)

var errStaleCatalog = errors.New("icon catalog is stale")

func main() {
	err := entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceIconDocGen, func(context.Context) error {
		return run(os.Args[1:], os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var outPath string
	var rootFlag string
	var check bool
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", "docs/icon-catalog.md", "output path for the icon catalog")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.BoolVar(&check, "check", false, "verify the catalog is up to date without writing")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	output, err := resolveOutput(rootFlag, outPath)
	if err != nil {
		return err
	}

	descriptors := lucide.Descriptors()
	content := renderCatalog(descriptors)
	if check {
		current, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", errStaleCatalog, outPath, err)
		}
		if !bytes.Equal(current, []byte(content)) {
			return fmt.Errorf("%w: %s differs; run go generate ./internal/platform/icons/lucide", errStaleCatalog, outPath)
		}
		return nil
	}
	if err := writeOutput(output, content); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "wrote %d icons to %s\n", len(descriptors), outPath)
	return err
}

func renderCatalog(descriptors []icons.Descriptor) string {
	return fmt.Sprintf(`---
title: "Icon Catalog"
nav_order: 30
---

%s`, icons.CatalogMarkdown(descriptors))
}

// writeOutput replaces the catalog at output, creating parent directories.
func writeOutput(output, content string) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create catalog dir %s: %w", filepath.Dir(output), err)
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", output, err)
	}
	return nil
}

// resolveOutput anchors a relative outPath at the module root: rootFlag when
// set, otherwise the nearest directory above the working directory holding a
// go.mod. go generate runs in the package directory, so the walk is needed.
func resolveOutput(rootFlag, outPath string) (string, error) {
	if filepath.IsAbs(outPath) {
		return outPath, nil
	}
	root := filepath.Clean(rootFlag)
	if rootFlag == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working dir: %w", err)
		}
		if root, err = findModuleRoot(wd); err != nil {
			return "", err
		}
	}
	return filepath.Join(root, outPath), nil
}

func findModuleRoot(start string) (string, error) {
	for dir := start; ; {
		if info, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", start)
		}
		dir = parent
	}
}
