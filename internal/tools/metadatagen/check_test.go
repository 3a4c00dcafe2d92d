package metadatagen

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCheckPassesAfterGenerate(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "home.json", `{"tags": ["nav"]}`)
	writeFile(t, in, "home.svg", `<svg/>`)
	opts := testOptions(in, out)

	if _, err := Generate(context.Background(), opts); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := Check(context.Background(), opts); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckReportsStaleOutput(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "home.json", `{"tags": ["nav"]}`)
	opts := testOptions(in, out)
	if _, err := Generate(context.Background(), opts); err != nil {
		t.Fatalf("generate: %v", err)
	}

	writeFile(t, in, "home.json", `{"tags": ["navigation"]}`)
	writeFile(t, out, "descriptor_chunk_7.gen.go", "package lucide\n")

	err := Check(context.Background(), opts)
	if !errors.Is(err, ErrStale) {
		t.Fatalf("error = %v, want ErrStale", err)
	}
	for _, want := range []string{
		"descriptor_chunk_0.gen.go differs",
		"leftover descriptor_chunk_7.gen.go",
		"igation",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestCheckReportsMissingOutput(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "home.json", `{}`)

	err := Check(context.Background(), testOptions(in, t.TempDir()))
	if !errors.Is(err, ErrStale) {
		t.Fatalf("error = %v, want ErrStale", err)
	}
	if !strings.Contains(err.Error(), "missing descriptors.gen.go") {
		t.Fatalf("error missing the absent file:\n%v", err)
	}
}

func TestCheckPropagatesRenderErrors(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "bad.json", `nope`)

	if err := Check(context.Background(), testOptions(in, t.TempDir())); !errors.Is(err, ErrMalformedDescriptor) {
		t.Fatalf("error = %v, want ErrMalformedDescriptor", err)
	}
}
