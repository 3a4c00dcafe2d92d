package metadatagen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Check renders opts in memory and compares the result with the files in the
// output directory. It returns an error wrapping ErrStale that lists every
// missing, leftover or differing file.
func Check(ctx context.Context, opts Options) error {
	want, _, err := Render(ctx, opts)
	if err != nil {
		return err
	}
	existing, err := listGenerated(opts.OutputDir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(want)+len(existing))
	for name := range want {
		names = append(names, name)
	}
	for _, name := range existing {
		if _, ok := want[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var problems []string
	for _, name := range names {
		expected, generated := want[name]
		current, err := os.ReadFile(filepath.Join(opts.OutputDir, name))
		switch {
		case err != nil && os.IsNotExist(err):
			problems = append(problems, fmt.Sprintf("missing %s", name))
		case err != nil:
			return fmt.Errorf("read %s: %w", name, err)
		case !generated:
			problems = append(problems, fmt.Sprintf("leftover %s is no longer generated", name))
		case !bytes.Equal(current, expected):
			problems = append(problems, fmt.Sprintf("%s differs:\n%s", name, patchText(string(current), string(expected))))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w; run go generate:\n%s", ErrStale, strings.Join(problems, "\n"))
	}
	return nil
}

// patchText renders the edits that turn current into expected.
func patchText(current, expected string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(current, expected, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.PatchToText(dmp.PatchMake(current, diffs))
}
