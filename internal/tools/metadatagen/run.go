package metadatagen

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Run executes the generator using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	opts := cfg.Options()

	if cfg.Check {
		if err := Check(ctx, opts); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "generated metadata in %s is up to date\n", opts.OutputDir)
		return err
	}

	result, err := Generate(ctx, opts)
	if err != nil {
		return err
	}
	if err := report(out, opts, result); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	log.Printf("watching %s for changes", opts.InputDir)
	return Watch(ctx, opts, cfg.Debounce, func(result Result, err error) {
		if err != nil {
			log.Printf("regenerate metadata: %v", err)
			return
		}
		if err := report(out, opts, result); err != nil {
			log.Printf("report: %v", err)
		}
	})
}

func report(out io.Writer, opts Options, result Result) error {
	_, err := fmt.Fprintf(out, "generated %d descriptor(s) in %d chunk(s) and %d icon(s) into %s\n",
		result.Descriptors, result.Chunks, result.Icons, opts.OutputDir)
	return err
}
