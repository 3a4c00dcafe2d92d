// Package metadatagen generates Go source for icon descriptor sets.
//
// Each icon in the input tree ships a "<name>.json" descriptor with optional
// tags and categories. The generator turns the whole tree into a descriptor
// set split across fixed-size chunk files plus one file that concatenates the
// chunks, and lists the icons found as "<name>.svg" files so the registry can
// resolve descriptors to handles.
package metadatagen

import (
	"errors"
	"flag"
	"fmt"
	"go/token"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	"github.com/louisbranch/iconkit/internal/platform/icons"
)

const (
	// DefaultChunkSize bounds the number of descriptors per generated file.
	DefaultChunkSize = 200
	defaultDebounce  = 500 * time.Millisecond
)

var (
	ErrInvalidConfig       = errors.New("invalid generator config")
	ErrMalformedDescriptor = errors.New("malformed icon descriptor")
	ErrNameCollision       = errors.New("icon name collision")
	ErrStale               = errors.New("generated metadata is stale")
)

// Config holds configuration for the metadata generator command.
type Config struct {
	InputDir     string        `env:"ICONKIT_ICONS_DIR"           envDefault:"assets/lucide/icons"`
	OutputDir    string        `env:"ICONKIT_METADATA_OUT"        envDefault:"internal/platform/icons/lucide"`
	Package      string        `env:"ICONKIT_METADATA_PACKAGE"    envDefault:"lucide"`
	ChunkSize    int           `env:"ICONKIT_METADATA_CHUNK_SIZE" envDefault:"200"`
	SymbolPrefix string        `env:"ICONKIT_SYMBOL_PREFIX"       envDefault:"lucide-"`
	Debounce     time.Duration `env:"ICONKIT_WATCH_DEBOUNCE"      envDefault:"500ms"`
	Check        bool
	Watch        bool
}

// Options controls a single generation run.
type Options struct {
	InputDir     string
	OutputDir    string
	Package      string
	ChunkSize    int
	SymbolPrefix string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.InputDir, "in", cfg.InputDir, "directory containing icon descriptor (.json) and vector (.svg) files")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for generated Go files")
	fs.StringVar(&cfg.Package, "package", cfg.Package, "Go package name of the generated files")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "maximum descriptors per generated chunk file")
	fs.StringVar(&cfg.SymbolPrefix, "symbol-prefix", cfg.SymbolPrefix, "prefix for sprite symbol IDs")
	fs.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before regenerating in watch mode")
	fs.BoolVar(&cfg.Check, "check", false, "verify generated files are up to date without writing")
	fs.BoolVar(&cfg.Watch, "watch", false, "regenerate whenever the input directory changes")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Check && cfg.Watch {
		return Config{}, fmt.Errorf("%w: -check and -watch are mutually exclusive", ErrInvalidConfig)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if err := cfg.Options().validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options returns the generation options described by cfg.
func (c Config) Options() Options {
	return Options{
		InputDir:     c.InputDir,
		OutputDir:    c.OutputDir,
		Package:      c.Package,
		ChunkSize:    c.ChunkSize,
		SymbolPrefix: c.SymbolPrefix,
	}
}

func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.SymbolPrefix == "" {
		o.SymbolPrefix = icons.DefaultSymbolPrefix
	}
	return o
}

func (o Options) validate() error {
	if strings.TrimSpace(o.InputDir) == "" {
		return fmt.Errorf("%w: input dir is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		return fmt.Errorf("%w: output dir is required", ErrInvalidConfig)
	}
	if !token.IsIdentifier(o.Package) || token.IsKeyword(o.Package) {
		return fmt.Errorf("%w: package %q is not a valid Go package name", ErrInvalidConfig, o.Package)
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, o.ChunkSize)
	}
	return nil
}
