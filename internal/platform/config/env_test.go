package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Limit    int           `env:"ICONKIT_TEST_LIMIT" envDefault:"50"`
	Debounce time.Duration `env:"ICONKIT_TEST_DEBOUNCE" envDefault:"500ms"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 50 {
		t.Fatalf("expected default limit 50, got %d", cfg.Limit)
	}
	if cfg.Debounce != 500*time.Millisecond {
		t.Fatalf("expected default debounce 500ms, got %v", cfg.Debounce)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ICONKIT_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromIgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("ICONKIT_TEST_LIMIT", "7")
	var cfg envTestConfig

	if err := ParseEnvFrom(&cfg, map[string]string{"ICONKIT_TEST_DEBOUNCE": "2s"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 50 {
		t.Fatalf("expected default limit 50, got %d", cfg.Limit)
	}
	if cfg.Debounce != 2*time.Second {
		t.Fatalf("expected debounce 2s, got %v", cfg.Debounce)
	}
}

func TestParseEnvFromNilEnvironment(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 50 {
		t.Fatalf("expected default limit 50, got %d", cfg.Limit)
	}
}

func TestParseEnvFromError(t *testing.T) {
	var cfg envTestConfig

	err := ParseEnvFrom(&cfg, map[string]string{"ICONKIT_TEST_DEBOUNCE": "soon"})
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestEnvironIncludesProcessEnvironment(t *testing.T) {
	t.Setenv("ICONKIT_TEST_LIMIT", "9")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, Environ()); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 9 {
		t.Fatalf("expected limit 9, got %d", cfg.Limit)
	}
}
