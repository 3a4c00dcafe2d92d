package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/iconkit/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("ICONKIT_OTEL_ENDPOINT", "")
	t.Setenv("ICONKIT_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "icon-metadata-gen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("ICONKIT_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("ICONKIT_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "icon-metadata-gen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	t.Setenv("ICONKIT_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("ICONKIT_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "icon-metadata-gen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Shutdown should flush cleanly even though the endpoint is unreachable.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_ShutdownFlushesCleanly(t *testing.T) {
	t.Setenv("ICONKIT_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("ICONKIT_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "flush-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("ICONKIT_OTEL_ENDPOINT", "")
	t.Setenv("ICONKIT_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetup_RejectsSampleRatioOutOfRange(t *testing.T) {
	t.Setenv("ICONKIT_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("ICONKIT_OTEL_ENABLED", "")
	t.Setenv("ICONKIT_OTEL_SAMPLE_RATIO", "1.5")

	shutdown, err := otel.Setup(context.Background(), "icon-mcp")
	if err == nil {
		t.Fatal("expected sample ratio error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSettingsActive(t *testing.T) {
	tests := []struct {
		settings otel.Settings
		want     bool
	}{
		{otel.Settings{}, false},
		{otel.Settings{Endpoint: "http://localhost:4318"}, true},
		{otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, false},
		{otel.Settings{Endpoint: "http://localhost:4318", Enabled: "true"}, true},
		{otel.Settings{Enabled: "true"}, false},
	}
	for _, tt := range tests {
		if got := tt.settings.Active(); got != tt.want {
			t.Errorf("Active(%+v) = %v, want %v", tt.settings, got, tt.want)
		}
	}
}
