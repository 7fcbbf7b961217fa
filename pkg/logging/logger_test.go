package logging

import "testing"

func TestNewKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN", " Error "} {
		if logger := New(level); logger == nil {
			t.Fatalf("expected logger for level %q", level)
		}
	}
}

func TestNewUnknownLevelFallsBack(t *testing.T) {
	logger := New("verbose")
	if logger == nil {
		t.Fatal("expected logger for unknown level")
	}
	logger.Info("fallback logger works")
}

func TestWithReturnsWrappedLogger(t *testing.T) {
	logger := Default().With("component", "test")
	if logger == nil || logger.Logger == nil {
		t.Fatal("expected wrapped logger")
	}
}
