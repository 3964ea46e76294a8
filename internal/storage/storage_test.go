package storage

import (
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("storage init err: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPrefixFallback(t *testing.T) {
	s := newTestStorage(t)

	if got := s.Prefix("g1", "m!"); got != "m!" {
		t.Errorf("expected fallback prefix, got %q", got)
	}

	if err := s.SetPrefix("g1", "!!"); err != nil {
		t.Fatalf("set prefix err: %v", err)
	}
	if got := s.Prefix("g1", "m!"); got != "!!" {
		t.Errorf("expected stored prefix !!, got %q", got)
	}
	// other guilds unaffected
	if got := s.Prefix("g2", "m!"); got != "m!" {
		t.Errorf("prefix leaked across guilds: %q", got)
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	if got := s.Volume("g1", 0.5); got != 0.5 {
		t.Errorf("expected fallback volume, got %v", got)
	}
	if err := s.SetVolume("g1", 0.8); err != nil {
		t.Fatalf("set volume err: %v", err)
	}
	if got := s.Volume("g1", 0.5); got != 0.8 {
		t.Errorf("expected 0.8, got %v", got)
	}
	// zero volume is a real value, not "unset"
	if err := s.SetVolume("g1", 0); err != nil {
		t.Fatalf("set volume err: %v", err)
	}
	if got := s.Volume("g1", 0.5); got != 0 {
		t.Errorf("expected stored 0, got %v", got)
	}
}

func TestLoopRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	if s.Loop("g1") {
		t.Error("loop should default to false")
	}
	if err := s.SetLoop("g1", true); err != nil {
		t.Fatalf("set loop err: %v", err)
	}
	if !s.Loop("g1") {
		t.Error("loop not persisted")
	}
}
