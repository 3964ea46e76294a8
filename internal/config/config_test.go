package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DiscordToken != "test-token" {
		t.Errorf("DiscordToken = %q", cfg.DiscordToken)
	}
	if cfg.DefaultPrefix != "m!" {
		t.Errorf("DefaultPrefix = %q", cfg.DefaultPrefix)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("MaxQueueSize = %d", cfg.MaxQueueSize)
	}
	if cfg.DefaultVolume != 0.5 {
		t.Errorf("DefaultVolume = %v", cfg.DefaultVolume)
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestLoadRejectsVolumeOutOfRange(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DEFAULT_VOLUME", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range volume")
	}
}
