package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("failed to load the config: %s", err)
	}
	if cfg.ResultsDir != "results" {
		t.Errorf("expected the default results directory, got %s", cfg.ResultsDir)
	}
	if cfg.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("expected the default redis address, got %s", cfg.RedisAddr)
	}
	if cfg.PlayDelay != 200*time.Millisecond {
		t.Errorf("expected the default play delay, got %s", cfg.PlayDelay)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GRIDWALK_RESULTS", "out")
	t.Setenv("GRIDWALK_PLAY_DELAY", "50ms")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("failed to load the config: %s", err)
	}
	if cfg.ResultsDir != "out" {
		t.Errorf("expected the results directory override, got %s", cfg.ResultsDir)
	}
	if cfg.PlayDelay != 50*time.Millisecond {
		t.Errorf("expected the play delay override, got %s", cfg.PlayDelay)
	}
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("GRIDWALK_PLAY_DELAY", "soon")
	if _, err := FromEnv(); err == nil {
		t.Errorf("expected an invalid duration to be rejected")
	}
}
