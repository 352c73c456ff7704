package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"PORT", "DEFAULT_BIN_SIZE", "DEFAULT_NUM_BINS", "DEFAULT_ALGORITHM", "DEFAULT_OUTPUT_TYPE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.InitialSettings.NumBins <= 0 || cfg.InitialSettings.BinSize <= 0 {
		t.Fatalf("expected usable default settings, got %+v", cfg.InitialSettings)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_BIN_SIZE", "42.5")
	t.Setenv("DEFAULT_NUM_BINS", "7")
	t.Setenv("DEFAULT_ALGORITHM", "greedy")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.InitialSettings.BinSize != 42.5 {
		t.Fatalf("expected bin size 42.5, got %g", cfg.InitialSettings.BinSize)
	}
	if cfg.InitialSettings.NumBins != 7 {
		t.Fatalf("expected 7 bins, got %d", cfg.InitialSettings.NumBins)
	}
	if cfg.RateLimitRPS != 5 {
		t.Fatalf("expected rate limit 5 rps, got %g", cfg.RateLimitRPS)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	contents := `port: "9100"
defaults:
  bin_size: 18
  num_bins: 3
  algorithm: greedy
  output_type: sums
shutdown_grace_period: 3s
enable_request_logging: true
rate_limit:
  rps: 10
  burst: 20
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9100" {
		t.Fatalf("expected port 9100, got %s", cfg.Port)
	}
	if cfg.InitialSettings.BinSize != 18 || cfg.InitialSettings.NumBins != 3 {
		t.Fatalf("unexpected settings: %+v", cfg.InitialSettings)
	}
	if cfg.InitialSettings.OutputType != "sums" {
		t.Fatalf("expected sums output type, got %s", cfg.InitialSettings.OutputType)
	}
	if cfg.ShutdownGracePeriod != 3*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Fatalf("unexpected rate limit: %g/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadMissingYAMLFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadCLIOverridesWinOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_NUM_BINS", "7")

	port := "9200"
	numBins := 5
	cfg, err := Load(&CLIOverrides{Port: &port, NumBins: &numBins})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9200" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.InitialSettings.NumBins != 5 {
		t.Fatalf("expected CLI num bins to win, got %d", cfg.InitialSettings.NumBins)
	}
}
