package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: ":8080"
  read_header_timeout: "3s"
  shutdown_timeout: "15s"
  rate_limit:
    per_second: 5
    burst: 10
  trust_proxy: true

log:
  level: debug

seed:
  path: assets/seeds/default.yaml

document:
  copied_reset: "1500ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("unexpected listen addr: %s", cfg.Server.ListenAddr)
	}
	if cfg.Server.ReadHeaderTimeout != 3*time.Second {
		t.Errorf("expected ReadHeaderTimeout 3s, got %v", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected ShutdownTimeout 15s, got %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Server.RateLimit.Enabled() || cfg.Server.RateLimit.Burst != 10 {
		t.Errorf("unexpected rate limit: %+v", cfg.Server.RateLimit)
	}
	if !cfg.Server.TrustProxy {
		t.Errorf("expected TrustProxy to be enabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Seed.Path != "assets/seeds/default.yaml" {
		t.Errorf("unexpected seed path: %s", cfg.Seed.Path)
	}
	if cfg.Document.CopiedReset != 1500*time.Millisecond {
		t.Errorf("expected CopiedReset 1.5s, got %v", cfg.Document.CopiedReset)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: ":8080"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.ReadHeaderTimeout != defaultReadHeaderTimeout {
		t.Errorf("expected default ReadHeaderTimeout, got %v", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default ShutdownTimeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.RateLimit.Enabled() {
		t.Errorf("expected rate limit disabled by default")
	}
	if cfg.Server.TrustProxy {
		t.Errorf("expected proxy headers to be untrusted by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Document.CopiedReset != 2*time.Second {
		t.Errorf("expected default CopiedReset 2s, got %v", cfg.Document.CopiedReset)
	}
}

func TestLoad_MissingField(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "{}")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when required fields are missing")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"duration":  "server:\n  listen_addr: \":8080\"\n  shutdown_timeout: soon\n",
		"log level": "server:\n  listen_addr: \":8080\"\nlog:\n  level: verbose\n",
		"rate":      "server:\n  listen_addr: \":8080\"\n  rate_limit:\n    per_second: -1\n",
		"copied":    "server:\n  listen_addr: \":8080\"\ndocument:\n  copied_reset: 2x\n",
	}

	for name, content := range cases {
		path := writeConfig(t, content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRateLimit_DefaultBurst(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "server:\n  listen_addr: \":8080\"\n  rate_limit:\n    per_second: 2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.RateLimit.Burst != 1 {
		t.Fatalf("expected burst to default to 1, got %d", cfg.Server.RateLimit.Burst)
	}
}
