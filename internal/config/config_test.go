package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func missingPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(missingPath(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	want := []string{"http://localhost:3000", "http://localhost:5173"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
  request_timeout: 10s
cors:
  allowed_origins:
    - https://grades.example.edu
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Fatalf("expected request timeout 10s, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected default shutdown timeout to survive, got %v", cfg.Server.ShutdownTimeout)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://grades.example.edu"}) {
		t.Fatalf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("TELEMETRY_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "gpa-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Fatalf("expected addr :7070, got %q", cfg.Server.Addr)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Fatalf("expected shutdown timeout 2s, got %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.ServiceName != "gpa-test" {
		t.Fatalf("unexpected telemetry config %+v", cfg.Telemetry)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		yaml    string
		wantErr string
	}{
		{name: "bad duration", env: map[string]string{"REQUEST_TIMEOUT": "soon"}, wantErr: "REQUEST_TIMEOUT"},
		{name: "bad bool", env: map[string]string{"TELEMETRY_ENABLED": "maybe"}, wantErr: "TELEMETRY_ENABLED"},
		{name: "bad max age", env: map[string]string{"CORS_MAX_AGE": "ten"}, wantErr: "CORS_MAX_AGE"},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "loud"}, wantErr: "unknown log level"},
		{name: "empty addr", env: map[string]string{"HTTP_ADDR": ""}, wantErr: "server address is required"},
		{name: "negative timeout", yaml: "server:\n  shutdown_timeout: -1s\n", wantErr: "shutdown timeout must be positive"},
		{name: "malformed yaml", yaml: "server: [\n", wantErr: "parse config file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			path := missingPath(t)
			if tc.yaml != "" {
				if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
					t.Fatalf("writing config: %v", err)
				}
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	if got := Path(); got != DefaultPath {
		t.Fatalf("expected %q, got %q", DefaultPath, got)
	}

	t.Setenv("CONFIG_FILE", "/etc/cgpa/config.yaml")
	if got := Path(); got != "/etc/cgpa/config.yaml" {
		t.Fatalf("expected CONFIG_FILE value, got %q", got)
	}
}
