package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/attest/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080

[database]
host = "localhost"
port = 5432
name = "attest"
user = "attest"

[storage]
container_name = "deeds"

[cache]
enabled = true
addr = "redis:6379"

[api]
base_path = "/api"

[api.pagination]
default_page_size = 25
max_page_size = 50

[verification]
cache_ttl = "1m"
confidence_seed = 42

[logging]
level = "DEBUG"
format = "JSON"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"

[cache]
enabled = true
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func loadFrom(t *testing.T, files map[string]string) (*config.Config, error) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeConfig(t, dir, name, content)
	}
	t.Chdir(dir)
	return config.Load()
}

func TestLoad(t *testing.T) {
	cfg, err := loadFrom(t, map[string]string{"config.toml": baseConfig})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"server port", cfg.Server.Port, 8080},
		{"server addr", cfg.Server.Addr(), "0.0.0.0:8080"},
		{"db host", cfg.Database.Host, "localhost"},
		{"storage container", cfg.Storage.ContainerName, "deeds"},
		{"storage memory fallback", cfg.Storage.ConnectionString, ""},
		{"cache enabled", cfg.Cache.Enabled, true},
		{"cache addr", cfg.Cache.Addr, "redis:6379"},
		{"base path", cfg.API.BasePath, "/api"},
		{"default page size", cfg.API.Pagination.DefaultPageSize, 25},
		{"max page size", cfg.API.Pagination.MaxPageSize, 50},
		{"verification ttl", cfg.Verification.CacheTTLDuration(), time.Minute},
		{"confidence seed", cfg.Verification.ConfidenceSeed, uint64(42)},
		{"log level", cfg.Logging.SlogLevel(), slog.LevelDebug},
		{"log format", cfg.Logging.Format, "json"},
		{"lookup cap default", cfg.API.Pagination.MaxLookupResults, 50},
		{"shutdown timeout", cfg.ShutdownTimeoutDuration(), 30 * time.Second},
		{"env", cfg.Env(), "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestLoadWithOverlay(t *testing.T) {
	t.Setenv("ATTEST_ENV", "staging")

	cfg, err := loadFrom(t, map[string]string{
		"config.toml":         baseConfig,
		"config.staging.toml": overlayConfig,
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("db host: got %s, want prodhost (from overlay)", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("db port: got %d, want 5432 (from base)", cfg.Database.Port)
	}
	if cfg.Env() != "staging" {
		t.Errorf("env: got %s, want staging", cfg.Env())
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	t.Setenv("ATTEST_VERSION", "2.0.0")
	t.Setenv("ATTEST_SERVER_PORT", "3000")
	t.Setenv("ATTEST_DB_DSN", "postgres://attest@db/attest")
	t.Setenv("ATTEST_CACHE_TTL", "5s")
	t.Setenv("ATTEST_VERIFICATION_CACHE_TTL", "10s")
	t.Setenv("ATTEST_VERIFICATION_CONFIDENCE_SEED", "7")
	t.Setenv("ATTEST_PAGINATION_DEFAULT_PAGE_SIZE", "10")
	t.Setenv("ATTEST_API_MAX_UPLOAD_SIZE", "20MB")

	cfg, err := loadFrom(t, map[string]string{"config.toml": baseConfig})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"version", cfg.Version, "2.0.0"},
		{"server port", cfg.Server.Port, 3000},
		{"dsn", cfg.Database.Dsn(), "postgres://attest@db/attest"},
		{"cache ttl", cfg.Cache.TTLDuration(), 5 * time.Second},
		{"verification ttl", cfg.Verification.CacheTTLDuration(), 10 * time.Second},
		{"confidence seed", cfg.Verification.ConfidenceSeed, uint64(7)},
		{"default page size", cfg.API.Pagination.DefaultPageSize, 10},
		{"max upload size", cfg.API.MaxUploadSizeBytes(), int64(20 << 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	cfg, err := loadFrom(t, nil)
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "attest" {
		t.Errorf("db name default: got %s, want attest", cfg.Database.Name)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should default disabled")
	}
	if cfg.API.MaxUploadSizeBytes() != 10<<20 {
		t.Errorf("max upload default: got %d", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.API.OpenAPI.Title != "Attest API" {
		t.Errorf("openapi title: got %s", cfg.API.OpenAPI.Title)
	}
	if cfg.Verification.CacheTTLDuration() != 30*time.Second {
		t.Errorf("verification ttl default: got %v", cfg.Verification.CacheTTLDuration())
	}
}

func TestLoadDotEnv(t *testing.T) {
	// Register restoration, then leave the variable unset so .env can fill it.
	t.Setenv("ATTEST_VERSION", "")
	os.Unsetenv("ATTEST_VERSION")
	t.Setenv("ATTEST_SERVER_PORT", "4000")

	cfg, err := loadFrom(t, map[string]string{
		".env": "ATTEST_VERSION=9.9.9\nATTEST_SERVER_PORT=5000\n",
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "9.9.9" {
		t.Errorf("version from .env: got %s, want 9.9.9", cfg.Version)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("process env should win over .env: got %d, want 4000", cfg.Server.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{"malformed toml", `[server`, "parse config"},
		{"invalid port", "[server]\nport = 99999", "invalid port"},
		{"invalid read_timeout", "[server]\nread_timeout = \"bad\"", "invalid read_timeout"},
		{"invalid idle_timeout", "[server]\nidle_timeout = \"bad\"", "invalid idle_timeout"},
		{"nested base path", "[api]\nbase_path = \"/api/v1\"", "base_path"},
		{"bad upload size", "[api]\nmax_upload_size = \"lots\"", "max_upload_size"},
		{"zero verification ttl", "[verification]\ncache_ttl = \"0s\"", "cache_ttl must be positive"},
		{"log format", "[logging]\nformat = \"xml\"", "format must be text or json"},
		{"log level", "[logging]\nlevel = \"loud\"", "invalid level"},
		{"openapi server url", "[api.openapi]\nserver_url = \"example.com\"", "server_url"},
		{"pagination bounds", "[api.pagination]\ndefault_page_size = 500\nmax_page_size = 100", "default_page_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFrom(t, map[string]string{"config.toml": tt.config})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMaxUploadSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"megabytes", "50MB", 50 << 20},
		{"gigabytes", "1GB", 1 << 30},
		{"invalid falls back to 10MB", "bad", 10 << 20},
		{"empty falls back to 10MB", "", 10 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxUploadSize: tt.size}
			if got := cfg.MaxUploadSizeBytes(); got != tt.want {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}
