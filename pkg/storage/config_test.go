package storage_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/attest/pkg/storage"
)

func TestFinalizeDefaults(t *testing.T) {
	var cfg storage.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.ContainerName != "land-documents" {
		t.Errorf("container_name: got %s, want land-documents", cfg.ContainerName)
	}
	if cfg.ConnectionString != "" {
		t.Errorf("connection_string should default empty, got %s", cfg.ConnectionString)
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_CONTAINER", "deeds")
	t.Setenv("TEST_CONN", "override-connection")

	env := &storage.Env{
		ContainerName:    "TEST_CONTAINER",
		ConnectionString: "TEST_CONN",
	}

	var cfg storage.Config
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.ContainerName != "deeds" {
		t.Errorf("container_name: got %s, want deeds", cfg.ContainerName)
	}
	if cfg.ConnectionString != "override-connection" {
		t.Errorf("connection_string: got %s", cfg.ConnectionString)
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr string
	}{
		{"too short", storage.Config{ContainerName: "ab"}, "3-63 characters"},
		{"uppercase", storage.Config{ContainerName: "LandDocs"}, "lowercase alphanumeric"},
		{"underscore", storage.Config{ContainerName: "land_docs"}, "lowercase alphanumeric"},
		{"leading hyphen", storage.Config{ContainerName: "-docs"}, "misplaced hyphen"},
		{"double hyphen", storage.Config{ContainerName: "land--docs"}, "misplaced hyphen"},
		{"valid", storage.Config{ContainerName: "land-docs-2"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := storage.Config{
		ContainerName:    "land-documents",
		ConnectionString: "base-conn",
	}

	base.Merge(&storage.Config{ConnectionString: "overlay-conn"})

	if base.ContainerName != "land-documents" {
		t.Errorf("container_name should remain, got %s", base.ContainerName)
	}
	if base.ConnectionString != "overlay-conn" {
		t.Errorf("connection_string: got %s, want overlay-conn", base.ConnectionString)
	}
}
