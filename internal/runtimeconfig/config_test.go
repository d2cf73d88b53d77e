package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/simonmumina/codingeasypeasy-sub006/internal/runtimeconfig"
	urlkit "github.com/goliatone/go-urlkit"
)

func TestConfigValidateDefaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidateMDXRequiresFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.MDX.Enabled = true
	cfg.Features.MDX = false

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrMDXFeatureRequired) {
		t.Fatalf("expected ErrMDXFeatureRequired, got %v", err)
	}
}

func TestConfigValidateMDXRequiresContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.MDX.Enabled = true
	cfg.Features.MDX = true
	cfg.MDX.ContentDir = "   "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrMDXContentDirRequired) {
		t.Fatalf("expected ErrMDXContentDirRequired, got %v", err)
	}
}

func TestConfigValidateStorageDriver(t *testing.T) {
	cases := []struct {
		name    string
		driver  string
		dsn     string
		wantErr error
	}{
		{name: "memory needs no dsn", driver: "memory"},
		{name: "empty defaults to memory", driver: ""},
		{name: "sqlite requires dsn", driver: "sqlite", wantErr: runtimeconfig.ErrStorageDSNRequired},
		{name: "postgres requires dsn", driver: "postgres", wantErr: runtimeconfig.ErrStorageDSNRequired},
		{name: "sqlite with dsn", driver: "sqlite", dsn: "file:corpus.db"},
		{name: "unknown driver rejected", driver: "mongodb", dsn: "mongodb://localhost", wantErr: runtimeconfig.ErrStorageDriverUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			cfg.Storage.Driver = tc.driver
			cfg.Storage.DSN = tc.dsn

			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() returned unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConfigValidateIndexRouteGroupRequired(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Index.RouteConfig = &urlkit.Config{}
	cfg.Index.URLKit.Group = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrIndexRouteGroupRequired) {
		t.Fatalf("expected ErrIndexRouteGroupRequired, got %v", err)
	}
}

func TestConfigValidateLogging(t *testing.T) {
	cases := []struct {
		name     string
		provider string
		level    string
		format   string
		wantErr  error
	}{
		{name: "provider required", provider: "", wantErr: runtimeconfig.ErrLoggingProviderRequired},
		{name: "unknown provider", provider: "zap", wantErr: runtimeconfig.ErrLoggingProviderUnknown},
		{name: "noop provider", provider: "noop"},
		{name: "gologger json format", provider: "gologger", format: "json"},
		{name: "invalid level", provider: "gologger", level: "verbose", wantErr: runtimeconfig.ErrLoggingLevelInvalid},
		{name: "invalid format", provider: "gologger", format: "xml", wantErr: runtimeconfig.ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			cfg.Features.Logger = true
			cfg.Logging.Provider = tc.provider
			cfg.Logging.Level = tc.level
			cfg.Logging.Format = tc.format

			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() returned unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigShape(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if !cfg.Enabled {
		t.Fatal("expected module enabled by default")
	}
	if cfg.MDX.Pattern != "*.mdx" {
		t.Fatalf("expected default pattern *.mdx, got %q", cfg.MDX.Pattern)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("expected memory storage default, got %q", cfg.Storage.Driver)
	}
	if cfg.Index.URLKit.Group != "site" {
		t.Fatalf("expected site route group default, got %q", cfg.Index.URLKit.Group)
	}
}
