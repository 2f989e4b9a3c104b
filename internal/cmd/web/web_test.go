package web

import (
	"flag"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/reclaim.space/internal/platform/timeouts"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BackendBaseURL != "http://localhost:1337" {
		t.Errorf("BackendBaseURL = %q", cfg.BackendBaseURL)
	}
	if cfg.BackendTimeout != timeouts.Backend {
		t.Errorf("BackendTimeout = %v, want %v", cfg.BackendTimeout, timeouts.Backend)
	}
	if !reflect.DeepEqual(cfg.ProtectedPrefixes, []string{"/dashboard/"}) {
		t.Errorf("ProtectedPrefixes = %v", cfg.ProtectedPrefixes)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("RECLAIM_SPACE_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("RECLAIM_SPACE_PROTECTED_PREFIXES", "/dashboard/,/account/")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !reflect.DeepEqual(cfg.ProtectedPrefixes, []string{"/dashboard/", "/account/"}) {
		t.Errorf("ProtectedPrefixes = %v", cfg.ProtectedPrefixes)
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("RECLAIM_SPACE_BACKEND_BASE_URL", "http://env.example")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-backend-base-url", "http://flag.example",
		"-backend-timeout", "5s",
		"-protected-prefixes", "/dashboard/, /private/",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.BackendBaseURL != "http://flag.example" {
		t.Errorf("BackendBaseURL = %q", cfg.BackendBaseURL)
	}
	if cfg.BackendTimeout != 5*time.Second {
		t.Errorf("BackendTimeout = %v", cfg.BackendTimeout)
	}
	if !reflect.DeepEqual(cfg.ProtectedPrefixes, []string{"/dashboard/", "/private/"}) {
		t.Errorf("ProtectedPrefixes = %v", cfg.ProtectedPrefixes)
	}
}

func TestParseConfigBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-backend-timeout", "nope"}); err == nil {
		t.Fatal("ParseConfig() error = nil, want flag parse error")
	}
}
