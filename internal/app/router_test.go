package app

import (
	"testing"

	"expensedesk.io/approvalflow/internal/config"
)

func TestBuildCORSConfig_WildcardOnlyAllowsAllWithoutCredentials(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"*"}},
	}

	got := buildCORSConfig(cfg)
	if !got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want true", got.AllowAllOrigins)
	}
	if got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want false", got.AllowCredentials)
	}
}

func TestBuildCORSConfig_AllowlistKeepsCredentials(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"https://app.example.com", " "}},
	}

	got := buildCORSConfig(cfg)
	if got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want false", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://app.example.com" {
		t.Fatalf("AllowOrigins = %#v", got.AllowOrigins)
	}
	if !got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want true", got.AllowCredentials)
	}
}

func TestBuildCORSConfig_WildcardMixedWithAllowlistPrefersAllowlist(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"*", "https://app.example.com"}},
	}

	got := buildCORSConfig(cfg)
	if got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want false", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 1 {
		t.Fatalf("AllowOrigins = %#v, want one entry", got.AllowOrigins)
	}
}
