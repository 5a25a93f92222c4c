package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.League != defaultLeague {
		t.Fatalf("expected default league %s, got %s", defaultLeague, cfg.League)
	}
	if cfg.LeagueStat.APIKey != "" {
		t.Fatalf("expected empty leaguestat api key by default, got %s", cfg.LeagueStat.APIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "leaguestat")
	t.Setenv(envLeague, "ahl")
	t.Setenv(envLSBaseURL, "http://example.com/feed")
	t.Setenv(envLSAPIKey, "secret-key")
	t.Setenv(envLSClientCode, "ahl")
	t.Setenv(envNHLBaseURL, "http://example.com/v1")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "leaguestat" || cfg.League != "ahl" {
		t.Fatalf("expected leaguestat/ahl, got %s/%s", cfg.Provider, cfg.League)
	}
	if cfg.LeagueStat.BaseURL != "http://example.com/feed" {
		t.Fatalf("expected leaguestat base url override, got %s", cfg.LeagueStat.BaseURL)
	}
	if cfg.LeagueStat.APIKey != "secret-key" || cfg.LeagueStat.ClientCode != "ahl" {
		t.Fatalf("expected leaguestat credentials, got %+v", cfg.LeagueStat)
	}
	if cfg.NHL.BaseURL != "http://example.com/v1" {
		t.Fatalf("expected nhl base url override, got %s", cfg.NHL.BaseURL)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}

func TestLoadMetricsDefaults(t *testing.T) {
	cfg := Load()

	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected default metrics port, got %s", cfg.Metrics.Port)
	}
	if cfg.Metrics.ServiceName != "hockey-data-service" {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
}
