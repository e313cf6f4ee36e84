package config

import (
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout %s, got %s", defaultFetchTimeout, cfg.FetchTimeout)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.ESPN.BaseURL != defaultESPNBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultESPNBaseURL, cfg.ESPN.BaseURL)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("expected redis to be disabled by default")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin by default, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if len(cfg.Leagues) != 5 {
		t.Fatalf("expected 5 leagues, got %d", len(cfg.Leagues))
	}
	if len(cfg.Teams) != 5 {
		t.Fatalf("expected 5 followed teams, got %d", len(cfg.Teams))
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envFetchTimeout, "3s")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envESPNBaseURL, "http://scores.test/api/")
	t.Setenv(envCORSOrigins, "http://a.test, http://b.test,")
	t.Setenv(envRedisAddr, "localhost:6379")
	t.Setenv(envRedisChannel, "cards")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("expected fetch timeout 3s, got %s", cfg.FetchTimeout)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.Channel != "cards" {
		t.Fatalf("expected redis override, got %+v", cfg.Redis)
	}
	if got := cfg.CORS.AllowedOrigins; len(got) != 2 || got[1] != "http://b.test" {
		t.Fatalf("expected two trimmed origins, got %v", got)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
	for _, l := range cfg.Leagues {
		if !strings.HasPrefix(l.URL, "http://scores.test/api/") || strings.Contains(l.URL, "api//") {
			t.Fatalf("expected league %s to be rebased, got %s", l.Key, l.URL)
		}
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
	t.Setenv(envFetchTimeout, "0s")

	cfg := Load()

	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout on non-positive value, got %s", cfg.FetchTimeout)
	}
}

func TestDefaultLeaguesKeepCollegeGroupFilter(t *testing.T) {
	leagues := DefaultLeagues("")
	var cfb teams.LeagueEndpoint
	for _, l := range leagues {
		if l.Key == LeagueCFB {
			cfb = l
		}
	}
	want := defaultESPNBaseURL + "/football/college-football/scoreboard?groups=80"
	if cfb.URL != want {
		t.Fatalf("expected %s, got %s", want, cfb.URL)
	}
}

func TestDefaultTeamsReferenceKnownLeagues(t *testing.T) {
	known := map[string]bool{}
	for _, l := range DefaultLeagues(defaultESPNBaseURL) {
		known[l.Key] = true
	}
	views := map[string]bool{}
	for _, team := range DefaultTeams() {
		if !known[team.League] {
			t.Fatalf("team %s references unknown league %s", team.ViewKey, team.League)
		}
		if views[team.ViewKey] {
			t.Fatalf("duplicate view key %s", team.ViewKey)
		}
		views[team.ViewKey] = true
	}
}
