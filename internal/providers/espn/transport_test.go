package espn

import (
	"net/http"
	"testing"
	"time"
)

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 10, 6, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"5", 5 * time.Second},
		{"-3", 0},
		{"soon", 0},
		{now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
	}
	for _, tc := range cases {
		if got := parseRetryAfter(tc.raw, now); got != tc.want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	if resolveUserAgent("  ") != defaultUserAgent {
		t.Fatalf("expected default user agent")
	}
	if _, ok := resolveHTTPClient(nil).(*http.Client); !ok {
		t.Fatalf("expected default http client")
	}
}
