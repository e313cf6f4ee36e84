package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()

	rec.RecordFetch("mlb", 10*time.Millisecond, nil)
	rec.RecordFetch("mlb", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("mlb")
	if snap.Fetches != 2 {
		t.Fatalf("expected 2 fetches, got %d", snap.Fetches)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastFetchLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastFetchLatency)
	}
	if other := rec.Snapshot("nfl"); other.Fetches != 0 {
		t.Fatalf("expected leagues to be tracked separately, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRateLimit("nfl", 5*time.Second)
	rec.RecordRateLimit("nfl", 0)

	snap := rec.Snapshot("nfl")
	if snap.RateLimitHits != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", snap.LastRetryAfter)
	}
}

func TestRecorderTracksCardRenders(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCardRender("error")
	rec.RecordCardRender("error")
	rec.RecordCardRender("summary")

	if got := rec.CardRenders("error"); got != 2 {
		t.Fatalf("expected 2 error renders, got %d", got)
	}
	if got := rec.CardRenders("idle"); got != 0 {
		t.Fatalf("expected 0 idle renders, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("mlb", time.Millisecond, nil)
	rec.RecordRateLimit("mlb", time.Second)
	rec.RecordCardRender("idle")
	rec.RecordHTTPRequest("GET", "/cards", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	if rec.CardRenders("idle") != 0 || rec.Snapshot("mlb").Fetches != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
