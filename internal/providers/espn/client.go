package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
	"github.com/preston-bernstein/team-scores-service/internal/providers"
)

// Config controls how the client reaches the scoreboard API.
type Config struct {
	UserAgent string
	// Timeout bounds a single fetch. Zero leaves only the HTTP client timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches league scoreboards from the public ESPN site API.
type Client struct {
	httpClient httpDoer
	userAgent  string
	timeout    time.Duration
	now        func() time.Time
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		timeout:    cfg.Timeout,
		now:        time.Now,
	}
}

// FetchScoreboard issues one GET for the league and decodes the scoreboard.
// Any non-2xx status or transport failure is returned as *providers.FetchError.
func (c *Client) FetchScoreboard(ctx context.Context, league teams.LeagueEndpoint) (scoreboard.Document, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.buildRequest(ctx, league)
	if err != nil {
		return scoreboard.Document{}, &providers.FetchError{League: league.Key, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scoreboard.Document{}, &providers.FetchError{League: league.Key, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return scoreboard.Document{}, &providers.FetchError{
			League:     league.Key,
			StatusCode: resp.StatusCode,
			Err: &providers.RateLimitError{
				League:     league.Key,
				StatusCode: resp.StatusCode,
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			},
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return scoreboard.Document{}, &providers.FetchError{
			League:     league.Key,
			StatusCode: resp.StatusCode,
			Err:        bodyError(resp.Body),
		}
	}

	var doc scoreboard.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return scoreboard.Document{}, &providers.FetchError{League: league.Key, Err: fmt.Errorf("decode scoreboard: %w", err)}
	}
	return doc, nil
}

func (c *Client) buildRequest(ctx context.Context, league teams.LeagueEndpoint) (*http.Request, error) {
	if strings.TrimSpace(league.URL) == "" {
		return nil, errors.New("league endpoint has no url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, league.URL, nil)
	if err != nil {
		return nil, err
	}
	setNoCacheHeaders(req)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func bodyError(body io.Reader) error {
	snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if msg := strings.TrimSpace(string(snippet)); msg != "" {
		return errors.New(msg)
	}
	return nil
}
