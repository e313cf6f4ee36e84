package espn

import "time"

const (
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "team-scores-service"
	maxErrorBody       = 512
)
