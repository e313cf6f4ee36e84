package config

import "github.com/preston-bernstein/team-scores-service/internal/domain/teams"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	FetchTimeout Duration
	Provider     string
	ESPN         ESPNConfig
	CORS         CORSConfig
	Redis        RedisConfig
	Metrics      MetricsConfig
	Log          LogConfig
	Leagues      []teams.LeagueEndpoint
	Teams        []teams.FollowedTeam
}

// ESPNConfig controls how we talk to the public scoreboard API.
type ESPNConfig struct {
	BaseURL   string
	UserAgent string
}

// CORSConfig lists browser origins allowed to read cards.
type CORSConfig struct {
	AllowedOrigins []string
}

// RedisConfig enables card publishing when Addr is set.
type RedisConfig struct {
	Addr    string
	Channel string
}

// Enabled reports whether a Redis publisher should be wired.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	espn := ESPNConfig{
		BaseURL:   envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		UserAgent: envOrDefault(envUserAgent, defaultUserAgent),
	}
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		FetchTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		Provider:     envOrDefault(envProvider, defaultProvider),
		ESPN:         espn,
		CORS: CORSConfig{
			AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		},
		Redis: RedisConfig{
			Addr:    envOrDefault(envRedisAddr, ""),
			Channel: envOrDefault(envRedisChannel, defaultRedisChannel),
		},
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Leagues: DefaultLeagues(espn.BaseURL),
		Teams:   DefaultTeams(),
	}
}
