package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envFetchTimeout = "FETCH_TIMEOUT"
	envProvider     = "PROVIDER"
	envESPNBaseURL  = "ESPN_BASE_URL"
	envUserAgent    = "USER_AGENT"
	envCORSOrigins  = "CORS_ORIGINS"
	envRedisAddr    = "REDIS_ADDR"
	envRedisChannel = "REDIS_CHANNEL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	defaultPort = "4000"
	// Scoreboards change on the order of a minute; polling faster gains nothing.
	defaultPollInterval = 60 * Duration(time.Second)
	defaultFetchTimeout = 10 * Duration(time.Second)
	defaultProvider     = "espn"
	defaultESPNBaseURL  = "https://site.api.espn.com/apis/site/v2/sports"
	defaultUserAgent    = "team-scores-service/1.0"
	defaultRedisChannel = "team-scores:cards"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "team-scores-service"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
)
