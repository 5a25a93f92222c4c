package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envLeague       = "LEAGUE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envNHLBaseURL  = "NHL_BASE_URL"
	envNHLAPIKey   = "NHL_API_KEY"
	envNHLTimezone = "NHL_TZ"

	envLSBaseURL    = "LEAGUESTAT_BASE_URL"
	envLSAPIKey     = "LEAGUESTAT_API_KEY"
	envLSClientCode = "LEAGUESTAT_CLIENT_CODE"
	envLSTimezone   = "LEAGUESTAT_TZ"
	envLSSeasonID   = "LEAGUESTAT_SEASON_ID"

	defaultPort = "4000"
	// Conservative default poll interval to respect upstream quotas on the
	// legacy feeds.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultLeague       = "nhl"
	defaultMetricsPort  = "9090"
)
