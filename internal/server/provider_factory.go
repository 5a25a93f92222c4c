package server

import (
	"log/slog"
	"time"

	"hockey-data-service/internal/config"
	"hockey-data-service/internal/metrics"
	"hockey-data-service/internal/providers"
)

// providerFactory assembles the upstream provider plus the shared
// wrappers (rate limit + retry) applied to the polling path.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// minFetchInterval floors how often the polling path may hit the
// upstream scoreboard, independent of the configured poll interval.
const minFetchInterval = 10 * time.Second

// build returns the base provider (used directly for team pages and
// summaries) and the decorated polling path. Only the scoreboard fetch
// runs on a fixed cadence, so only it is rate limited.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, providers.GameProvider) {
	base := selectProvider(cfg, f.logger, f.metrics)
	limited := providers.NewRateLimitedProvider(base, minFetchInterval, f.logger)
	polling := providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
	return base, polling
}
