package server

import (
	"log/slog"

	"hockey-data-service/internal/config"
	"hockey-data-service/internal/metrics"
	"hockey-data-service/internal/providers"
	"hockey-data-service/internal/providers/fixture"
	"hockey-data-service/internal/providers/leaguestat"
	"hockey-data-service/internal/providers/nhl"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "nhl":
		return nhl.NewClient(nhl.Config{
			BaseURL:  cfg.NHL.BaseURL,
			APIKey:   cfg.NHL.APIKey,
			Timezone: cfg.NHL.Timezone,
		})
	case "leaguestat":
		return leaguestat.NewClient(leaguestat.Config{
			BaseURL:    cfg.LeagueStat.BaseURL,
			APIKey:     cfg.LeagueStat.APIKey,
			ClientCode: cfg.LeagueStat.ClientCode,
			SeasonID:   cfg.LeagueStat.SeasonID,
			Timezone:   cfg.LeagueStat.Timezone,
			Recorder:   recorder,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
