package config

// LeagueStatConfig controls how the legacy minor-league feed is reached.
// ClientCode selects the league (e.g. "ahl", "ohl") on the shared host.
type LeagueStatConfig struct {
	BaseURL    string
	APIKey     string
	ClientCode string
	Timezone   string
	// SeasonID scopes roster/standings views; 0 lets the feed pick the
	// current season.
	SeasonID int
}

func loadLeagueStat() LeagueStatConfig {
	return LeagueStatConfig{
		BaseURL:    envOrDefault(envLSBaseURL, ""),
		APIKey:     envOrDefault(envLSAPIKey, ""),
		ClientCode: envOrDefault(envLSClientCode, ""),
		Timezone:   envOrDefault(envLSTimezone, ""),
		SeasonID:   intEnvOrDefault(envLSSeasonID, 0),
	}
}
