package config

// NHLConfig controls how the modern league API is reached.
type NHLConfig struct {
	BaseURL  string
	APIKey   string
	Timezone string
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL:  envOrDefault(envNHLBaseURL, ""),
		APIKey:   envOrDefault(envNHLAPIKey, ""),
		Timezone: envOrDefault(envNHLTimezone, ""),
	}
}
