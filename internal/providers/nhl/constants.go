package nhl

import "time"

const providerName = "nhl"

const (
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"
)
