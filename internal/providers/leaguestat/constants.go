package leaguestat

import "time"

const providerName = "leaguestat"

const (
	defaultBaseURL     = "https://lscluster.hockeytech.com/feed/index.php"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"

	feedName = "modulekit"

	viewScorebar     = "scorebar"
	viewRoster       = "roster"
	viewStatviewtype = "statviewtype"
	viewSchedule     = "schedule"
	viewGameSummary  = "gamesummary"

	statTypeSkaters   = "skaters"
	statTypeGoalies   = "goalies"
	statTypeStandings = "standings"
)

// headshotTemplate synthesizes a player image URL when the feed row does
// not carry one. Arguments: client code, player id.
const headshotTemplate = "https://assets.leaguestat.com/%s/120x160/%d.jpg"
