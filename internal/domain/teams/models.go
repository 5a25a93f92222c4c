package teams

import (
	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/players"
)

// TeamRecord is a team's season record. OT and Ties are pointers because
// not every league tracks them; absent is distinct from zero.
type TeamRecord struct {
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	OT          *int   `json:"ot,omitempty"`
	Ties        *int   `json:"ties,omitempty"`
	Points      int    `json:"points"`
	StreakCode  string `json:"streakCode,omitempty"`
	StreakCount int    `json:"streakCount,omitempty"`
}

// TeamDetails is the full team-page shape: identity, partitioned roster,
// optional record, and optional schedule windows.
type TeamDetails struct {
	ID               int                   `json:"id"`
	Abbrev           string                `json:"abbrev"`
	Name             string                `json:"name"`
	Logo             string                `json:"logo,omitempty"`
	Roster           players.Roster        `json:"roster"`
	Record           *TeamRecord           `json:"record,omitempty"`
	UpcomingSchedule []games.ScheduledGame `json:"upcomingSchedule,omitempty"`
	Last10Schedule   []games.ScheduledGame `json:"last10Schedule,omitempty"`
}
