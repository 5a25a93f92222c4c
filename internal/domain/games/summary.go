package games

// Strength tags for goals.
const (
	StrengthEven         = "EV"
	StrengthPowerPlay    = "PP"
	StrengthShortHanded  = "SH"
	StrengthPenaltyShot  = "PS"
	StrengthEmptyNetGoal = "EN"
)

// Assist references a player credited with an assist on a goal.
type Assist struct {
	PlayerID  int    `json:"playerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Goal is a single scoring event within a period.
type Goal struct {
	EventID      int      `json:"eventId"`
	PlayerID     int      `json:"playerId"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Headshot     string   `json:"headshot,omitempty"`
	Assists      []Assist `json:"assists"`
	TimeInPeriod string   `json:"timeInPeriod"`
	HomeScore    int      `json:"homeScore"`
	AwayScore    int      `json:"awayScore"`
	Strength     string   `json:"strength"`
	IsHome       bool     `json:"isHome"`
}

// PeriodScoring groups goals by period.
type PeriodScoring struct {
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	Goals            []Goal           `json:"goals"`
}

// Penalty is a single infraction within a period.
type Penalty struct {
	TimeInPeriod string `json:"timeInPeriod"`
	Type         string `json:"type"`
	Minutes      int    `json:"minutes"`
	CommittedBy  string `json:"committedByPlayer,omitempty"`
	DrawnBy      string `json:"drawnBy,omitempty"`
	TeamAbbrev   string `json:"teamAbbrev,omitempty"`
}

// PeriodPenalties groups penalties by period.
type PeriodPenalties struct {
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	Penalties        []Penalty        `json:"penalties"`
}

// Star is one of the game's ranked three stars.
type Star struct {
	Rank       int    `json:"star"`
	PlayerID   int    `json:"playerId"`
	Name       string `json:"name"`
	TeamAbbrev string `json:"teamAbbrev,omitempty"`
	Position   string `json:"position,omitempty"`
	Headshot   string `json:"headshot,omitempty"`
}

// ShootoutAttempt is a raw shootout entry carried through from the feed.
type ShootoutAttempt struct {
	Sequence   int    `json:"sequence"`
	PlayerID   int    `json:"playerId"`
	TeamAbbrev string `json:"teamAbbrev,omitempty"`
	Result     string `json:"result,omitempty"`
}

// GameSummary is the period-by-period detail attached to a finished or
// in-progress game.
type GameSummary struct {
	Scoring    []PeriodScoring   `json:"scoring"`
	Penalties  []PeriodPenalties `json:"penalties"`
	ThreeStars []Star            `json:"threeStars"`
	Shootout   []ShootoutAttempt `json:"shootout"`
}
