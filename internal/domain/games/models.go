package games

import "time"

// GameState mirrors the shared contract for game lifecycle states.
type GameState string

const (
	StateFuture   GameState = "FUTURE"
	StateLive     GameState = "LIVE"
	StateCritical GameState = "CRITICAL"
	StateFinal    GameState = "FINAL"
	StateOfficial GameState = "OFFICIAL"
)

// InProgress reports whether the game is currently being played.
func (s GameState) InProgress() bool {
	return s == StateLive || s == StateCritical
}

// Finished reports whether the game has ended.
func (s GameState) Finished() bool {
	return s == StateFinal || s == StateOfficial
}

// PeriodShootout is the sentinel period number assigned to shootouts so
// that "period beyond regulation" comparisons always hold.
const PeriodShootout = 99

// Clock captures the live game clock when a game is in progress.
type Clock struct {
	TimeRemaining    string `json:"timeRemaining"`
	SecondsRemaining int    `json:"secondsRemaining"`
	Running          bool   `json:"running"`
	InIntermission   bool   `json:"inIntermission"`
}

// PeriodDescriptor identifies a period as reported by the upstream feed.
type PeriodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType,omitempty"`
}

// Odds is a single betting line attached to a team.
type Odds struct {
	ProviderID int    `json:"providerId"`
	Value      string `json:"value"`
}

// Team is the per-game team shape embedded in a Game.
type Team struct {
	ID             int    `json:"id"`
	PlaceName      string `json:"placeName"`
	CommonName     string `json:"commonName"`
	Abbrev         string `json:"abbrev"`
	Logo           string `json:"logo"`
	Score          int    `json:"score"`
	SOG            int    `json:"sog"`
	AwaySplitSquad bool   `json:"awaySplitSquad,omitempty"`
	Odds           []Odds `json:"odds,omitempty"`
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID               int               `json:"id"`
	Season           int               `json:"season"`
	GameType         int               `json:"gameType"`
	League           string            `json:"league"`
	GameDate         string            `json:"gameDate"`
	StartTimeUTC     time.Time         `json:"startTimeUTC"`
	State            GameState         `json:"gameState"`
	Period           int               `json:"period,omitempty"`
	PeriodDescriptor *PeriodDescriptor `json:"periodDescriptor,omitempty"`
	Clock            *Clock            `json:"clock,omitempty"`
	HomeTeam         Team              `json:"homeTeam"`
	AwayTeam         Team              `json:"awayTeam"`
	Summary          *GameSummary      `json:"summary,omitempty"`
}

// CurrentPeriod resolves the period number. An explicit period wins over
// the descriptor; zero means no period is known.
func (g Game) CurrentPeriod() int {
	if g.Period > 0 {
		return g.Period
	}
	if g.PeriodDescriptor != nil {
		return g.PeriodDescriptor.Number
	}
	return 0
}

// ScheduleTeam is the minimal team reference embedded in schedule rows.
type ScheduleTeam struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
	Logo   string `json:"logo"`
	Score  int    `json:"score"`
}

// ScheduledGame is one row of a team or league schedule.
type ScheduledGame struct {
	ID           int          `json:"id"`
	Date         string       `json:"date"`
	StartTimeUTC time.Time    `json:"startTimeUTC"`
	State        string       `json:"gameState,omitempty"`
	HomeTeam     ScheduleTeam `json:"homeTeam"`
	AwayTeam     ScheduleTeam `json:"awayTeam"`
}

// TodayResponse is the payload returned by /games and /games/today.
type TodayResponse struct {
	Date   string `json:"date"`
	League string `json:"league,omitempty"`
	Games  []Game `json:"games"`
}

// NewTodayResponse builds a TodayResponse with a non-nil games slice.
func NewTodayResponse(date, league string, items []Game) TodayResponse {
	if items == nil {
		items = []Game{}
	}
	return TodayResponse{Date: date, League: league, Games: items}
}
