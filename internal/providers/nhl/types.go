package nhl

// localizedName is the API's {"default": "..."} string wrapper. Only the
// default rendering is consumed.
type localizedName struct {
	Default string `json:"default"`
}

type scoreResponse struct {
	CurrentDate string      `json:"currentDate"`
	Games       []scoreGame `json:"games"`
}

type scoreGame struct {
	ID               int               `json:"id"`
	Season           int               `json:"season"`
	GameType         int               `json:"gameType"`
	GameDate         string            `json:"gameDate"`
	StartTimeUTC     string            `json:"startTimeUTC"`
	GameState        string            `json:"gameState"`
	Period           int               `json:"period"`
	PeriodDescriptor *periodDescriptor `json:"periodDescriptor"`
	Clock            *gameClock        `json:"clock"`
	HomeTeam         scoreTeam         `json:"homeTeam"`
	AwayTeam         scoreTeam         `json:"awayTeam"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type gameClock struct {
	TimeRemaining    string `json:"timeRemaining"`
	SecondsRemaining int    `json:"secondsRemaining"`
	Running          bool   `json:"running"`
	InIntermission   bool   `json:"inIntermission"`
}

type scoreTeam struct {
	ID             int           `json:"id"`
	PlaceName      localizedName `json:"placeName"`
	Name           localizedName `json:"name"`
	Abbrev         string        `json:"abbrev"`
	Logo           string        `json:"logo"`
	Score          int           `json:"score"`
	SOG            int           `json:"sog"`
	AwaySplitSquad bool          `json:"awaySplitSquad"`
	Odds           []teamOdds    `json:"odds"`
}

type teamOdds struct {
	ProviderID int    `json:"providerId"`
	Value      string `json:"value"`
}

type rosterResponse struct {
	Forwards   []rosterPlayer `json:"forwards"`
	Defensemen []rosterPlayer `json:"defensemen"`
	Goalies    []rosterPlayer `json:"goalies"`
}

type rosterPlayer struct {
	ID            int           `json:"id"`
	FirstName     localizedName `json:"firstName"`
	LastName      localizedName `json:"lastName"`
	SweaterNumber int           `json:"sweaterNumber"`
	PositionCode  string        `json:"positionCode"`
	Headshot      string        `json:"headshot"`
}

type clubStatsResponse struct {
	Skaters []skaterStatsRow `json:"skaters"`
	Goalies []goalieStatsRow `json:"goalies"`
}

type skaterStatsRow struct {
	PlayerID       int     `json:"playerId"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	Points         int     `json:"points"`
	PlusMinus      int     `json:"plusMinus"`
	PenaltyMinutes int     `json:"penaltyMinutes"`
	Shots          int     `json:"shots"`
	ShootingPctg   float64 `json:"shootingPctg"`
	FaceoffWinPctg float64 `json:"faceoffWinPctg"`
	AvgTimeOnIce   float64 `json:"avgTimeOnIcePerGame"`
}

type goalieStatsRow struct {
	PlayerID       int     `json:"playerId"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	ShotsAgainst   int     `json:"shotsAgainst"`
	Saves          int     `json:"saves"`
	Shutouts       int     `json:"shutouts"`
	SavePercentage float64 `json:"savePercentage"`
	GoalsAgainst   float64 `json:"goalsAgainstAverage"`
}

type standingsResponse struct {
	Standings []standingsRow `json:"standings"`
}

type standingsRow struct {
	TeamAbbrev  localizedName `json:"teamAbbrev"`
	TeamName    localizedName `json:"teamName"`
	TeamLogo    string        `json:"teamLogo"`
	Wins        int           `json:"wins"`
	Losses      int           `json:"losses"`
	OTLosses    int           `json:"otLosses"`
	Points      int           `json:"points"`
	StreakCode  string        `json:"streakCode"`
	StreakCount int           `json:"streakCount"`
}

type clubScheduleResponse struct {
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID           int           `json:"id"`
	GameDate     string        `json:"gameDate"`
	StartTimeUTC string        `json:"startTimeUTC"`
	GameState    string        `json:"gameState"`
	GameOutcome  *gameOutcome  `json:"gameOutcome"`
	HomeTeam     scheduleTeam  `json:"homeTeam"`
	AwayTeam     scheduleTeam  `json:"awayTeam"`
}

type gameOutcome struct {
	LastPeriodType string `json:"lastPeriodType"`
}

type scheduleTeam struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
	Logo   string `json:"logo"`
	Score  int    `json:"score"`
}

type landingResponse struct {
	ID       int            `json:"id"`
	HomeTeam landingTeam    `json:"homeTeam"`
	AwayTeam landingTeam    `json:"awayTeam"`
	Summary  landingSummary `json:"summary"`
}

type landingTeam struct {
	Abbrev string `json:"abbrev"`
}

type landingSummary struct {
	Scoring    []landingPeriodScoring   `json:"scoring"`
	Penalties  []landingPeriodPenalties `json:"penalties"`
	ThreeStars []landingStar            `json:"threeStars"`
	Shootout   []landingShootoutAttempt `json:"shootout"`
}

type landingPeriodScoring struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Goals            []landingGoal    `json:"goals"`
}

type landingGoal struct {
	EventID       int             `json:"eventId"`
	PlayerID      int             `json:"playerId"`
	FirstName     localizedName   `json:"firstName"`
	LastName      localizedName   `json:"lastName"`
	Headshot      string          `json:"headshot"`
	TeamAbbrev    localizedName   `json:"teamAbbrev"`
	TimeInPeriod  string          `json:"timeInPeriod"`
	HomeScore     int             `json:"homeScore"`
	AwayScore     int             `json:"awayScore"`
	Strength      string          `json:"strength"`
	SituationCode string          `json:"situationCode"`
	Assists       []landingAssist `json:"assists"`
}

type landingAssist struct {
	PlayerID  int           `json:"playerId"`
	FirstName localizedName `json:"firstName"`
	LastName  localizedName `json:"lastName"`
}

type landingPeriodPenalties struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Penalties        []landingPenalty `json:"penalties"`
}

type landingPenalty struct {
	TimeInPeriod      string        `json:"timeInPeriod"`
	DescKey           string        `json:"descKey"`
	Duration          int           `json:"duration"`
	CommittedByPlayer string        `json:"committedByPlayer"`
	DrawnBy           string        `json:"drawnBy"`
	TeamAbbrev        localizedName `json:"teamAbbrev"`
}

type landingStar struct {
	Star       int           `json:"star"`
	PlayerID   int           `json:"playerId"`
	Name       localizedName `json:"name"`
	TeamAbbrev string        `json:"teamAbbrev"`
	Position   string        `json:"position"`
	Headshot   string        `json:"headshot"`
}

type landingShootoutAttempt struct {
	Sequence   int    `json:"sequence"`
	PlayerID   int    `json:"playerId"`
	TeamAbbrev string `json:"teamAbbrev"`
	Result     string `json:"result"`
}
