package players

// Normalized position codes. F is the generic fallback for any
// unrecognized forward-like position string.
const (
	PositionLeftWing     = "LW"
	PositionRightWing    = "RW"
	PositionCenter       = "C"
	PositionDefense      = "D"
	PositionLeftDefense  = "LD"
	PositionRightDefense = "RD"
	PositionGoalie       = "G"
	PositionForward      = "F"
)

// SkaterStats carries per-player skater statistics. Fields are pointers
// so that "no value supplied" survives serialization as null rather than
// collapsing to zero; presentation layers key column visibility on this.
type SkaterStats struct {
	GamesPlayed   *int     `json:"gamesPlayed,omitempty"`
	Goals         *int     `json:"goals,omitempty"`
	Assists       *int     `json:"assists,omitempty"`
	Points        *int     `json:"points,omitempty"`
	PlusMinus     *int     `json:"plusMinus,omitempty"`
	PIM           *int     `json:"pim,omitempty"`
	Shots         *int     `json:"shots,omitempty"`
	Hits          *int     `json:"hits,omitempty"`
	Blocks        *int     `json:"blocks,omitempty"`
	PointsPerGame *float64 `json:"pointsPerGame,omitempty"`
	FaceoffPct    *float64 `json:"faceoffPct,omitempty"`
	ShootingPct   *float64 `json:"shootingPct,omitempty"`
	AvgIceTime    *string  `json:"avgIceTime,omitempty"`
}

// GoalieStats carries per-player goaltending statistics.
type GoalieStats struct {
	GamesPlayed  *int     `json:"gamesPlayed,omitempty"`
	Wins         *int     `json:"wins,omitempty"`
	Losses       *int     `json:"losses,omitempty"`
	ShotsAgainst *int     `json:"shotsAgainst,omitempty"`
	Saves        *int     `json:"saves,omitempty"`
	Shutouts     *int     `json:"shutouts,omitempty"`
	SavePct      *float64 `json:"savePct,omitempty"`
	GAA          *float64 `json:"gaa,omitempty"`
}

// Player is the canonical player shape.
type Player struct {
	ID            int          `json:"id"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	SweaterNumber int          `json:"sweaterNumber,omitempty"`
	Position      string       `json:"position"`
	Headshot      string       `json:"headshot,omitempty"`
	Skater        *SkaterStats `json:"skaterStats,omitempty"`
	Goalie        *GoalieStats `json:"goalieStats,omitempty"`
}

// IsGoalie reports whether the player's normalized position is goalie.
func (p Player) IsGoalie() bool {
	return p.Position == PositionGoalie
}

// IsDefenseman reports whether the player's normalized position is one of
// the defense codes.
func (p Player) IsDefenseman() bool {
	switch p.Position {
	case PositionDefense, PositionLeftDefense, PositionRightDefense:
		return true
	}
	return false
}

// Roster partitions a team's players into the three canonical buckets.
type Roster struct {
	Forwards   []Player `json:"forwards"`
	Defensemen []Player `json:"defensemen"`
	Goalies    []Player `json:"goalies"`
}

// BuildRoster buckets players by normalized position. Goalies and
// defensemen are recognized explicitly; everything else is a forward.
func BuildRoster(items []Player) Roster {
	roster := Roster{
		Forwards:   []Player{},
		Defensemen: []Player{},
		Goalies:    []Player{},
	}
	for _, p := range items {
		switch {
		case p.IsGoalie():
			roster.Goalies = append(roster.Goalies, p)
		case p.IsDefenseman():
			roster.Defensemen = append(roster.Defensemen, p)
		default:
			roster.Forwards = append(roster.Forwards, p)
		}
	}
	return roster
}
