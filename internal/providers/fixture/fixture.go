package fixture

import (
	"context"
	"time"

	domaingames "hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/players"
	domainteams "hockey-data-service/internal/domain/teams"
	"hockey-data-service/internal/timeutil"
)

// Provider returns a static set of games, team pages, and summaries
// useful for local development and bootstrapping without upstream
// credentials.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns a deterministic pair of games anchored on the
// requested date.
func (p *Provider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	_ = ctx
	_ = tz

	start := p.now().UTC().Truncate(time.Hour)
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			start = parsed.UTC().Add(19 * time.Hour)
		}
	}
	gameDate := timeutil.FormatDate(start)

	items := []domaingames.Game{
		{
			ID:           1001,
			Season:       20232024,
			GameType:     2,
			League:       "fixture",
			GameDate:     gameDate,
			StartTimeUTC: start,
			State:        domaingames.StateLive,
			Period:       2,
			PeriodDescriptor: &domaingames.PeriodDescriptor{
				Number:     2,
				PeriodType: "REG",
			},
			Clock: &domaingames.Clock{
				TimeRemaining:    "12:34",
				SecondsRemaining: 754,
				Running:          true,
			},
			HomeTeam: domaingames.Team{
				ID:         10,
				PlaceName:  "Toronto",
				CommonName: "Maple Leafs",
				Abbrev:     "TOR",
				Score:      2,
				SOG:        18,
			},
			AwayTeam: domaingames.Team{
				ID:         8,
				PlaceName:  "Montréal",
				CommonName: "Canadiens",
				Abbrev:     "MTL",
				Score:      1,
				SOG:        14,
			},
		},
		{
			ID:           1002,
			Season:       20232024,
			GameType:     2,
			League:       "fixture",
			GameDate:     gameDate,
			StartTimeUTC: start.Add(3 * time.Hour),
			State:        domaingames.StateFuture,
			HomeTeam: domaingames.Team{
				ID:         6,
				PlaceName:  "Boston",
				CommonName: "Bruins",
				Abbrev:     "BOS",
			},
			AwayTeam: domaingames.Team{
				ID:         3,
				PlaceName:  "New York",
				CommonName: "Rangers",
				Abbrev:     "NYR",
			},
		},
	}

	return items, nil
}

// FetchTeamDetails returns a small deterministic team page for any team.
func (p *Provider) FetchTeamDetails(ctx context.Context, team string) (domainteams.TeamDetails, error) {
	_ = ctx

	ot := 3
	today := timeutil.FormatDate(p.now().UTC())

	return domainteams.TeamDetails{
		ID:     10,
		Abbrev: team,
		Name:   "Fixture Club",
		Roster: players.BuildRoster([]players.Player{
			{ID: 201, FirstName: "Jane", LastName: "Doe", SweaterNumber: 34, Position: players.PositionCenter, Skater: sampleSkaterStats()},
			{ID: 202, FirstName: "Alex", LastName: "Roy", SweaterNumber: 8, Position: players.PositionDefense},
			{ID: 203, FirstName: "Sam", LastName: "Lake", SweaterNumber: 31, Position: players.PositionGoalie, Goalie: sampleGoalieStats()},
		}),
		Record: &domainteams.TeamRecord{
			Wins:        24,
			Losses:      12,
			OT:          &ot,
			Points:      51,
			StreakCode:  "W",
			StreakCount: 3,
		},
		UpcomingSchedule: []domaingames.ScheduledGame{
			{
				ID:           1002,
				Date:         today,
				StartTimeUTC: p.now().UTC().Add(24 * time.Hour),
				State:        "FUT",
				HomeTeam:     domaingames.ScheduleTeam{ID: 10, Abbrev: team},
				AwayTeam:     domaingames.ScheduleTeam{ID: 6, Abbrev: "BOS"},
			},
		},
	}, nil
}

// FetchGameSummary returns a deterministic period-by-period summary.
func (p *Provider) FetchGameSummary(ctx context.Context, gameID int) (*domaingames.GameSummary, error) {
	_ = ctx
	_ = gameID

	return &domaingames.GameSummary{
		Scoring: []domaingames.PeriodScoring{
			{
				PeriodDescriptor: domaingames.PeriodDescriptor{Number: 1, PeriodType: "REG"},
				Goals: []domaingames.Goal{
					{
						PlayerID:     201,
						FirstName:    "Jane",
						LastName:     "Doe",
						Assists:      []domaingames.Assist{{PlayerID: 202, FirstName: "Alex", LastName: "Roy"}},
						TimeInPeriod: "04:12",
						HomeScore:    1,
						AwayScore:    0,
						Strength:     domaingames.StrengthEven,
						IsHome:       true,
					},
				},
			},
		},
		Penalties: []domaingames.PeriodPenalties{
			{
				PeriodDescriptor: domaingames.PeriodDescriptor{Number: 2, PeriodType: "REG"},
				Penalties: []domaingames.Penalty{
					{TimeInPeriod: "10:45", Type: "tripping", Minutes: 2, CommittedBy: "Alex Roy"},
				},
			},
		},
		ThreeStars: []domaingames.Star{
			{Rank: 1, PlayerID: 201, Name: "Jane Doe", Position: players.PositionCenter},
		},
		Shootout: []domaingames.ShootoutAttempt{},
	}, nil
}

func sampleSkaterStats() *players.SkaterStats {
	gp, goals, assists, points := 36, 14, 22, 36
	ppg := 1.0
	return &players.SkaterStats{
		GamesPlayed:   &gp,
		Goals:         &goals,
		Assists:       &assists,
		Points:        &points,
		PointsPerGame: &ppg,
	}
}

func sampleGoalieStats() *players.GoalieStats {
	gp, wins := 20, 13
	savePct := 0.917
	return &players.GoalieStats{
		GamesPlayed: &gp,
		Wins:        &wins,
		SavePct:     &savePct,
	}
}
