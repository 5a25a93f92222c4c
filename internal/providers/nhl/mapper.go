package nhl

import (
	"time"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/providers"
)

func mapGame(g scoreGame, now time.Time) games.Game {
	start := parseStartTime(g.StartTimeUTC)

	game := games.Game{
		ID:           g.ID,
		Season:       g.Season,
		GameType:     g.GameType,
		League:       providerName,
		GameDate:     g.GameDate,
		StartTimeUTC: start,
		State:        providers.InferGameState(g.GameState, start, now),
		Period:       g.Period,
		HomeTeam:     mapScoreTeam(g.HomeTeam),
		AwayTeam:     mapScoreTeam(g.AwayTeam),
	}

	if g.PeriodDescriptor != nil && g.PeriodDescriptor.Number > 0 {
		game.PeriodDescriptor = &games.PeriodDescriptor{
			Number:     g.PeriodDescriptor.Number,
			PeriodType: g.PeriodDescriptor.PeriodType,
		}
	}
	if g.Clock != nil && game.State.InProgress() {
		game.Clock = &games.Clock{
			TimeRemaining:    g.Clock.TimeRemaining,
			SecondsRemaining: g.Clock.SecondsRemaining,
			Running:          g.Clock.Running,
			InIntermission:   g.Clock.InIntermission,
		}
	}
	return game
}

func mapScoreTeam(t scoreTeam) games.Team {
	team := games.Team{
		ID:             t.ID,
		PlaceName:      t.PlaceName.Default,
		CommonName:     t.Name.Default,
		Abbrev:         t.Abbrev,
		Logo:           t.Logo,
		Score:          t.Score,
		SOG:            t.SOG,
		AwaySplitSquad: t.AwaySplitSquad,
	}
	for _, o := range t.Odds {
		team.Odds = append(team.Odds, games.Odds{ProviderID: o.ProviderID, Value: o.Value})
	}
	return team
}

func mapScheduleGame(g scheduleGame) games.ScheduledGame {
	return games.ScheduledGame{
		ID:           g.ID,
		Date:         g.GameDate,
		StartTimeUTC: parseStartTime(g.StartTimeUTC),
		State:        g.GameState,
		HomeTeam:     mapScheduleTeam(g.HomeTeam),
		AwayTeam:     mapScheduleTeam(g.AwayTeam),
	}
}

func mapScheduleTeam(t scheduleTeam) games.ScheduleTeam {
	return games.ScheduleTeam{ID: t.ID, Abbrev: t.Abbrev, Logo: t.Logo, Score: t.Score}
}

// parseStartTime accepts the API's RFC 3339 start timestamps. A
// malformed timestamp yields the zero time, which downstream state
// inference treats as long past.
func parseStartTime(raw string) time.Time {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC()
	}
	return time.Time{}
}
