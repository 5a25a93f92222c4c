package nhl

import (
	"fmt"
	"strings"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/players"
	"hockey-data-service/internal/domain/teams"
	"hockey-data-service/internal/providers"
)

func assembleTeamDetails(team string, roster rosterResponse, stats clubStatsResponse, standings standingsResponse, schedule clubScheduleResponse, today string) teams.TeamDetails {
	skaterStats := make(map[int]skaterStatsRow, len(stats.Skaters))
	for _, row := range stats.Skaters {
		skaterStats[row.PlayerID] = row
	}
	goalieStats := make(map[int]goalieStatsRow, len(stats.Goalies))
	for _, row := range stats.Goalies {
		goalieStats[row.PlayerID] = row
	}

	all := make([]players.Player, 0, len(roster.Forwards)+len(roster.Defensemen)+len(roster.Goalies))
	for _, group := range [][]rosterPlayer{roster.Forwards, roster.Defensemen, roster.Goalies} {
		for _, raw := range group {
			if raw.ID == 0 {
				continue
			}
			all = append(all, mapRosterPlayer(raw, skaterStats, goalieStats))
		}
	}

	details := teams.TeamDetails{
		Abbrev: team,
		Roster: players.BuildRoster(all),
	}

	results := make([]teams.Result, 0, len(schedule.Games))
	scheduled := make([]games.ScheduledGame, 0, len(schedule.Games))
	for _, g := range schedule.Games {
		scheduled = append(scheduled, mapScheduleGame(g))
		if r, ok := scheduleResult(g, team); ok {
			results = append(results, r)
		}
		if g.HomeTeam.Abbrev == team && g.HomeTeam.ID > 0 {
			details.ID = g.HomeTeam.ID
			details.Logo = g.HomeTeam.Logo
		} else if g.AwayTeam.Abbrev == team && g.AwayTeam.ID > 0 {
			details.ID = g.AwayTeam.ID
			details.Logo = g.AwayTeam.Logo
		}
	}
	details.Last10Schedule, details.UpcomingSchedule = teams.SplitSchedule(scheduled, today)

	record := teams.DeriveRecord(standingsRecord(standings, team), results)
	details.Record = &record

	for _, row := range standings.Standings {
		if row.TeamAbbrev.Default == team {
			details.Name = row.TeamName.Default
			if details.Logo == "" {
				details.Logo = row.TeamLogo
			}
			break
		}
	}

	return details
}

func mapRosterPlayer(raw rosterPlayer, skaterStats map[int]skaterStatsRow, goalieStats map[int]goalieStatsRow) players.Player {
	p := players.Player{
		ID:            raw.ID,
		FirstName:     raw.FirstName.Default,
		LastName:      raw.LastName.Default,
		SweaterNumber: raw.SweaterNumber,
		Position:      providers.NormalizePosition(raw.PositionCode),
		Headshot:      raw.Headshot,
	}

	if p.IsGoalie() {
		if row, ok := goalieStats[p.ID]; ok {
			p.Goalie = mapGoalieStats(row)
		}
		return p
	}
	if row, ok := skaterStats[p.ID]; ok {
		p.Skater = mapSkaterStats(row)
	}
	return p
}

func mapSkaterStats(row skaterStatsRow) *players.SkaterStats {
	stats := &players.SkaterStats{
		GamesPlayed: intPtr(row.GamesPlayed),
		Goals:       intPtr(row.Goals),
		Assists:     intPtr(row.Assists),
		Points:      intPtr(row.Points),
		PlusMinus:   intPtr(row.PlusMinus),
		PIM:         intPtr(row.PenaltyMinutes),
		Shots:       intPtr(row.Shots),
		ShootingPct: floatPtr(row.ShootingPctg),
		FaceoffPct:  floatPtr(row.FaceoffWinPctg),
	}
	if row.GamesPlayed > 0 {
		ppg := float64(row.Points) / float64(row.GamesPlayed)
		stats.PointsPerGame = &ppg
	}
	if row.AvgTimeOnIce > 0 {
		toi := formatIceTime(row.AvgTimeOnIce)
		stats.AvgIceTime = &toi
	}
	return stats
}

func mapGoalieStats(row goalieStatsRow) *players.GoalieStats {
	return &players.GoalieStats{
		GamesPlayed:  intPtr(row.GamesPlayed),
		Wins:         intPtr(row.Wins),
		Losses:       intPtr(row.Losses),
		ShotsAgainst: intPtr(row.ShotsAgainst),
		Saves:        intPtr(row.Saves),
		Shutouts:     intPtr(row.Shutouts),
		SavePct:      floatPtr(row.SavePercentage),
		GAA:          floatPtr(row.GoalsAgainst),
	}
}

func standingsRecord(standings standingsResponse, team string) *teams.TeamRecord {
	for _, row := range standings.Standings {
		if row.TeamAbbrev.Default != team {
			continue
		}
		ot := row.OTLosses
		return &teams.TeamRecord{
			Wins:        row.Wins,
			Losses:      row.Losses,
			OT:          &ot,
			Points:      row.Points,
			StreakCode:  row.StreakCode,
			StreakCount: row.StreakCount,
		}
	}
	return nil
}

func scheduleResult(g scheduleGame, team string) (teams.Result, bool) {
	var goalsFor, goalsAgainst int
	switch team {
	case g.HomeTeam.Abbrev:
		goalsFor, goalsAgainst = g.HomeTeam.Score, g.AwayTeam.Score
	case g.AwayTeam.Abbrev:
		goalsFor, goalsAgainst = g.AwayTeam.Score, g.HomeTeam.Score
	default:
		return teams.Result{}, false
	}

	r := teams.Result{
		Date:         g.GameDate,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		Status:       resultStatus(g.GameState),
	}
	if g.GameOutcome != nil {
		switch strings.ToUpper(g.GameOutcome.LastPeriodType) {
		case "OT":
			r.Overtime = true
		case "SO":
			r.Shootout = true
		}
	}
	return r, true
}

// resultStatus folds the scoreboard's end-state codes into the textual
// form record math recognizes. An OFF game is just a final with the
// scoring officially confirmed.
func resultStatus(state string) string {
	switch strings.ToUpper(state) {
	case "OFF", "FINAL":
		return "Final"
	}
	return state
}

func formatIceTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
