package leaguestat

import (
	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/players"
	"hockey-data-service/internal/domain/teams"
	"hockey-data-service/internal/providers"
	"hockey-data-service/internal/timeutil"
)

func assembleTeamDetails(team string, all []players.Player, standings, schedule []providers.Row, today string) teams.TeamDetails {
	details := teams.TeamDetails{
		Roster: players.BuildRoster(all),
	}
	if id, ok := providers.ToInt(team); ok {
		details.ID = id
	}

	results := make([]teams.Result, 0, len(schedule))
	scheduled := make([]games.ScheduledGame, 0, len(schedule))
	for _, row := range schedule {
		g, r, ok := mapScheduleRow(row, team)
		if !ok {
			continue
		}
		scheduled = append(scheduled, g)
		results = append(results, r)
	}
	details.Last10Schedule, details.UpcomingSchedule = teams.SplitSchedule(scheduled, today)

	authoritative := standingsRecord(standings, details.ID, &details)
	record := teams.DeriveRecord(authoritative, results)
	details.Record = &record

	return details
}

// standingsRecord finds the team's standings row and renders it as the
// authoritative record. Team identity fields ride along when present.
func standingsRecord(rows []providers.Row, teamID int, details *teams.TeamDetails) *teams.TeamRecord {
	for _, row := range rows {
		id, ok := row.Int("team_id", "id")
		if !ok || id != teamID {
			continue
		}

		details.Name = row.Str("team_name", "name")
		details.Abbrev = row.Str("team_code", "code")
		details.Logo = row.Str("team_logo", "logo")

		record := teams.TeamRecord{}
		if wins, winsOK := row.Int("wins", "w"); winsOK {
			record.Wins = wins
		}
		if losses, lossesOK := row.Int("losses", "l"); lossesOK {
			record.Losses = losses
		}
		if ot, otOK := row.Int("ot_losses", "otl"); otOK {
			record.OT = &ot
		}
		if ties, tiesOK := row.Int("ties", "t"); tiesOK {
			record.Ties = &ties
		}
		if points, pointsOK := row.Int("points", "pts"); pointsOK {
			record.Points = points
		}
		record.StreakCode, record.StreakCount = teams.ParseStreak(row.Str("streak"))
		return &record
	}
	return nil
}

// mapScheduleRow renders one schedule row both as a schedule entry and
// as a record-math result from the team's perspective.
func mapScheduleRow(row providers.Row, team string) (games.ScheduledGame, teams.Result, bool) {
	id, ok := row.Int("game_id", "id")
	if !ok || id == 0 {
		return games.ScheduledGame{}, teams.Result{}, false
	}

	date := row.Str("date_played", "game_date", "date")
	if _, err := timeutil.ParseDate(date); err != nil {
		return games.ScheduledGame{}, teams.Result{}, false
	}

	homeID, _ := row.Int("home_team", "home_id")
	awayID, _ := row.Int("visiting_team", "visitor_id")
	homeGoals, _ := row.Int("home_goal_count", "home_goals")
	awayGoals, _ := row.Int("visiting_goal_count", "visitor_goals")
	status := row.Str("game_status", "status")

	g := games.ScheduledGame{
		ID:    id,
		Date:  date,
		State: status,
		HomeTeam: games.ScheduleTeam{
			ID:     homeID,
			Abbrev: row.Str("home_team_code"),
			Score:  homeGoals,
		},
		AwayTeam: games.ScheduleTeam{
			ID:     awayID,
			Abbrev: row.Str("visiting_team_code"),
			Score:  awayGoals,
		},
	}

	teamID, _ := providers.ToInt(team)
	goalsFor, goalsAgainst := homeGoals, awayGoals
	if teamID == awayID {
		goalsFor, goalsAgainst = awayGoals, homeGoals
	}

	r := teams.Result{
		Date:         date,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		Overtime:     row.Bool("overtime", "ot"),
		Shootout:     row.Bool("shootout", "so"),
		Status:       status,
	}
	return g, r, true
}
