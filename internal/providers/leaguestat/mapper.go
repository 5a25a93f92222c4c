package leaguestat

import (
	"time"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/providers"
	"hockey-data-service/internal/timeutil"
)

// mapGame normalizes one scorebar row. Rows without a resolvable game id
// report ok=false and are dropped by the caller.
func mapGame(row providers.Row, now time.Time, loc *time.Location) (games.Game, bool) {
	id, ok := row.Int("ID", "id", "game_id")
	if !ok || id == 0 {
		return games.Game{}, false
	}

	status := row.Str("GameStatusStringLong", "GameStatusString", "game_status", "status")
	statusCode := row.Str("GameStatus", "status_code")
	if statusCode == "" {
		statusCode = status
	}

	start := parseScorebarStart(row, loc)

	game := games.Game{
		ID:           id,
		League:       row.Str("league_code", "League"),
		GameDate:     gameDate(row, start, loc),
		StartTimeUTC: start,
		State:        providers.InferGameState(statusCode, start, now),
		HomeTeam:     mapScorebarTeam(row, "Home"),
		AwayTeam:     mapScorebarTeam(row, "Visitor"),
	}
	if season, seasonOK := row.Int("SeasonID", "season_id"); seasonOK {
		game.Season = season
	}

	if clock, period, parsed := providers.ParseGameClock(status); parsed && game.State.InProgress() {
		game.Clock = &clock
		game.Period = period
	} else if period, periodOK := row.Int("Period", "period"); periodOK && game.State.InProgress() {
		game.Period = period
	}

	return game, true
}

func mapScorebarTeam(row providers.Row, side string) games.Team {
	team := games.Team{
		PlaceName:  row.Str(side + "City"),
		CommonName: row.Str(side+"Nickname", side+"LongName"),
		Abbrev:     row.Str(side+"Code", side+"code"),
		Logo:       row.Str(side + "Logo"),
	}
	if id, ok := row.Int(side+"ID", side+"_id"); ok {
		team.ID = id
	}
	if score, ok := row.Int(side+"Goals", side+"_goal_count"); ok {
		team.Score = score
	}
	return team
}

// parseScorebarStart resolves the UTC start. The feed carries either a
// full ISO timestamp or a bare local date plus a display time; only the
// former is trusted for the clock-sensitive state inference.
func parseScorebarStart(row providers.Row, loc *time.Location) time.Time {
	if raw := row.Str("GameDateISO8601", "date_time_played"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts.UTC()
		}
	}
	if raw := row.Str("Date", "date_played", "GameDate"); raw != "" {
		if day, err := time.ParseInLocation(timeutil.DateLayout, raw, loc); err == nil {
			return day.UTC()
		}
	}
	return time.Time{}
}

func gameDate(row providers.Row, start time.Time, loc *time.Location) string {
	if raw := row.Str("Date", "date_played", "GameDate"); raw != "" {
		if _, err := timeutil.ParseDate(raw); err == nil {
			return raw
		}
	}
	if !start.IsZero() {
		return start.In(loc).Format(timeutil.DateLayout)
	}
	return ""
}
