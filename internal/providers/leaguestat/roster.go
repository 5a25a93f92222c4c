package leaguestat

import (
	"fmt"
	"strings"

	"hockey-data-service/internal/domain/players"
	"hockey-data-service/internal/providers"
)

// playerStats is the pre-indexed stat row for one player, tagged with
// which stat view it came from.
type playerStats struct {
	row    providers.Row
	goalie bool
}

func buildStatsIndex(skaters, goalies []providers.Row) map[int]playerStats {
	index := make(map[int]playerStats, len(skaters)+len(goalies))
	for _, row := range skaters {
		if id, ok := row.Int("player_id", "id"); ok {
			index[id] = playerStats{row: row}
		}
	}
	for _, row := range goalies {
		if id, ok := row.Int("player_id", "id"); ok {
			index[id] = playerStats{row: row, goalie: true}
		}
	}
	return index
}

// mapPlayer normalizes one roster row. Staff rows and rows without a
// resolvable id report ok=false and are dropped by the caller.
func mapPlayer(row providers.Row, clientCode string, statsByID map[int]playerStats) (players.Player, bool) {
	rawPosition := row.Str("position", "position_txt", "pos", "role")
	if providers.IsStaffPosition(rawPosition) {
		return players.Player{}, false
	}

	id, ok := row.Int("player_id", "id", "person_id")
	if !ok || id == 0 {
		return players.Player{}, false
	}

	first := row.Str("first_name", "firstname")
	last := row.Str("last_name", "lastname")
	if first == "" && last == "" {
		first, last = splitFullName(row.Str("name", "player_name", "full_name"))
	}

	p := players.Player{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Position:  providers.NormalizePosition(rawPosition),
		Headshot:  resolveHeadshot(row, clientCode, id),
	}
	if number, numberOK := row.Int("tp_jersey_number", "jersey_number", "number"); numberOK {
		p.SweaterNumber = number
	}

	if stats, found := statsByID[id]; found {
		if p.IsGoalie() && stats.goalie {
			p.Goalie = mapGoalieStats(stats.row)
		} else if !p.IsGoalie() && !stats.goalie {
			p.Skater = mapSkaterStats(stats.row)
		}
	}

	return p, true
}

// splitFullName resolves a single full-name field. When a comma is
// present the feed's field order is emitted as-is: the component before
// the comma becomes firstName and the remainder lastName, matching the
// upstream quirk rather than natural-language order. Without a comma the
// first whitespace token is the first name.
func splitFullName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}

	if before, after, found := strings.Cut(full, ","); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if before, after, found := strings.Cut(full, " "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return full, ""
}

func resolveHeadshot(row providers.Row, clientCode string, id int) string {
	if url := row.Str("player_image", "image", "photo_url"); url != "" {
		return url
	}
	if clientCode == "" {
		return ""
	}
	return fmt.Sprintf(headshotTemplate, clientCode, id)
}

func mapSkaterStats(row providers.Row) *players.SkaterStats {
	stats := &players.SkaterStats{
		GamesPlayed: optInt(row, "games_played", "gp"),
		Goals:       optInt(row, "goals", "g"),
		Assists:     optInt(row, "assists", "a"),
		Points:      optInt(row, "points", "pts"),
		PlusMinus:   optInt(row, "plus_minus"),
		PIM:         optInt(row, "penalty_minutes", "pim"),
		Shots:       optInt(row, "shots", "shots_on_goal"),
		Hits:        optInt(row, "hits"),
		Blocks:      optInt(row, "blocked_shots", "blocks"),
	}
	stats.PointsPerGame = optFloat(row, "points_per_game", "ppg")
	stats.FaceoffPct = optFloat(row, "faceoff_pct", "faceoff_wins_percentage")
	stats.ShootingPct = optFloat(row, "shooting_percentage", "shooting_pct")
	if toi := row.Str("ice_time_avg", "avg_ice_time"); toi != "" {
		stats.AvgIceTime = &toi
	}
	return stats
}

func mapGoalieStats(row providers.Row) *players.GoalieStats {
	return &players.GoalieStats{
		GamesPlayed:  optInt(row, "games_played", "gp"),
		Wins:         optInt(row, "wins", "w"),
		Losses:       optInt(row, "losses", "l"),
		ShotsAgainst: optInt(row, "shots_against", "shots"),
		Saves:        optInt(row, "saves", "svs"),
		Shutouts:     optInt(row, "shutouts", "so"),
		SavePct:      optFloat(row, "save_percentage", "save_pct"),
		GAA:          optFloat(row, "goals_against_average", "gaa"),
	}
}

func optInt(row providers.Row, keys ...string) *int {
	if v, ok := row.Int(keys...); ok {
		return &v
	}
	return nil
}

func optFloat(row providers.Row, keys ...string) *float64 {
	if v, ok := row.Num(keys...); ok {
		return &v
	}
	return nil
}
