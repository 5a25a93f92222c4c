package leaguestat

import (
	"sort"
	"strings"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/providers"
)

// mapSummary normalizes the game summary view. The view nests sections
// under shifting wrapper keys, so each section is hunted by name rather
// than decoded against a fixed schema.
func mapSummary(payload any) *games.GameSummary {
	summary := &games.GameSummary{
		Scoring:    []games.PeriodScoring{},
		Penalties:  []games.PeriodPenalties{},
		ThreeStars: []games.Star{},
		Shootout:   []games.ShootoutAttempt{},
	}

	summary.Scoring = groupGoals(findSection(payload, "goals"))
	summary.Penalties = groupPenalties(findSection(payload, "penalties"))

	for _, row := range findSection(payload, "mvps", "three_stars", "stars") {
		id, ok := row.Int("player_id", "id")
		if !ok {
			continue
		}
		rank, rankOK := row.Int("star", "rank")
		if !rankOK || rank <= 0 {
			rank = len(summary.ThreeStars) + 1
		}
		summary.ThreeStars = append(summary.ThreeStars, games.Star{
			Rank:       rank,
			PlayerID:   id,
			Name:       playerName(row),
			TeamAbbrev: row.Str("team_code", "team"),
			Position:   providers.NormalizePosition(row.Str("position", "position_txt")),
			Headshot:   row.Str("player_image", "image"),
		})
	}

	for i, row := range findSection(payload, "shootouts", "shootout") {
		id, _ := row.Int("player_id", "id")
		sequence, ok := row.Int("sequence", "order")
		if !ok {
			sequence = i + 1
		}
		result := "miss"
		if row.Bool("goal", "is_goal", "scored") {
			result = "goal"
		}
		summary.Shootout = append(summary.Shootout, games.ShootoutAttempt{
			Sequence:   sequence,
			PlayerID:   id,
			TeamAbbrev: row.Str("team_code", "team"),
			Result:     result,
		})
	}

	return summary
}

func groupGoals(rows []providers.Row) []games.PeriodScoring {
	byPeriod := make(map[int][]games.Goal)
	for _, row := range rows {
		goal, period, ok := mapGoal(row)
		if !ok {
			continue
		}
		byPeriod[period] = append(byPeriod[period], goal)
	}
	return sortedScoring(byPeriod)
}

func mapGoal(row providers.Row) (games.Goal, int, bool) {
	scorer := nestedRow(row, "goal_scorer", "scorer")
	id, ok := scorer.Int("player_id", "id")
	if !ok {
		if id, ok = row.Int("goal_scorer_id", "player_id"); !ok {
			return games.Goal{}, 0, false
		}
	}

	period, periodOK := row.Int("period_id", "period")
	if !periodOK || period < 1 {
		period = 1
	}

	goal := games.Goal{
		EventID:      firstInt(row, "event_id", "goal_id", "id"),
		PlayerID:     id,
		FirstName:    scorer.Str("first_name", "firstname"),
		LastName:     scorer.Str("last_name", "lastname"),
		Headshot:     scorer.Str("player_image", "image"),
		Assists:      mapAssists(row),
		TimeInPeriod: row.Str("time", "time_formatted", "scorer_time"),
		HomeScore:    firstInt(row, "home_goal_count", "home_score"),
		AwayScore:    firstInt(row, "visiting_goal_count", "away_score"),
		Strength:     goalStrength(row),
		IsHome:       row.Bool("home", "is_home"),
	}
	if goal.FirstName == "" && goal.LastName == "" {
		goal.FirstName, goal.LastName = splitFullName(row.Str("goal_scorer_name", "scorer_name"))
	}
	return goal, period, true
}

// goalStrength tags the special-teams state. The feed signals power play
// and empty net with flags; there is no short-handed flag on this view,
// so SH only appears when an explicit strength field carries it.
func goalStrength(row providers.Row) string {
	switch strength := row.Str("strength"); {
	case strings.EqualFold(strength, "SH"):
		return games.StrengthShortHanded
	case strings.EqualFold(strength, "PS"):
		return games.StrengthPenaltyShot
	}
	if row.Bool("empty_net", "en") {
		return games.StrengthEmptyNetGoal
	}
	if row.Bool("power_play", "pp") {
		return games.StrengthPowerPlay
	}
	return games.StrengthEven
}

func mapAssists(row providers.Row) []games.Assist {
	assists := []games.Assist{}
	raw, ok := row["assists"].([]any)
	if !ok {
		return assists
	}
	for _, item := range raw {
		m, isMap := item.(map[string]any)
		if !isMap {
			continue
		}
		assist := providers.Row(m)
		id, idOK := assist.Int("player_id", "id")
		if !idOK {
			continue
		}
		assists = append(assists, games.Assist{
			PlayerID:  id,
			FirstName: assist.Str("first_name", "firstname"),
			LastName:  assist.Str("last_name", "lastname"),
		})
	}
	return assists
}

func groupPenalties(rows []providers.Row) []games.PeriodPenalties {
	byPeriod := make(map[int][]games.Penalty)
	for _, row := range rows {
		period, ok := row.Int("period_id", "period")
		if !ok || period < 1 {
			period = 1
		}
		byPeriod[period] = append(byPeriod[period], games.Penalty{
			TimeInPeriod: row.Str("time", "time_off_formatted"),
			Type:         row.Str("description", "offence", "penalty"),
			Minutes:      firstInt(row, "minutes", "pim"),
			CommittedBy:  playerName(nestedRow(row, "player_served", "taken_by")),
			TeamAbbrev:   row.Str("team_code", "team"),
		})
	}

	periods := make([]games.PeriodPenalties, 0, len(byPeriod))
	for period, items := range byPeriod {
		periods = append(periods, games.PeriodPenalties{
			PeriodDescriptor: games.PeriodDescriptor{Number: period},
			Penalties:        items,
		})
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].PeriodDescriptor.Number < periods[j].PeriodDescriptor.Number
	})
	return periods
}

func sortedScoring(byPeriod map[int][]games.Goal) []games.PeriodScoring {
	periods := make([]games.PeriodScoring, 0, len(byPeriod))
	for period, goals := range byPeriod {
		periods = append(periods, games.PeriodScoring{
			PeriodDescriptor: games.PeriodDescriptor{Number: period},
			Goals:            goals,
		})
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].PeriodDescriptor.Number < periods[j].PeriodDescriptor.Number
	})
	return periods
}

// findSection hunts for a named list anywhere under the payload's
// wrapper nesting and renders its elements as rows.
func findSection(payload any, names ...string) []providers.Row {
	list := findList(payload, names, 0)
	rows := make([]providers.Row, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			rows = append(rows, providers.Row(m))
		}
	}
	return rows
}

const maxSectionDepth = 8

func findList(payload any, names []string, depth int) []any {
	if depth > maxSectionDepth {
		return nil
	}

	switch val := payload.(type) {
	case map[string]any:
		for _, name := range names {
			if list, ok := val[name].([]any); ok {
				return list
			}
		}
		for _, inner := range val {
			if list := findList(inner, names, depth+1); list != nil {
				return list
			}
		}
	case []any:
		for _, inner := range val {
			if list := findList(inner, names, depth+1); list != nil {
				return list
			}
		}
	}
	return nil
}

func playerName(row providers.Row) string {
	first := row.Str("first_name", "firstname")
	last := row.Str("last_name", "lastname")
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return row.Str("name", "player_name")
}

func nestedRow(row providers.Row, keys ...string) providers.Row {
	for _, key := range keys {
		if m, ok := row[key].(map[string]any); ok {
			return providers.Row(m)
		}
	}
	return providers.Row{}
}

func firstInt(row providers.Row, keys ...string) int {
	v, _ := row.Int(keys...)
	return v
}
