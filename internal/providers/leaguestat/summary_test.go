package leaguestat

import (
	"encoding/json"
	"testing"
)

func decodeSummaryPayload(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return payload
}

func TestMapSummaryGroupsGoalsByPeriod(t *testing.T) {
	payload := decodeSummaryPayload(t, `{
		"GC": {
			"Gamesummary": {
				"goals": [
					{ "goal_id": "1", "period_id": "1", "time": "05:11", "power_play": "1", "home": "1",
					  "goal_scorer": { "player_id": "11", "first_name": "Rafaël", "last_name": "Cloutier" },
					  "assists": [ { "player_id": "12", "first_name": "Danny", "last_name": "Dupont" } ],
					  "home_goal_count": "1", "visiting_goal_count": "0" },
					{ "goal_id": "2", "period_id": "3", "time": "12:40", "empty_net": "1", "home": "0",
					  "goal_scorer": { "player_id": "21", "first_name": "Max", "last_name": "Roy" } },
					{ "period_id": "2", "time": "no scorer here" }
				],
				"penalties": [
					{ "period_id": "2", "time": "08:00", "offence": "Tripping", "minutes": "2", "team_code": "TRR",
					  "player_served": { "first_name": "Danny", "last_name": "Dupont" } }
				],
				"mvps": [
					{ "player_id": "11", "first_name": "Rafaël", "last_name": "Cloutier", "team_code": "TRR" },
					{ "player_id": "21", "first_name": "Max", "last_name": "Roy", "team_code": "ADK" }
				]
			}
		}
	}`)

	summary := mapSummary(payload)

	if len(summary.Scoring) != 2 {
		t.Fatalf("expected 2 scoring periods, got %d", len(summary.Scoring))
	}
	if summary.Scoring[0].PeriodDescriptor.Number != 1 || summary.Scoring[1].PeriodDescriptor.Number != 3 {
		t.Fatalf("expected goalless periods omitted and order ascending, got %+v", summary.Scoring)
	}

	first := summary.Scoring[0].Goals[0]
	if first.Strength != "PP" || !first.IsHome {
		t.Fatalf("expected home PP goal, got %+v", first)
	}
	if first.LastName != "Cloutier" || len(first.Assists) != 1 || first.Assists[0].FirstName != "Danny" {
		t.Fatalf("unexpected scorer/assists %+v", first)
	}
	if first.HomeScore != 1 || first.AwayScore != 0 {
		t.Fatalf("unexpected running score %+v", first)
	}

	second := summary.Scoring[1].Goals[0]
	if second.Strength != "EN" || second.IsHome {
		t.Fatalf("expected away empty-net goal, got %+v", second)
	}

	if len(summary.Penalties) != 1 {
		t.Fatalf("expected 1 penalty period, got %d", len(summary.Penalties))
	}
	p := summary.Penalties[0].Penalties[0]
	if p.Type != "Tripping" || p.Minutes != 2 || p.CommittedBy != "Danny Dupont" {
		t.Fatalf("unexpected penalty %+v", p)
	}

	if len(summary.ThreeStars) != 2 {
		t.Fatalf("expected 2 stars, got %d", len(summary.ThreeStars))
	}
	if summary.ThreeStars[0].Rank != 1 || summary.ThreeStars[1].Rank != 2 {
		t.Fatalf("expected ranks by list order, got %+v", summary.ThreeStars)
	}
	if summary.ThreeStars[0].Name != "Rafaël Cloutier" {
		t.Fatalf("unexpected star name %s", summary.ThreeStars[0].Name)
	}
}

func TestMapSummaryEmptyPayloadYieldsEmptySections(t *testing.T) {
	summary := mapSummary(decodeSummaryPayload(t, `{}`))
	if summary.Scoring == nil || summary.Penalties == nil || summary.ThreeStars == nil || summary.Shootout == nil {
		t.Fatalf("expected non-nil empty sections, got %+v", summary)
	}
	if len(summary.Scoring) != 0 || len(summary.ThreeStars) != 0 {
		t.Fatalf("expected empty sections, got %+v", summary)
	}
}

func TestGoalStrengthFlags(t *testing.T) {
	cases := []struct {
		name     string
		row      map[string]any
		expected string
	}{
		{"default even", map[string]any{}, "EV"},
		{"power play flag", map[string]any{"power_play": "1"}, "PP"},
		{"empty net beats power play", map[string]any{"power_play": "1", "empty_net": "1"}, "EN"},
		{"explicit short handed carried", map[string]any{"strength": "SH"}, "SH"},
		{"mixed-case short handed", map[string]any{"strength": "Sh"}, "SH"},
		{"mixed-case penalty shot", map[string]any{"strength": "Ps"}, "PS"},
		{"zero flag stays even", map[string]any{"power_play": "0"}, "EV"},
	}

	for _, c := range cases {
		if got := goalStrength(c.row); got != c.expected {
			t.Fatalf("%s: expected %s, got %s", c.name, c.expected, got)
		}
	}
}
