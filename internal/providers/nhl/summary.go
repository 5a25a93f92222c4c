package nhl

import (
	"strings"

	"hockey-data-service/internal/domain/games"
)

func mapSummary(payload landingResponse) *games.GameSummary {
	summary := &games.GameSummary{
		Scoring:    []games.PeriodScoring{},
		Penalties:  []games.PeriodPenalties{},
		ThreeStars: []games.Star{},
		Shootout:   []games.ShootoutAttempt{},
	}

	for _, period := range payload.Summary.Scoring {
		scoring := games.PeriodScoring{
			PeriodDescriptor: games.PeriodDescriptor{
				Number:     period.PeriodDescriptor.Number,
				PeriodType: period.PeriodDescriptor.PeriodType,
			},
			Goals: []games.Goal{},
		}
		for _, raw := range period.Goals {
			scoring.Goals = append(scoring.Goals, mapGoal(raw, payload.HomeTeam.Abbrev))
		}
		summary.Scoring = append(summary.Scoring, scoring)
	}

	for _, period := range payload.Summary.Penalties {
		penalties := games.PeriodPenalties{
			PeriodDescriptor: games.PeriodDescriptor{
				Number:     period.PeriodDescriptor.Number,
				PeriodType: period.PeriodDescriptor.PeriodType,
			},
			Penalties: []games.Penalty{},
		}
		for _, raw := range period.Penalties {
			penalties.Penalties = append(penalties.Penalties, games.Penalty{
				TimeInPeriod: raw.TimeInPeriod,
				Type:         raw.DescKey,
				Minutes:      raw.Duration,
				CommittedBy:  raw.CommittedByPlayer,
				DrawnBy:      raw.DrawnBy,
				TeamAbbrev:   raw.TeamAbbrev.Default,
			})
		}
		summary.Penalties = append(summary.Penalties, penalties)
	}

	for i, raw := range payload.Summary.ThreeStars {
		rank := raw.Star
		if rank <= 0 {
			rank = i + 1
		}
		summary.ThreeStars = append(summary.ThreeStars, games.Star{
			Rank:       rank,
			PlayerID:   raw.PlayerID,
			Name:       raw.Name.Default,
			TeamAbbrev: raw.TeamAbbrev,
			Position:   raw.Position,
			Headshot:   raw.Headshot,
		})
	}

	for _, raw := range payload.Summary.Shootout {
		summary.Shootout = append(summary.Shootout, games.ShootoutAttempt{
			Sequence:   raw.Sequence,
			PlayerID:   raw.PlayerID,
			TeamAbbrev: raw.TeamAbbrev,
			Result:     raw.Result,
		})
	}

	return summary
}

func mapGoal(raw landingGoal, homeAbbrev string) games.Goal {
	isHome := raw.TeamAbbrev.Default == homeAbbrev

	goal := games.Goal{
		EventID:      raw.EventID,
		PlayerID:     raw.PlayerID,
		FirstName:    raw.FirstName.Default,
		LastName:     raw.LastName.Default,
		Headshot:     raw.Headshot,
		Assists:      []games.Assist{},
		TimeInPeriod: raw.TimeInPeriod,
		HomeScore:    raw.HomeScore,
		AwayScore:    raw.AwayScore,
		Strength:     goalStrength(raw.SituationCode, raw.Strength, isHome),
		IsHome:       isHome,
	}
	for _, a := range raw.Assists {
		goal.Assists = append(goal.Assists, games.Assist{
			PlayerID:  a.PlayerID,
			FirstName: a.FirstName.Default,
			LastName:  a.LastName.Default,
		})
	}
	return goal
}

// goalStrength derives the special-teams tag for a goal. The four-digit
// situation code (away goalie, away skaters, home skaters, home goalie)
// is preferred when present; the free-form strength field is the
// fallback.
func goalStrength(situationCode, strength string, isHome bool) string {
	if tag, ok := strengthFromSituation(situationCode, isHome); ok {
		return tag
	}
	switch strings.ToUpper(strings.TrimSpace(strength)) {
	case "PP":
		return games.StrengthPowerPlay
	case "SH":
		return games.StrengthShortHanded
	case "PS":
		return games.StrengthPenaltyShot
	case "EN":
		return games.StrengthEmptyNetGoal
	}
	return games.StrengthEven
}

func strengthFromSituation(code string, isHome bool) (string, bool) {
	if len(code) != 4 {
		return "", false
	}
	digits := make([]int, 4)
	for i, ch := range code {
		if ch < '0' || ch > '9' {
			return "", false
		}
		digits[i] = int(ch - '0')
	}

	scoringSkaters, otherSkaters := digits[1], digits[2]
	otherGoalie := digits[3]
	if isHome {
		scoringSkaters, otherSkaters = digits[2], digits[1]
		otherGoalie = digits[0]
	}

	switch {
	case otherGoalie == 0:
		return games.StrengthEmptyNetGoal, true
	case scoringSkaters > otherSkaters:
		return games.StrengthPowerPlay, true
	case scoringSkaters < otherSkaters:
		return games.StrengthShortHanded, true
	}
	return games.StrengthEven, true
}
