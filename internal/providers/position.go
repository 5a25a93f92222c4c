package providers

import (
	"strings"

	"hockey-data-service/internal/domain/players"
)

// staffKeywords mark roster rows that belong to team personnel rather
// than players. Matching rows are excluded from rosters entirely.
var staffKeywords = []string{
	"COACH",
	"MANAGER",
	"STAFF",
	"TRAINER",
	"EQUIPMENT",
	"SCOUT",
	"EXECUTIVE",
	"DIRECTOR",
	"PRESIDENT",
	"OWNER",
	"ANALYST",
	"COORDINATOR",
}

// IsStaffPosition reports whether a raw position/role string describes
// non-playing personnel.
func IsStaffPosition(raw string) bool {
	upper := strings.ToUpper(raw)
	for _, keyword := range staffKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}

// NormalizePosition maps a raw provider position string onto a canonical
// code. Exact single-letter codes pass through; the substring rules run
// most-specific first so "Right Defense" is never swallowed by the
// generic defense rule. Anything unrecognized is a generic forward.
func NormalizePosition(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))

	switch upper {
	case players.PositionLeftWing, players.PositionRightWing,
		players.PositionCenter, players.PositionDefense, players.PositionGoalie:
		return upper
	case "L":
		return players.PositionLeftWing
	case "R":
		return players.PositionRightWing
	case "LD":
		return players.PositionLeftDefense
	case "RD":
		return players.PositionRightDefense
	}

	switch {
	case strings.Contains(upper, "GOALIE") || strings.Contains(upper, "GOALTENDER"):
		return players.PositionGoalie
	case strings.Contains(upper, "LEFT WING"):
		return players.PositionLeftWing
	case strings.Contains(upper, "RIGHT WING"):
		return players.PositionRightWing
	case strings.Contains(upper, "RIGHT D"):
		return players.PositionRightDefense
	case strings.Contains(upper, "LEFT D"):
		return players.PositionLeftDefense
	case strings.Contains(upper, "CENTER") || strings.Contains(upper, "CENTRE"):
		return players.PositionCenter
	case strings.Contains(upper, "DEFENSE") || strings.Contains(upper, "DEFENCE"):
		return players.PositionDefense
	}

	return players.PositionForward
}
