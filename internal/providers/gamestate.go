package providers

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hockey-data-service/internal/domain/games"
)

// LiveStartBuffer is how far before the scheduled start a "live" status
// is trusted. Some feeds flip games to in-progress well ahead of puck
// drop; anything earlier than this window is demoted back to FUTURE.
const LiveStartBuffer = 10 * time.Minute

// InferGameState derives the canonical game state from a provider status
// (enumerated code or free text) plus the scheduled start. The status
// field alone cannot be trusted on the legacy feeds, so start time is the
// tie-breaker throughout.
func InferGameState(rawStatus string, startUTC, now time.Time) games.GameState {
	status := strings.TrimSpace(rawStatus)

	switch strings.ToUpper(status) {
	case "FUT", "PRE", "1":
		return games.StateFuture
	case "CRIT":
		return games.StateCritical
	case "LIVE", "2":
		return liveWithinBuffer(startUTC, now)
	case "FINAL", "3":
		return games.StateFinal
	case "OFF", "4":
		return games.StateOfficial
	}

	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "in progress"):
		return liveWithinBuffer(startUTC, now)
	case strings.Contains(lower, "official"):
		return games.StateOfficial
	case strings.Contains(lower, "final"):
		return games.StateFinal
	case strings.Contains(lower, "scheduled"):
		return games.StateFuture
	}

	// Unrecognized status: a past start is assumed still live rather than
	// silently marked complete.
	if startUTC.After(now) {
		return games.StateFuture
	}
	return games.StateLive
}

func liveWithinBuffer(startUTC, now time.Time) games.GameState {
	if startUTC.Sub(now) > LiveStartBuffer {
		return games.StateFuture
	}
	return games.StateLive
}

var clockPattern = regexp.MustCompile(`(?i)\((\d{1,2}):(\d{2})\s+remaining\s+in\s+(?:the\s+)?([0-9A-Za-z]+)\)`)

// ParseGameClock extracts the live clock and period from a legacy
// free-text status of the shape "... (MM:SS remaining in 2nd)". The
// period token may be an ordinal (1st/2nd/3rd), "OT"/"2OT"/.., or "SO".
// Unparseable statuses return ok=false and callers must leave both clock
// and period absent.
func ParseGameClock(status string) (games.Clock, int, bool) {
	match := clockPattern.FindStringSubmatch(status)
	if match == nil {
		return games.Clock{}, 0, false
	}

	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return games.Clock{}, 0, false
	}
	seconds, err := strconv.Atoi(match[2])
	if err != nil || seconds >= 60 {
		return games.Clock{}, 0, false
	}

	period, ok := parsePeriodToken(match[3])
	if !ok {
		return games.Clock{}, 0, false
	}

	clock := games.Clock{
		TimeRemaining:    match[1] + ":" + match[2],
		SecondsRemaining: minutes*60 + seconds,
		Running:          true,
	}
	return clock, period, true
}

func parsePeriodToken(token string) (int, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	switch token {
	case "so":
		return games.PeriodShootout, true
	case "ot":
		return 4, true
	}

	if n, found := strings.CutSuffix(token, "ot"); found {
		extra, err := strconv.Atoi(n)
		if err != nil || extra < 1 {
			return 0, false
		}
		return 3 + extra, true
	}

	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if n, found := strings.CutSuffix(token, suffix); found {
			period, err := strconv.Atoi(n)
			if err != nil || period < 1 {
				return 0, false
			}
			return period, true
		}
	}

	return 0, false
}
