package teams

import (
	"sort"
	"strings"
)

// Result codes for a single finished game, from the team's perspective.
const (
	ResultWin          = "W"
	ResultLoss         = "L"
	ResultOvertimeLoss = "OTL"
)

// legacyFinalCode is the numeric status some minor-league feeds use for
// an officially final game.
const legacyFinalCode = "4"

// Result is one historical game outcome used for record and streak math.
type Result struct {
	Date         string
	GoalsFor     int
	GoalsAgainst int
	Overtime     bool
	Shootout     bool
	Status       string
}

// Finished reports whether the game actually completed. Unfinished games
// contribute nothing to records or streaks.
func (r Result) Finished() bool {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	return strings.Contains(status, "final") || status == legacyFinalCode
}

// Code classifies the result as W, OTL, or L. A loss counts as an
// overtime loss when the feed flags overtime/shootout explicitly or the
// status text mentions it.
func (r Result) Code() string {
	if r.GoalsFor > r.GoalsAgainst {
		return ResultWin
	}
	if r.Overtime || r.Shootout || statusMentionsExtraTime(r.Status) {
		return ResultOvertimeLoss
	}
	return ResultLoss
}

func statusMentionsExtraTime(status string) bool {
	status = strings.ToLower(status)
	return strings.Contains(status, "ot") || strings.Contains(status, "so")
}

// ComputeRecord accumulates wins/losses/OT losses and points (2-1-0)
// over the finished games, iterated in chronological order.
func ComputeRecord(results []Result) TeamRecord {
	sorted := finishedChronological(results)

	var record TeamRecord
	ot := 0
	for _, r := range sorted {
		switch r.Code() {
		case ResultWin:
			record.Wins++
			record.Points += 2
		case ResultOvertimeLoss:
			ot++
			record.Points++
		default:
			record.Losses++
		}
	}
	record.OT = &ot

	record.StreakCode, record.StreakCount = ComputeStreak(results)
	return record
}

// ComputeStreak returns the run of identical result codes ending at the
// most recent finished game. An empty history yields an empty code.
func ComputeStreak(results []Result) (string, int) {
	sorted := finishedChronological(results)
	if len(sorted) == 0 {
		return "", 0
	}

	code := sorted[len(sorted)-1].Code()
	count := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Code() != code {
			break
		}
		count++
	}
	return code, count
}

// DeriveRecord prefers an authoritative record from the provider and only
// computes locally when it is absent. A provider record missing its
// streak gets the locally computed streak merged in; nothing else is ever
// overwritten.
func DeriveRecord(authoritative *TeamRecord, results []Result) TeamRecord {
	if authoritative != nil {
		record := *authoritative
		if record.StreakCode == "" {
			record.StreakCode, record.StreakCount = ComputeStreak(results)
		}
		return record
	}
	return ComputeRecord(results)
}

// ParseStreak splits a provider streak string like "W3" into its code and
// count. Unparseable input yields an empty code.
func ParseStreak(raw string) (string, int) {
	raw = strings.TrimSpace(raw)
	split := 0
	for split < len(raw) && (raw[split] < '0' || raw[split] > '9') {
		split++
	}
	code := strings.ToUpper(raw[:split])
	if code == "" {
		return "", 0
	}
	count := 0
	for _, ch := range raw[split:] {
		if ch < '0' || ch > '9' {
			return "", 0
		}
		count = count*10 + int(ch-'0')
	}
	if count == 0 {
		count = 1
	}
	return code, count
}

func finishedChronological(results []Result) []Result {
	finished := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Finished() {
			finished = append(finished, r)
		}
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].Date < finished[j].Date
	})
	return finished
}
