package teams

import (
	"sort"

	"hockey-data-service/internal/domain/games"
)

// ScheduleWindow is the number of games kept on each side of today.
const ScheduleWindow = 10

// SplitSchedule partitions a full schedule around today (YYYY-MM-DD).
// Past games keep the most recent ScheduleWindow entries in chronological
// order; games on or after today keep the first ScheduleWindow entries.
// Either side may come back empty.
func SplitSchedule(schedule []games.ScheduledGame, today string) (last10, upcoming []games.ScheduledGame) {
	sorted := make([]games.ScheduledGame, len(schedule))
	copy(sorted, schedule)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	past := make([]games.ScheduledGame, 0, len(sorted))
	future := make([]games.ScheduledGame, 0, len(sorted))
	for _, g := range sorted {
		if g.Date < today {
			past = append(past, g)
		} else {
			future = append(future, g)
		}
	}

	if len(past) > ScheduleWindow {
		past = past[len(past)-ScheduleWindow:]
	}
	if len(future) > ScheduleWindow {
		future = future[:ScheduleWindow]
	}
	return past, future
}
