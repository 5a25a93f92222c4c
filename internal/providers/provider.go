package providers

import (
	"context"

	domaingames "hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/teams"
)

// GameProvider defines how upstream game data is fetched and normalized.
// The date parameter, when provided, should be a YYYY-MM-DD string indicating which day's games to fetch.
// Providers should interpret an empty date as "today" in their configured timezone.
type GameProvider interface {
	FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error)
}

// TeamDetailsProvider fetches a normalized team page: partitioned roster,
// derived record, and schedule windows.
type TeamDetailsProvider interface {
	FetchTeamDetails(ctx context.Context, team string) (teams.TeamDetails, error)
}

// GameSummaryProvider fetches the period-by-period detail for one game.
type GameSummaryProvider interface {
	FetchGameSummary(ctx context.Context, gameID int) (*domaingames.GameSummary, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	TeamDetailsProvider
	GameSummaryProvider
}
