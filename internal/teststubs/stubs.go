package teststubs

import (
	"context"
	"sync/atomic"

	domaingames "hockey-data-service/internal/domain/games"
	domainteams "hockey-data-service/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Games   []domaingames.Game
	Details domainteams.TeamDetails
	Summary *domaingames.GameSummary
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	_ = ctx
	_ = date
	_ = tz
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// FetchTeamDetails returns the configured team page and error.
func (s *StubProvider) FetchTeamDetails(ctx context.Context, team string) (domainteams.TeamDetails, error) {
	_ = ctx
	_ = team
	s.Calls.Add(1)
	return s.Details, s.Err
}

// FetchGameSummary returns the configured summary and error.
func (s *StubProvider) FetchGameSummary(ctx context.Context, gameID int) (*domaingames.GameSummary, error) {
	_ = ctx
	_ = gameID
	s.Calls.Add(1)
	return s.Summary, s.Err
}

// StubGamesSink is a test double for poller.GamesSink.
type StubGamesSink struct {
	Replaced map[string][]domaingames.Game // keyed by date
}

// ReplaceGames records each snapshot for verification in tests.
func (s *StubGamesSink) ReplaceGames(date string, items []domaingames.Game) {
	if s.Replaced == nil {
		s.Replaced = make(map[string][]domaingames.Game)
	}
	s.Replaced[date] = items
}
