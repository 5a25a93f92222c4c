package teams

import (
	"context"
	"strings"

	domainteams "hockey-data-service/internal/domain/teams"
	"hockey-data-service/internal/providers"
)

// Store defines the contract for caching assembled team pages.
type Store interface {
	GetTeamDetails(key string) (domainteams.TeamDetails, bool)
	SetTeamDetails(key string, details domainteams.TeamDetails)
}

// Service serves team pages through a read-through cache. A miss is
// assembled by the provider and cached; the poller refreshes cached
// entries so reads stay warm.
type Service struct {
	store    Store
	provider providers.TeamDetailsProvider
}

// NewService constructs a Service with the provided Store and provider.
func NewService(store Store, provider providers.TeamDetailsProvider) *Service {
	return &Service{store: store, provider: provider}
}

// TeamDetails returns the team page for one club, fetching it from the
// provider when it is not cached yet.
func (s *Service) TeamDetails(ctx context.Context, team string) (domainteams.TeamDetails, error) {
	key := normalizeKey(team)
	if details, ok := s.store.GetTeamDetails(key); ok {
		return details, nil
	}

	details, err := s.provider.FetchTeamDetails(ctx, team)
	if err != nil {
		return domainteams.TeamDetails{}, err
	}
	s.store.SetTeamDetails(key, details)
	return details, nil
}

// Refresh re-fetches one cached team page. Unknown keys are fetched and
// cached like a normal read.
func (s *Service) Refresh(ctx context.Context, team string) error {
	details, err := s.provider.FetchTeamDetails(ctx, team)
	if err != nil {
		return err
	}
	s.store.SetTeamDetails(normalizeKey(team), details)
	return nil
}

func normalizeKey(team string) string {
	return strings.ToUpper(strings.TrimSpace(team))
}
