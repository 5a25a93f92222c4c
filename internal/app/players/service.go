package players

import (
	"context"

	domainplayers "hockey-data-service/internal/domain/players"
	domainteams "hockey-data-service/internal/domain/teams"
)

// TeamPages provides assembled team pages; player views are projections
// of the team roster.
type TeamPages interface {
	TeamDetails(ctx context.Context, team string) (domainteams.TeamDetails, error)
}

// Service exposes player-centric reads over team rosters.
type Service struct {
	teams TeamPages
}

// NewService constructs a Service over the provided team pages.
func NewService(teams TeamPages) *Service {
	return &Service{teams: teams}
}

// Roster returns the partitioned roster for one team.
func (s *Service) Roster(ctx context.Context, team string) (domainplayers.Roster, error) {
	details, err := s.teams.TeamDetails(ctx, team)
	if err != nil {
		return domainplayers.Roster{}, err
	}
	return details.Roster, nil
}

// PlayerByID returns a single player from a team's roster if present.
func (s *Service) PlayerByID(ctx context.Context, team string, id int) (domainplayers.Player, bool, error) {
	details, err := s.teams.TeamDetails(ctx, team)
	if err != nil {
		return domainplayers.Player{}, false, err
	}
	for _, bucket := range [][]domainplayers.Player{details.Roster.Forwards, details.Roster.Defensemen, details.Roster.Goalies} {
		for _, p := range bucket {
			if p.ID == id {
				return p, true, nil
			}
		}
	}
	return domainplayers.Player{}, false, nil
}
