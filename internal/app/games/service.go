package games

import domaingames "hockey-data-service/internal/domain/games"

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames(date string) []domaingames.Game
	GetGame(id int) (domaingames.Game, bool)
	SetGames(date string, items []domaingames.Game)
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current snapshot for a date.
func (s *Service) Games(date string) []domaingames.Game {
	return s.store.ListGames(date)
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id int) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// ReplaceGames swaps a date's snapshot with fresh provider data.
func (s *Service) ReplaceGames(date string, items []domaingames.Game) {
	s.store.SetGames(date, items)
}
