package store

import (
	"sync"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of games and team pages in
// memory. Game snapshots are keyed by date so a poller refresh for one
// day never clobbers another.
type MemoryStore struct {
	mu          sync.RWMutex
	gamesByDate map[string][]games.Game
	gamesByID   map[int]games.Game
	teams       map[string]teams.TeamDetails
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		gamesByDate: make(map[string][]games.Game),
		gamesByID:   make(map[int]games.Game),
		teams:       make(map[string]teams.TeamDetails),
	}
}

// ListGames returns a copy of the games stored for one date.
func (s *MemoryStore) ListGames(date string) []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.gamesByDate[date]
	result := make([]games.Game, len(stored))
	copy(result, stored)
	return result
}

// GetGame retrieves a game by its numeric id, regardless of date.
func (s *MemoryStore) GetGame(id int) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.gamesByID[id]
	return g, ok
}

// SetGames replaces the snapshot for one date.
func (s *MemoryStore) SetGames(date string, items []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]games.Game, len(items))
	copy(stored, items)

	for _, g := range s.gamesByDate[date] {
		delete(s.gamesByID, g.ID)
	}
	s.gamesByDate[date] = stored
	for _, g := range stored {
		s.gamesByID[g.ID] = g
	}
}

// GetTeamDetails retrieves a cached team page by its lookup key.
func (s *MemoryStore) GetTeamDetails(key string) (teams.TeamDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details, ok := s.teams[key]
	return details, ok
}

// SetTeamDetails stores one team page under its lookup key.
func (s *MemoryStore) SetTeamDetails(key string, details teams.TeamDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams[key] = details
}
