package games

import (
	"testing"

	domaingames "hockey-data-service/internal/domain/games"
)

type stubStore struct {
	listResult []domaingames.Game
	getResult  domaingames.Game
	getOK      bool

	setCalls int
	setDate  string
	setValue []domaingames.Game
}

func (s *stubStore) ListGames(date string) []domaingames.Game {
	_ = date
	return s.listResult
}

func (s *stubStore) GetGame(id int) (domaingames.Game, bool) {
	_ = id
	return s.getResult, s.getOK
}

func (s *stubStore) SetGames(date string, items []domaingames.Game) {
	s.setCalls++
	s.setDate = date
	s.setValue = items
}

func TestServiceGames(t *testing.T) {
	store := &stubStore{
		listResult: []domaingames.Game{{ID: 1}, {ID: 2}},
	}
	svc := NewService(store)

	games := svc.Games("2024-01-10")
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].ID != 1 || games[1].ID != 2 {
		t.Fatalf("unexpected games returned: %+v", games)
	}
}

func TestServiceGameByID(t *testing.T) {
	want := domaingames.Game{ID: 7}
	store := &stubStore{
		getResult: want,
		getOK:     true,
	}
	svc := NewService(store)

	got, ok := svc.GameByID(7)
	if !ok {
		t.Fatalf("expected to find game")
	}
	if got.ID != want.ID {
		t.Fatalf("expected %d got %d", want.ID, got.ID)
	}
}

func TestServiceReplaceGames(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	payload := []domaingames.Game{{ID: 3}}
	svc.ReplaceGames("2024-01-10", payload)

	if store.setCalls != 1 {
		t.Fatalf("expected SetGames to be called once, got %d", store.setCalls)
	}
	if store.setDate != "2024-01-10" {
		t.Fatalf("unexpected date %s", store.setDate)
	}
	if len(store.setValue) != 1 || store.setValue[0].ID != 3 {
		t.Fatalf("unexpected SetGames payload: %+v", store.setValue)
	}
}
