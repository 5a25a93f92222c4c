package teststubs

import (
	"context"
	"errors"
	"testing"

	domaingames "hockey-data-service/internal/domain/games"
	domainteams "hockey-data-service/internal/domain/teams"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Games: []domaingames.Game{{ID: 1}}, Err: err}
	if _, got := p.FetchGames(context.Background(), "2024-01-01", ""); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}

	p.Err = nil
	p.Details = domainteams.TeamDetails{Abbrev: "TOR"}
	details, detailsErr := p.FetchTeamDetails(context.Background(), "TOR")
	if detailsErr != nil || details.Abbrev != "TOR" {
		t.Fatalf("unexpected details %+v err %v", details, detailsErr)
	}
	if _, summaryErr := p.FetchGameSummary(context.Background(), 1); summaryErr != nil {
		t.Fatalf("unexpected summary error %v", summaryErr)
	}
	if p.Calls.Load() != 3 {
		t.Fatalf("expected call count 3, got %d", p.Calls.Load())
	}
}

func TestStubProviderNotifyClosesOnce(t *testing.T) {
	p := &StubProvider{Notify: make(chan struct{})}
	_, _ = p.FetchGames(context.Background(), "", "")
	_, _ = p.FetchGames(context.Background(), "", "")

	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
}

func TestStubGamesSinkRecordsSnapshots(t *testing.T) {
	sink := &StubGamesSink{}
	sink.ReplaceGames("2024-01-01", []domaingames.Game{{ID: 1}})
	sink.ReplaceGames("2024-01-01", []domaingames.Game{{ID: 2}})

	items, ok := sink.Replaced["2024-01-01"]
	if !ok || len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("expected latest snapshot kept, got %+v", items)
	}
}
