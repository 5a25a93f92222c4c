package nhl

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestFetchGamesHitsScoreEndpointAndMapsResponse(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC) // still 2024-01-01 in America/New_York
	var capturedPath string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		body := `{
			"currentDate": "2024-01-01",
			"games": [
				{
					"id": 2023020612,
					"season": 20232024,
					"gameType": 2,
					"gameDate": "2024-01-01",
					"startTimeUTC": "2024-01-01T20:00:00Z",
					"gameState": "LIVE",
					"period": 2,
					"periodDescriptor": { "number": 2, "periodType": "REG" },
					"clock": { "timeRemaining": "12:34", "secondsRemaining": 754, "running": true },
					"homeTeam": { "id": 10, "placeName": { "default": "Toronto" }, "name": { "default": "Maple Leafs" }, "abbrev": "TOR", "score": 2, "sog": 18 },
					"awayTeam": { "id": 6, "placeName": { "default": "Boston" }, "name": { "default": "Bruins" }, "abbrev": "BOS", "score": 1, "sog": 22 }
				}
			]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
		Timezone:   "America/New_York",
	})
	client.now = func() time.Time { return fixed }

	all, err := client.FetchGames(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/score/2024-01-01" {
		t.Fatalf("expected /score/2024-01-01, got %s", capturedPath)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 game, got %d", len(all))
	}

	game := all[0]
	if game.ID != 2023020612 || game.Season != 20232024 {
		t.Fatalf("unexpected identity %+v", game)
	}
	if !game.State.InProgress() {
		t.Fatalf("expected in-progress state, got %s", game.State)
	}
	if game.Clock == nil || game.Clock.SecondsRemaining != 754 {
		t.Fatalf("unexpected clock %+v", game.Clock)
	}
	if game.CurrentPeriod() != 2 {
		t.Fatalf("expected period 2, got %d", game.CurrentPeriod())
	}
	if game.HomeTeam.Abbrev != "TOR" || game.HomeTeam.PlaceName != "Toronto" || game.HomeTeam.CommonName != "Maple Leafs" {
		t.Fatalf("unexpected home team %+v", game.HomeTeam)
	}
	if game.AwayTeam.Score != 1 || game.AwayTeam.SOG != 22 {
		t.Fatalf("unexpected away team %+v", game.AwayTeam)
	}
}

func TestFetchGamesUsesExplicitDate(t *testing.T) {
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"games": []}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchGames(context.Background(), "2024-03-15", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/score/2024-03-15" {
		t.Fatalf("expected explicit date in path, got %s", capturedPath)
	}
}

func TestFetchGamesSendsBearerTokenWhenConfigured(t *testing.T) {
	var capturedAuth string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedAuth = req.Header.Get("Authorization")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"games": []}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", APIKey: "secret", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchGames(context.Background(), "2024-03-15", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedAuth != "Bearer secret" {
		t.Fatalf("expected bearer token header, got %q", capturedAuth)
	}
}

func TestFetchGamesSurfacesUpstreamFailure(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream broken")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchGames(context.Background(), "2024-03-15", ""); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestFetchTeamDetailsFansOutAndAssembles(t *testing.T) {
	fixed := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		var body string
		switch {
		case strings.HasPrefix(req.URL.Path, "/roster/TOR"):
			body = `{
				"forwards": [{ "id": 1, "firstName": { "default": "Auston" }, "lastName": { "default": "Matthews" }, "sweaterNumber": 34, "positionCode": "C", "headshot": "http://img/1.png" }],
				"defensemen": [{ "id": 2, "firstName": { "default": "Morgan" }, "lastName": { "default": "Rielly" }, "sweaterNumber": 44, "positionCode": "D" }],
				"goalies": [{ "id": 3, "firstName": { "default": "Joseph" }, "lastName": { "default": "Woll" }, "sweaterNumber": 60, "positionCode": "G" }]
			}`
		case strings.HasPrefix(req.URL.Path, "/club-stats/TOR"):
			body = `{
				"skaters": [{ "playerId": 1, "gamesPlayed": 40, "goals": 30, "assists": 20, "points": 50, "shots": 180 }],
				"goalies": [{ "playerId": 3, "gamesPlayed": 20, "wins": 12, "losses": 6, "savePercentage": 0.915 }]
			}`
		case req.URL.Path == "/standings/now":
			body = `{
				"standings": [
					{ "teamAbbrev": { "default": "TOR" }, "teamName": { "default": "Toronto Maple Leafs" }, "teamLogo": "http://img/tor.svg", "wins": 25, "losses": 10, "otLosses": 5, "points": 55, "streakCode": "W", "streakCount": 3 }
				]
			}`
		case strings.HasPrefix(req.URL.Path, "/club-schedule-season/TOR"):
			body = `{
				"games": [
					{ "id": 100, "gameDate": "2024-01-08", "startTimeUTC": "2024-01-09T00:00:00Z", "gameState": "OFF", "gameOutcome": { "lastPeriodType": "REG" }, "homeTeam": { "id": 10, "abbrev": "TOR", "score": 4 }, "awayTeam": { "id": 6, "abbrev": "BOS", "score": 2 } },
					{ "id": 101, "gameDate": "2024-01-12", "startTimeUTC": "2024-01-13T00:00:00Z", "gameState": "FUT", "homeTeam": { "id": 6, "abbrev": "BOS" }, "awayTeam": { "id": 10, "abbrev": "TOR" } }
				]
			}`
		default:
			body = `{}`
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	client.now = func() time.Time { return fixed }

	details, err := client.FetchTeamDetails(context.Background(), "tor")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if details.Abbrev != "TOR" || details.Name != "Toronto Maple Leafs" {
		t.Fatalf("unexpected identity %+v", details)
	}
	if details.ID != 10 {
		t.Fatalf("expected team id from schedule, got %d", details.ID)
	}
	if len(details.Roster.Forwards) != 1 || len(details.Roster.Defensemen) != 1 || len(details.Roster.Goalies) != 1 {
		t.Fatalf("unexpected roster buckets %+v", details.Roster)
	}

	forward := details.Roster.Forwards[0]
	if forward.Skater == nil || forward.Skater.Points == nil || *forward.Skater.Points != 50 {
		t.Fatalf("expected skater stats merged, got %+v", forward.Skater)
	}
	goalie := details.Roster.Goalies[0]
	if goalie.Goalie == nil || goalie.Goalie.SavePct == nil || *goalie.Goalie.SavePct != 0.915 {
		t.Fatalf("expected goalie stats merged, got %+v", goalie.Goalie)
	}
	defenseman := details.Roster.Defensemen[0]
	if defenseman.Skater != nil {
		t.Fatalf("expected no stats for player missing from club stats, got %+v", defenseman.Skater)
	}

	if details.Record == nil || details.Record.Wins != 25 || details.Record.Points != 55 {
		t.Fatalf("unexpected record %+v", details.Record)
	}
	if details.Record.StreakCode != "W" || details.Record.StreakCount != 3 {
		t.Fatalf("expected standings streak kept, got %+v", details.Record)
	}

	if len(details.Last10Schedule) != 1 || details.Last10Schedule[0].ID != 100 {
		t.Fatalf("unexpected past schedule %+v", details.Last10Schedule)
	}
	if len(details.UpcomingSchedule) != 1 || details.UpcomingSchedule[0].ID != 101 {
		t.Fatalf("unexpected upcoming schedule %+v", details.UpcomingSchedule)
	}
}

func TestFetchTeamDetailsRequiresRoster(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		status := http.StatusOK
		if strings.HasPrefix(req.URL.Path, "/roster/") {
			status = http.StatusNotFound
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchTeamDetails(context.Background(), "TOR"); err == nil {
		t.Fatalf("expected error when roster fetch fails")
	}
}

func TestFetchGameSummaryMapsLanding(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/gamecenter/2023020612/landing" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		body := `{
			"id": 2023020612,
			"homeTeam": { "abbrev": "TOR" },
			"awayTeam": { "abbrev": "BOS" },
			"summary": {
				"scoring": [
					{
						"periodDescriptor": { "number": 1, "periodType": "REG" },
						"goals": [
							{ "playerId": 1, "firstName": { "default": "Auston" }, "lastName": { "default": "Matthews" }, "teamAbbrev": { "default": "TOR" }, "timeInPeriod": "05:11", "homeScore": 1, "awayScore": 0, "situationCode": "1451", "assists": [{ "playerId": 2, "firstName": { "default": "Mitch" }, "lastName": { "default": "Marner" } }] }
						]
					}
				],
				"threeStars": [
					{ "star": 1, "playerId": 1, "name": { "default": "A. Matthews" }, "teamAbbrev": "TOR" }
				]
			}
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	summary, err := client.FetchGameSummary(context.Background(), 2023020612)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(summary.Scoring) != 1 || len(summary.Scoring[0].Goals) != 1 {
		t.Fatalf("unexpected scoring %+v", summary.Scoring)
	}

	goal := summary.Scoring[0].Goals[0]
	if !goal.IsHome || goal.Strength != "PP" {
		t.Fatalf("expected home power-play goal, got %+v", goal)
	}
	if len(goal.Assists) != 1 || goal.Assists[0].LastName != "Marner" {
		t.Fatalf("unexpected assists %+v", goal.Assists)
	}
	if len(summary.ThreeStars) != 1 || summary.ThreeStars[0].Rank != 1 {
		t.Fatalf("unexpected stars %+v", summary.ThreeStars)
	}
	if summary.Penalties == nil || summary.Shootout == nil {
		t.Fatalf("expected non-nil empty sections")
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
