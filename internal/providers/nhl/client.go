package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/teams"
)

// Config controls how the NHL client reaches the upstream API.
type Config struct {
	BaseURL string
	// APIKey is sent as a bearer token when set. The public api-web
	// endpoints need none; proxies in front of them sometimes do.
	APIKey     string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches data from the NHL api-web endpoints and maps it to
// domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchGames retrieves the scoreboard for the given date.
func (c *Client) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	loc := c.loc
	if tz != "" {
		if override := resolveLocation(tz); override != nil {
			loc = override
		}
	}

	var payload scoreResponse
	if err := c.getJSON(ctx, "/score/"+c.resolveDate(date, loc), &payload); err != nil {
		return nil, err
	}

	now := c.now().UTC()
	all := make([]games.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		all = append(all, mapGame(g, now))
	}
	return all, nil
}

// FetchTeamDetails assembles the team page for one club. The roster is
// required; standings, season stats, and the club schedule are fetched
// concurrently and degrade to absent sections when unavailable.
func (c *Client) FetchTeamDetails(ctx context.Context, team string) (teams.TeamDetails, error) {
	team = strings.ToUpper(strings.TrimSpace(team))
	if team == "" {
		return teams.TeamDetails{}, fmt.Errorf("nhl: empty team abbreviation")
	}

	var (
		wg        sync.WaitGroup
		roster    rosterResponse
		rosterErr error
		stats     clubStatsResponse
		standings standingsResponse
		schedule  clubScheduleResponse
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		rosterErr = c.getJSON(ctx, "/roster/"+team+"/current", &roster)
	}()
	go func() {
		defer wg.Done()
		_ = c.getJSON(ctx, "/club-stats/"+team+"/now", &stats)
	}()
	go func() {
		defer wg.Done()
		_ = c.getJSON(ctx, "/standings/now", &standings)
	}()
	go func() {
		defer wg.Done()
		_ = c.getJSON(ctx, "/club-schedule-season/"+team+"/now", &schedule)
	}()
	wg.Wait()

	if rosterErr != nil {
		return teams.TeamDetails{}, rosterErr
	}

	today := c.now().In(c.loc).Format("2006-01-02")
	return assembleTeamDetails(team, roster, stats, standings, schedule, today), nil
}

// FetchGameSummary retrieves the period-by-period detail for one game.
func (c *Client) FetchGameSummary(ctx context.Context, gameID int) (*games.GameSummary, error) {
	var payload landingResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/gamecenter/%d/landing", gameID), &payload); err != nil {
		return nil, err
	}
	return mapSummary(payload), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nhl: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) resolveDate(date string, loc *time.Location) string {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err == nil {
			return date
		}
	}
	return c.now().In(loc).Format("2006-01-02")
}
