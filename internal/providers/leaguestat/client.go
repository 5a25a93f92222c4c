package leaguestat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/domain/players"
	"hockey-data-service/internal/domain/teams"
	"hockey-data-service/internal/metrics"
	"hockey-data-service/internal/providers"
	"hockey-data-service/internal/timeutil"
)

// Config controls how the LeagueStat client reaches the upstream feed.
type Config struct {
	BaseURL    string
	APIKey     string
	ClientCode string
	SeasonID   int
	HTTPClient *http.Client
	Timezone   string
	Recorder   *metrics.Recorder
}

// Client fetches data from a LeagueStat-style feed and normalizes it to
// domain models. The feed serves every view from one index endpoint,
// wraps payloads in shifting container keys, and stringifies most
// numerics, so all row access goes through the generic coercion helpers.
type Client struct {
	baseURL    string
	apiKey     string
	clientCode string
	seasonID   int
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
	recorder   *metrics.Recorder
}

// NewClient constructs a LeagueStat client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		clientCode: cfg.ClientCode,
		seasonID:   cfg.SeasonID,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
		recorder:   cfg.Recorder,
	}
}

// FetchGames retrieves the scorebar and keeps the games falling on the
// requested date. The feed takes a days-back/days-ahead window rather
// than a date, so the window is derived from the gap between now and the
// target day.
func (c *Client) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	loc := c.loc
	if tz != "" {
		if override := resolveLocation(tz); override != nil {
			loc = override
		}
	}

	now := c.now()
	target := now.In(loc)
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			target = parsed
		}
	}
	window := timeutil.CalculateDaysByDate(now.In(loc), target)

	params := c.baseParams(viewScorebar)
	params.Set("numberofdaysback", strconv.Itoa(window.DaysBack))
	params.Set("numberofdaysahead", strconv.Itoa(window.DaysAhead))

	rows, err := c.fetchRows(ctx, params)
	if err != nil {
		return nil, err
	}

	wanted := timeutil.FormatDate(target)
	dropped := 0
	all := make([]games.Game, 0, len(rows))
	for _, row := range rows {
		game, ok := mapGame(row, now.UTC(), loc)
		if !ok {
			dropped++
			continue
		}
		if game.GameDate == wanted {
			all = append(all, game)
		}
	}
	c.recorder.RecordRowsDropped(providerName, "games", dropped)

	return all, nil
}

// FetchTeamDetails assembles the team page for one club. The team
// parameter is the feed's numeric team id. The roster view is required;
// stats, standings, and schedule degrade to absent sections.
func (c *Client) FetchTeamDetails(ctx context.Context, team string) (teams.TeamDetails, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return teams.TeamDetails{}, fmt.Errorf("leaguestat: empty team id")
	}

	var (
		wg        sync.WaitGroup
		roster    []providers.Row
		rosterErr error
		skaters   []providers.Row
		goalies   []providers.Row
		standings []providers.Row
		schedule  []providers.Row
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		roster, rosterErr = c.fetchRows(ctx, c.teamParams(viewRoster, team))
	}()
	go func() {
		defer wg.Done()
		skaters, _ = c.fetchRows(ctx, c.statParams(statTypeSkaters, team))
	}()
	go func() {
		defer wg.Done()
		goalies, _ = c.fetchRows(ctx, c.statParams(statTypeGoalies, team))
	}()
	go func() {
		defer wg.Done()
		standings, _ = c.fetchRows(ctx, c.statParams(statTypeStandings, ""))
	}()
	go func() {
		defer wg.Done()
		schedule, _ = c.fetchRows(ctx, c.teamParams(viewSchedule, team))
	}()
	wg.Wait()

	if rosterErr != nil {
		return teams.TeamDetails{}, rosterErr
	}

	statsByID := buildStatsIndex(skaters, goalies)
	dropped := 0
	all := make([]players.Player, 0, len(roster))
	for _, row := range roster {
		p, ok := mapPlayer(row, c.clientCode, statsByID)
		if !ok {
			dropped++
			continue
		}
		all = append(all, p)
	}
	c.recorder.RecordRowsDropped(providerName, "players", dropped)

	today := c.now().In(c.loc).Format(timeutil.DateLayout)
	return assembleTeamDetails(team, all, standings, schedule, today), nil
}

// FetchGameSummary retrieves the game summary view for one game.
func (c *Client) FetchGameSummary(ctx context.Context, gameID int) (*games.GameSummary, error) {
	params := c.baseParams(viewGameSummary)
	params.Set("game_id", strconv.Itoa(gameID))

	payload, err := c.fetchPayload(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapSummary(payload), nil
}

func (c *Client) baseParams(view string) url.Values {
	params := url.Values{}
	params.Set("feed", feedName)
	params.Set("view", view)
	params.Set("key", c.apiKey)
	params.Set("client_code", c.clientCode)
	params.Set("fmt", "json")
	return params
}

func (c *Client) teamParams(view, team string) url.Values {
	params := c.baseParams(view)
	params.Set("team_id", team)
	if c.seasonID > 0 {
		params.Set("season_id", strconv.Itoa(c.seasonID))
	}
	return params
}

func (c *Client) statParams(statType, team string) url.Values {
	params := c.baseParams(viewStatviewtype)
	params.Set("type", statType)
	if team != "" {
		params.Set("team_id", team)
	}
	if c.seasonID > 0 {
		params.Set("season_id", strconv.Itoa(c.seasonID))
	}
	return params
}

func (c *Client) fetchRows(ctx context.Context, params url.Values) ([]providers.Row, error) {
	payload, err := c.fetchPayload(ctx, params)
	if err != nil {
		return nil, err
	}
	return providers.ExtractRows(payload), nil
}

func (c *Client) fetchPayload(ctx context.Context, params url.Values) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("leaguestat: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(stripJSONP(body), &payload); err != nil {
		return nil, fmt.Errorf("leaguestat: decoding feed response: %w", err)
	}
	return payload, nil
}

// stripJSONP unwraps the optional callback parentheses some feed
// deployments emit even when fmt=json is requested.
func stripJSONP(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) < 2 || trimmed[0] != '(' || trimmed[len(trimmed)-1] != ')' {
		return trimmed
	}
	return bytes.TrimSpace(trimmed[1 : len(trimmed)-1])
}
