package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"hockey-data-service/internal/app/games"
	"hockey-data-service/internal/app/players"
	"hockey-data-service/internal/app/teams"
	domaingames "hockey-data-service/internal/domain/games"
	"hockey-data-service/internal/poller"
	"hockey-data-service/internal/providers"
	"hockey-data-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	games     *games.Service
	teams     *teams.Service
	players   *players.Service
	summaries providers.GameSummaryProvider
	league    string
	logger    *slog.Logger
	now       nowFunc
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(gamesSvc *games.Service, teamsSvc *teams.Service, playersSvc *players.Service, summaries providers.GameSummaryProvider, league string, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:     gamesSvc,
		teams:     teamsSvc,
		players:   playersSvc,
		summaries: summaries,
		league:    league,
		logger:    logger,
		now:       time.Now,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// GamesToday returns the stored snapshot for a date, defaulting to today
// in the requested (or service) timezone.
func (h *Handler) GamesToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	} else {
		now := h.now()
		if tz := r.URL.Query().Get("tz"); tz != "" {
			if loc := providers.ResolveTimezone(tz); loc != nil {
				now = now.In(loc)
			}
		}
		date = timeutil.FormatDate(now)
	}

	items := h.games.Games(date)
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served games", "date", date, "count", len(items))
	}

	writeJSON(w, nethttp.StatusOK, domaingames.NewTodayResponse(date, h.league, items), h.logger)
}

// GameByID returns a specific game, optionally with its period-by-period
// summary at /games/{id}/summary.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/games/")
	idRaw, wantSummary := strings.CutSuffix(rest, "/summary")
	id, err := strconv.Atoi(idRaw)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.games.GameByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	if wantSummary {
		if h.summaries == nil {
			writeError(w, r, nethttp.StatusNotFound, "summary not available", h.logger)
			return
		}
		summary, summaryErr := h.summaries.FetchGameSummary(r.Context(), id)
		if summaryErr != nil {
			writeError(w, r, nethttp.StatusBadGateway, "summary unavailable", h.logger)
			return
		}
		game.Summary = summary
	}

	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// TeamDetails serves the team pages under /teams/{abbrev}: the full
// page, its roster projection, or a single player.
func (h *Handler) TeamDetails(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.teams == nil {
		writeError(w, r, nethttp.StatusNotFound, "teams not available", h.logger)
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/teams/"), "/")
	team, sub, _ := strings.Cut(rest, "/")
	if team == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", h.logger)
		return
	}

	switch {
	case sub == "":
		details, err := h.teams.TeamDetails(r.Context(), team)
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "team details unavailable", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, details, h.logger)
	case sub == "roster" && h.players != nil:
		roster, err := h.players.Roster(r.Context(), team)
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "roster unavailable", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, roster, h.logger)
	case strings.HasPrefix(sub, "players/") && h.players != nil:
		id, err := strconv.Atoi(strings.TrimPrefix(sub, "players/"))
		if err != nil || id <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
			return
		}
		player, ok, err := h.players.PlayerByID(r.Context(), team, id)
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "roster unavailable", h.logger)
			return
		}
		if !ok {
			writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, player, h.logger)
	default:
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", h.logger)
		return
	}
}
