package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daygrid/leagues/internal/api/request"
	"github.com/daygrid/leagues/internal/api/response"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/services/leaderboard"
	"github.com/daygrid/leagues/internal/services/league"
)

// LeagueHandler handles league-related endpoints
type LeagueHandler struct {
	leagueController   *league.Controller
	leaderboardService *leaderboard.Service
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(leagueController *league.Controller, leaderboardService *leaderboard.Service) *LeagueHandler {
	return &LeagueHandler{
		leagueController:   leagueController,
		leaderboardService: leaderboardService,
	}
}

// Create handles POST /api/v1/leagues
func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	created, err := h.leagueController.CreateLeague(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Join the creator when identity accompanies the request
	if req.PlayerUUID != "" {
		_, err := h.leagueController.JoinLeague(r.Context(), created.ID, model.PlayerID(req.PlayerUUID), req.DisplayName)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusCreated, response.LeagueFromModel(created))
}

// Get handles GET /api/v1/leagues/{id}
func (h *LeagueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.LeagueID(mux.Vars(r)["id"])

	found, err := h.leagueController.GetLeague(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeagueFromModel(found))
}

// Join handles POST /api/v1/leagues/{id}/join
func (h *LeagueHandler) Join(w http.ResponseWriter, r *http.Request) {
	id := model.LeagueID(mux.Vars(r)["id"])

	var req request.JoinLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	player, err := h.leagueController.JoinLeague(r.Context(), id, model.PlayerID(req.PlayerUUID), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Leaderboard handles GET /api/v1/leagues/{id}/leaderboard
func (h *LeagueHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	id := model.LeagueID(mux.Vars(r)["id"])
	date := model.Date(r.URL.Query().Get("date"))

	board, err := h.leaderboardService.Compute(r.Context(), id, date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(board))
}
