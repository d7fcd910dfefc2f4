package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daygrid/leagues/internal/api/response"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/services/league"
)

// PlayerHandler handles player-scoped endpoints
type PlayerHandler struct {
	leagueController *league.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(leagueController *league.Controller) *PlayerHandler {
	return &PlayerHandler{
		leagueController: leagueController,
	}
}

// Leagues handles GET /api/v1/players/{uuid}/leagues
func (h *PlayerHandler) Leagues(w http.ResponseWriter, r *http.Request) {
	uuid := model.PlayerID(mux.Vars(r)["uuid"])

	summaries, err := h.leagueController.PlayerSummary(r.Context(), uuid)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerLeaguesFromModel(summaries))
}
