package handler

import (
	"encoding/json"
	"net/http"

	"github.com/daygrid/leagues/internal/api/request"
	"github.com/daygrid/leagues/internal/api/response"
	"github.com/daygrid/leagues/internal/metrics"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/services/scores"
)

// ScoreHandler handles score submission
type ScoreHandler struct {
	scoreService *scores.Service
	metrics      *metrics.Metrics
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *scores.Service, metrics *metrics.Metrics) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		metrics:      metrics,
	}
}

// Submit handles POST /api/v1/scores
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	if req.Mistakes == nil {
		WriteError(w, model.ErrMissingMistakes)
		return
	}

	recorded, err := h.scoreService.Submit(r.Context(),
		model.PlayerID(req.PlayerUUID), model.Date(req.Date), *req.Mistakes)
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.AddScoresRecorded(recorded)
	}

	response.JSON(w, http.StatusOK, response.SubmitScore{Recorded: recorded})
}
