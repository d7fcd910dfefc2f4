package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daygrid/leagues/internal/api/response"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/services/puzzle"
)

// PuzzleHandler handles daily puzzle content endpoints
type PuzzleHandler struct {
	puzzleService *puzzle.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzleService *puzzle.Service) *PuzzleHandler {
	return &PuzzleHandler{
		puzzleService: puzzleService,
	}
}

// Get handles GET /api/v1/puzzles/{date}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := model.Date(mux.Vars(r)["date"])

	found, err := h.puzzleService.GetForDate(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(found))
}

// Import handles POST /api/v1/puzzles/import with a CSV request body
func (h *PuzzleHandler) Import(w http.ResponseWriter, r *http.Request) {
	imported, err := h.puzzleService.ImportCSV(r.Context(), r.Body)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	response.JSON(w, http.StatusOK, response.ImportResult{Imported: imported})
}
