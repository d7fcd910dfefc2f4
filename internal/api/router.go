package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daygrid/leagues/internal/api/handler"
	apimiddleware "github.com/daygrid/leagues/internal/api/middleware"
	"github.com/daygrid/leagues/internal/metrics"
	"github.com/daygrid/leagues/internal/middleware"
	"github.com/daygrid/leagues/internal/services/leaderboard"
	"github.com/daygrid/leagues/internal/services/league"
	"github.com/daygrid/leagues/internal/services/puzzle"
	"github.com/daygrid/leagues/internal/services/scores"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Metrics            *metrics.Metrics
	LeagueController   *league.Controller
	LeaderboardService *leaderboard.Service
	ScoreService       *scores.Service
	PuzzleService      *puzzle.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	leagueHandler := handler.NewLeagueHandler(cfg.LeagueController, cfg.LeaderboardService)
	playerHandler := handler.NewPlayerHandler(cfg.LeagueController)
	scoreHandler := handler.NewScoreHandler(cfg.ScoreService, cfg.Metrics)
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.RequestID())
	api.Use(middleware.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		api.Use(cfg.Metrics.Middleware())
	}

	// League routes
	api.HandleFunc("/leagues", leagueHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/leagues/{id}", leagueHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/leagues/{id}/join", leagueHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/leagues/{id}/leaderboard", leagueHandler.Leaderboard).Methods(http.MethodGet)

	// Score fan-out
	api.HandleFunc("/scores", scoreHandler.Submit).Methods(http.MethodPost)

	// Player summary
	api.HandleFunc("/players/{uuid}/leagues", playerHandler.Leagues).Methods(http.MethodGet)

	// Puzzle content
	api.HandleFunc("/puzzles/import", puzzleHandler.Import).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/{date}", puzzleHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus metrics at the root, outside the API middleware chain
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
