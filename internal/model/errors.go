package model

import "errors"

// Common errors used across the application
var (
	// League errors
	ErrLeagueNotFound  = errors.New("league not found")
	ErrEmptyLeagueName = errors.New("league name must not be empty")

	// Player errors
	ErrPlayerNotFound   = errors.New("player not found")
	ErrMissingPlayer    = errors.New("player uuid is required")
	ErrEmptyDisplayName = errors.New("display name must not be empty")

	// Score errors
	ErrMissingDate      = errors.New("date is required")
	ErrNegativeMistakes = errors.New("mistakes must be a non-negative integer")
	ErrMissingMistakes  = errors.New("mistakes is required")

	// Puzzle errors
	ErrPuzzleNotFound = errors.New("no puzzle for that date")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD form")
	ErrFutureDate     = errors.New("date is in the future")
)
