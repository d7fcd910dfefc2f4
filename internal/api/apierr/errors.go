package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daygrid/leagues/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeLeagueNotFound   = "LEAGUE_NOT_FOUND"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodePuzzleNotFound   = "PUZZLE_NOT_FOUND"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrLeagueNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLeagueNotFound, "League not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "No puzzle for that date"}}
	case isValidation(err):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	}

	// Anything else is the store failing underneath us
	return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnavailable, "Storage unavailable"}}
}

// isValidation reports whether err is a caller-input precondition failure
func isValidation(err error) bool {
	for _, sentinel := range []error{
		model.ErrEmptyLeagueName,
		model.ErrEmptyDisplayName,
		model.ErrMissingPlayer,
		model.ErrMissingDate,
		model.ErrMissingMistakes,
		model.ErrNegativeMistakes,
		model.ErrInvalidDate,
		model.ErrFutureDate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
