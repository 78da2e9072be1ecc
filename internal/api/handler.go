// Package api serves one quiz session as a local JSON API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/abhisek/mathquest/internal/diagnosis"
	"github.com/abhisek/mathquest/internal/journal"
	"github.com/abhisek/mathquest/internal/session"
)

// Server exposes a session over HTTP. Every handler that touches the
// session holds mu, so the session sees one caller at a time.
type Server struct {
	mu        sync.Mutex
	state     *session.State
	recorder  *journal.Recorder
	diagnoser *diagnosis.Service
}

// NewServer creates a server for state. recorder may be nil.
func NewServer(state *session.State, recorder *journal.Recorder) *Server {
	return &Server{state: state, recorder: recorder, diagnoser: diagnosis.NewService()}
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// sessionError maps session sentinel errors onto HTTP errors.
func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrUnknownTier):
		Error(w, http.StatusNotFound, "unknown_tier", err.Error())
	case errors.Is(err, session.ErrIndexOutOfRange):
		Error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, session.ErrNoDaily):
		Error(w, http.StatusConflict, "no_daily", err.Error())
	default:
		slog.Error("session operation failed", "error", err)
		Error(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

// decode reads a JSON request body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "bad_request", "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
